package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	JWT    JWTConfig
	Admin  AdminConfig
	Seed   SeedConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	Environment    string
	ServiceName    string
	ReadTimeout    int
	WriteTimeout   int
	BookingTimeout int    // per-request timeout on booking submission, in seconds
	CORSOrigins    string // Comma-separated list of allowed origins
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in hours
}

// AdminConfig holds the admin console credential pair.
// This is a hardcoded-credential gate, not a user directory.
type AdminConfig struct {
	Email    string
	Password string
}

// SeedConfig controls loading of the demo fleet and bookings
type SeedConfig struct {
	Enabled bool
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Environment:    getEnv("ENVIRONMENT", "development"),
			ServiceName:    serviceName,
			ReadTimeout:    getEnvAsInt("READ_TIMEOUT", 10),
			WriteTimeout:   getEnvAsInt("WRITE_TIMEOUT", 10),
			BookingTimeout: getEnvAsInt("BOOKING_TIMEOUT", 5),
			CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			Expiration: getEnvAsInt("JWT_EXPIRATION", 24),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@rentaride.com"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Seed: SeedConfig{
			Enabled: getEnvAsBool("SEED_DATA", true),
		},
	}

	return cfg, nil
}

// CORSOriginList returns the configured CORS origins as a slice
func (c *ServerConfig) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
