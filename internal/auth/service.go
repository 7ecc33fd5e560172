package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/richxcame/rentaride/pkg/logger"
	"github.com/richxcame/rentaride/pkg/middleware"
)

const adminRole = "admin"

// Service authenticates the single configured admin account. The credential
// pair comes from configuration; the password is hashed at construction so
// the plaintext never lives on the service.
type Service struct {
	adminEmail   string
	passwordHash []byte
	jwtSecret    string
	expiration   time.Duration
}

// NewService creates a new auth service, hashing the configured password
func NewService(adminEmail, adminPassword, jwtSecret string, expirationHours int) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Service{
		adminEmail:   adminEmail,
		passwordHash: hash,
		jwtSecret:    jwtSecret,
		expiration:   time.Duration(expirationHours) * time.Hour,
	}, nil
}

// Login verifies the credential pair and issues a signed admin token.
// Both a wrong email and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if email != s.adminEmail {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := middleware.Claims{
		Email: email,
		Role:  adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info("admin login", zap.String("email", email))

	return &LoginResponse{
		Token:     signed,
		Email:     email,
		Role:      adminRole,
		ExpiresIn: int(s.expiration.Seconds()),
	}, nil
}
