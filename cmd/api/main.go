package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/richxcame/rentaride/internal/analytics"
	"github.com/richxcame/rentaride/internal/auth"
	"github.com/richxcame/rentaride/internal/bookings"
	"github.com/richxcame/rentaride/internal/fleet"
	"github.com/richxcame/rentaride/internal/notifications"
	"github.com/richxcame/rentaride/pkg/common"
	"github.com/richxcame/rentaride/pkg/config"
	"github.com/richxcame/rentaride/pkg/logger"
	"github.com/richxcame/rentaride/pkg/middleware"
	"github.com/richxcame/rentaride/pkg/validation"
	ws "github.com/richxcame/rentaride/pkg/websocket"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load("rentaride-api")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := validation.RegisterCustomValidators(); err != nil {
		logger.Fatal("Failed to register validators", zap.Error(err))
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// WebSocket hub for the admin event feed
	hub := ws.NewHub()
	go hub.Run()

	// In-memory stores; all state is volatile and reset on restart
	fleetRepo := fleet.NewRepository()
	bookingRepo := bookings.NewRepository()
	if cfg.Seed.Enabled {
		fleetRepo.Seed(fleet.SeedVehicles())
		bookingRepo.Seed(bookings.SeedBookings())
		logger.Info("demo data seeded")
	}

	// Services
	fleetService := fleet.NewService(fleetRepo)
	notifier := notifications.NewService(hub)
	bookingService := bookings.NewService(bookingRepo, fleetRepo, notifier)
	analyticsService := analytics.NewService(fleetService, bookingService)
	authService, err := auth.NewService(cfg.Admin.Email, cfg.Admin.Password, cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		logger.Fatal("Failed to create auth service", zap.Error(err))
	}

	// Handlers
	fleetHandler := fleet.NewHandler(fleetService)
	fleetAdminHandler := fleet.NewAdminHandler(fleetService)
	bookingHandler := bookings.NewHandler(bookingService)
	bookingAdminHandler := bookings.NewAdminHandler(bookingService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	authHandler := auth.NewHandler(authService)
	feedHandler := notifications.NewHandler(hub)

	router := gin.New()
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))
	router.Use(middleware.SecurityHeaders())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOriginList()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"}
	router.Use(cors.New(corsConfig))

	// Health check and metrics (no auth required)
	router.GET("/healthz", common.HealthCheck(cfg.Server.ServiceName, version))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		// Public storefront
		fleetHandler.RegisterRoutes(api)

		// Booking routes get a per-request deadline so a stuck submit
		// fails fast instead of hanging the storefront form
		bookingTimeout := time.Duration(cfg.Server.BookingTimeout) * time.Second
		bookingHandler.RegisterRoutes(api.Group("", timeoutMiddleware(bookingTimeout)))

		// Admin console
		authHandler.RegisterRoutes(api.Group("/admin"))
		admin := api.Group("/admin", middleware.AuthMiddleware(cfg.JWT.Secret), middleware.RequireAdmin())
		{
			fleetAdminHandler.RegisterRoutes(admin)
			bookingAdminHandler.RegisterRoutes(admin)
			analyticsHandler.RegisterRoutes(admin)
			feedHandler.RegisterRoutes(admin)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}

func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(d),
		timeout.WithHandler(func(c *gin.Context) { c.Next() }),
		timeout.WithResponse(func(c *gin.Context) {
			common.ErrorResponse(c, http.StatusRequestTimeout, "request timed out")
		}),
	)
}
