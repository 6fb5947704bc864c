package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/agecare/companion-api/internal/audit"
	"github.com/agecare/companion-api/internal/config"
	"github.com/agecare/companion-api/internal/handlers"
	"github.com/agecare/companion-api/internal/logging"
	"github.com/agecare/companion-api/internal/middleware"
	"github.com/agecare/companion-api/internal/observability"
	"github.com/agecare/companion-api/internal/services"
)

// @title           Companion API
// @version         1.0
// @description     Elder-care companion service: consent-gated profile views, daily check-ins with caregiver escalation, reminders, calendar, notifications, and a safety-filtered advice agent. All state is in-memory and process-local.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// @tag.name profiles
// @tag.description Profiles and consent grants

// @tag.name checkins
// @tag.description Daily check-ins and caregiver escalation

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Stores are built once here and handed to the handlers; the audit log
	// is shared by every store.
	auditLog := audit.NewLogger(logging.Logger, nil)
	consent := services.NewConsentService(logging.Logger, auditLog, nil)
	checkin := services.NewCheckInService(logging.Logger, auditLog, nil)
	reminders := services.NewReminderService(logging.Logger, auditLog, nil)
	calendar := services.NewCalendarService(logging.Logger, auditLog)
	notifications := services.NewNotificationService(logging.Logger, auditLog)
	advice := services.NewAdviceService(services.AdviceConfig{
		BaseURL: config.AppConfig.AdviceBaseURL,
		APIKey:  config.AppConfig.AdviceAPIKey,
		Model:   config.AppConfig.AdviceModel,
		Timeout: config.AppConfig.AdviceTimeout,
	}, logging.Logger)

	api := handlers.NewAPI(consent, checkin, reminders, calendar, notifications, advice, auditLog, logging.Logger)

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics and liveness endpoints
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/v1", middleware.APIKeyAuth(config.AppConfig.APIKey))
	{
		v1.POST("/advice", api.Advice)
		v1.POST("/advice/rules", api.RuleEngine)

		v1.POST("/profiles", api.CreateProfile)
		v1.POST("/consents", api.GrantConsent)
		v1.GET("/profiles/:user_id/view/:role", api.ViewProfile)

		v1.POST("/checkins/prefs", api.SetCheckInPrefs)
		v1.POST("/checkins/:user_id/prompt", api.SendCheckInPrompt)
		v1.POST("/checkins/:user_id/response", api.RecordCheckInResponse)
		v1.GET("/checkins/:user_id/status", api.GetCheckInStatus)

		v1.POST("/reminders", api.CreateReminder)
		v1.GET("/reminders/:user_id", api.ListReminders)
		v1.POST("/reminders/:id/confirm", api.ConfirmReminder)
		v1.POST("/reminders/:id/snooze", api.SnoozeReminder)
		v1.DELETE("/reminders/:id", api.DeleteReminder)

		v1.POST("/calendar/events", api.CreateCalendarEvent)
		v1.GET("/calendar/events/:user_id", api.ListCalendarEvents)

		v1.POST("/notifications", api.SendNotification)

		v1.GET("/caregiver/dashboard", api.CaregiverDashboard)
		v1.GET("/audit/entries", api.ListAuditEntries)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
