package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ManifoldAI-Apps/triuno-app/internal/ai"
	"github.com/ManifoldAI-Apps/triuno-app/internal/config"
	"github.com/ManifoldAI-Apps/triuno-app/internal/database"
	"github.com/ManifoldAI-Apps/triuno-app/internal/feed"
	"github.com/ManifoldAI-Apps/triuno-app/internal/handlers"
	"github.com/ManifoldAI-Apps/triuno-app/internal/logging"
	"github.com/ManifoldAI-Apps/triuno-app/internal/middleware"
	"github.com/ManifoldAI-Apps/triuno-app/internal/routes"
	"github.com/ManifoldAI-Apps/triuno-app/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Seed the Guardian account and the default task templates
	guardianID, err := database.SeedGuardian(database.DB)
	if err != nil {
		slog.Error("guardian seed failed", "error", err)
		os.Exit(1)
	}
	if err := database.SeedDefaults(database.DB); err != nil {
		slog.Error("default seed failed", "error", err)
		os.Exit(1)
	}

	// Feed fan-out hub
	hubDone := make(chan struct{})
	hub := feed.NewHub()
	go hub.Run(hubDone)

	// Services
	notificationService := services.NewNotificationService(database.DB)
	authService := services.NewAuthService(database.DB, cfg)
	userService := services.NewUserService(database.DB, notificationService)
	connectionService := services.NewConnectionService(database.DB, notificationService)
	guardianAI := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL, cfg.OpenAIModel, cfg.AITimeout)
	messageService := services.NewMessageService(database.DB, guardianAI, guardianID, notificationService)
	gratitudeService := services.NewGratitudeService(database.DB, userService, notificationService, hub)
	taskService := services.NewTaskService(database.DB)
	eventService := services.NewEventService(database.DB, userService, notificationService)
	wisdomService := services.NewWisdomService(database.DB, notificationService)

	// Handlers
	h := &routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		User:         handlers.NewUserHandler(userService),
		Connection:   handlers.NewConnectionHandler(connectionService),
		Message:      handlers.NewMessageHandler(messageService),
		Gratitude:    handlers.NewGratitudeHandler(gratitudeService, userService),
		Task:         handlers.NewTaskHandler(taskService),
		Event:        handlers.NewEventHandler(eventService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Content:      handlers.NewContentHandler(wisdomService),
		Admin: handlers.NewAdminHandler(
			userService, taskService, eventService, wisdomService, notificationService,
		),
		Feed: handlers.NewFeedHandler(hub),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	close(hubDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
