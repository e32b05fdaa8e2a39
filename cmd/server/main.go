package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/peoplehq/people-api/internal/config"
	"github.com/peoplehq/people-api/internal/middleware"
	apperrors "github.com/peoplehq/people-api/internal/pkg/errors"
	"github.com/peoplehq/people-api/internal/pkg/logger"
)

const appVersion = "0.1.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Log

	// Initialize Sentry if configured
	sentryEnabled := cfg.Sentry.DSN != ""
	if sentryEnabled {
		sentryConfig := middleware.SentryConfig{
			DSN:          cfg.Sentry.DSN,
			Environment:  cfg.Sentry.Environment,
			Release:      "people-api@" + appVersion,
			FlushTimeout: 5 * time.Second,
		}
		if err := middleware.InitSentry(sentryConfig); err != nil {
			log.Error("failed to initialize Sentry", zap.Error(err))
			sentryEnabled = false
		} else {
			defer middleware.FlushSentry(5 * time.Second)
		}
	}

	// Initialize dependencies
	deps, err := initDependencies(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName:               "People API",
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          errorHandler(log, sentryEnabled),
	})

	// Apply global middleware
	app.Use(middleware.ResponseTime())
	app.Use(middleware.RequestID())

	loggerMiddleware := middleware.NewLoggerMiddleware(middleware.DefaultLoggerConfig(log))
	app.Use(loggerMiddleware.Handler())

	app.Use(middleware.Recover(log, sentryEnabled))

	metricsMiddleware := middleware.NewMetricsMiddleware(middleware.DefaultMetricsConfig())
	app.Use(metricsMiddleware.Handler())

	// Register routes
	registerRoutes(app, deps)

	// Start server
	go func() {
		addr := cfg.Server.Addr()
		log.Info("starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}

// errorHandler creates the app-level error boundary. Recognized application
// errors keep their code and status; anything else becomes a uniform 500
// envelope and is logged at error severity with full detail.
func errorHandler(log *zap.Logger, sentryEnabled bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		requestID := middleware.GetRequestID(c)

		if appErr := apperrors.GetAppError(err); appErr != nil {
			if appErr.StatusCode >= 500 {
				log.Error("request failed",
					zap.String("request_id", requestID),
					zap.String("code", appErr.Code),
					zap.String("path", c.Path()),
					zap.String("method", c.Method()),
					zap.Error(err),
				)
			}
			body := fiber.Map{
				"code":      appErr.Code,
				"message":   appErr.Message,
				"requestId": requestID,
			}
			if len(appErr.Details) > 0 {
				body["details"] = appErr.Details
			}
			return c.Status(appErr.StatusCode).JSON(fiber.Map{"error": body})
		}

		// fiber's own errors (404 route miss, body limits) keep their status
		// but share the envelope shape.
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{
				"error": fiber.Map{
					"code":      apperrors.CodeInternal,
					"message":   e.Message,
					"requestId": requestID,
				},
			})
		}

		log.Error("unhandled error",
			zap.String("request_id", requestID),
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.Error(err),
		)

		if sentryEnabled {
			middleware.CaptureError(c, err)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fiber.Map{
				"code":      apperrors.CodeInternal,
				"message":   "An unexpected error occurred",
				"requestId": requestID,
			},
		})
	}
}
