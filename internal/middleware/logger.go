package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/peoplehq/people-api/internal/pkg/errors"
)

// LoggerConfig configures the logger middleware
type LoggerConfig struct {
	// Logger instance
	Logger *zap.Logger
	// Skip function
	Skip func(*fiber.Ctx) bool
}

// DefaultLoggerConfig returns default logger config
func DefaultLoggerConfig(logger *zap.Logger) LoggerConfig {
	return LoggerConfig{
		Logger: logger,
		Skip:   HealthSkipper,
	}
}

// LoggerMiddleware creates a request logging middleware
type LoggerMiddleware struct {
	config LoggerConfig
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(config LoggerConfig) *LoggerMiddleware {
	return &LoggerMiddleware{
		config: config,
	}
}

// Handler returns the logger handler
func (m *LoggerMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.config.Skip != nil && m.config.Skip(c) {
			return c.Next()
		}

		start := time.Now()

		err := c.Next()

		status := ResponseStatus(c, err)

		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		// Log based on status code
		switch {
		case status >= 500:
			m.config.Logger.Error("request completed", fields...)
		case status >= 400:
			m.config.Logger.Warn("request completed", fields...)
		default:
			m.config.Logger.Info("request completed", fields...)
		}

		return err
	}
}

// ResponseStatus resolves the status a request will be answered with.
// When a handler returns an error the status is not on the response yet;
// the app-level error handler writes it only after the middleware stack
// unwinds, so it has to be derived from the error itself.
func ResponseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr.StatusCode
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// HealthSkipper skips logging for health and metrics endpoints
func HealthSkipper(c *fiber.Ctx) bool {
	path := c.Path()
	return path == "/health" || path == "/readyz" || path == "/metrics"
}
