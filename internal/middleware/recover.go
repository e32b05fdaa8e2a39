package middleware

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/peoplehq/people-api/internal/pkg/errors"
)

// SentryConfig holds Sentry-specific configuration
type SentryConfig struct {
	DSN          string
	Environment  string
	Release      string
	FlushTimeout time.Duration
}

// InitSentry initializes the Sentry SDK
func InitSentry(config SentryConfig) error {
	if config.DSN == "" {
		return nil // Sentry disabled if no DSN
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.DSN,
		Environment:      config.Environment,
		Release:          config.Release,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	return nil
}

// FlushSentry flushes any buffered events to Sentry
func FlushSentry(timeout time.Duration) {
	sentry.Flush(timeout)
}

// CaptureError reports an error to Sentry from a fiber context
func CaptureError(c *fiber.Ctx, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetTag("request_id", GetRequestID(c))
	hub.Scope().SetExtra("path", c.Path())
	hub.Scope().SetExtra("method", c.Method())
	hub.CaptureException(err)
}

// Recover creates a panic recovery middleware. Panics are logged at error
// severity with the stack, optionally reported to Sentry, and answered
// with the uniform internal error envelope.
func Recover(logger *zap.Logger, sentryEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				var panicErr error
				switch v := r.(type) {
				case error:
					panicErr = v
				default:
					panicErr = fmt.Errorf("%v", v)
				}

				logger.Error("panic recovered",
					zap.Error(panicErr),
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Path()),
					zap.String("method", c.Method()),
					zap.String("stack", string(stack)),
				)

				if sentryEnabled {
					hub := sentry.CurrentHub().Clone()
					hub.Scope().SetTag("request_id", GetRequestID(c))
					hub.Scope().SetExtra("stack_trace", string(stack))
					hub.Scope().SetLevel(sentry.LevelFatal)
					hub.RecoverWithContext(c.Context(), r)
					hub.Flush(2 * time.Second)
				}

				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": fiber.Map{
						"code":      apperrors.CodeInternal,
						"message":   "An unexpected error occurred",
						"requestId": GetRequestID(c),
					},
				})
			}
		}()

		return c.Next()
	}
}
