package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/peoplehq/people-api/internal/pkg/id"
	"github.com/peoplehq/people-api/internal/pkg/requestctx"
)

// HeaderRequestID is the header carrying the request correlation ID.
const HeaderRequestID = "X-Request-ID"

// RequestIDConfig configures the request ID middleware
type RequestIDConfig struct {
	// Header is the header key for the request ID
	Header string
	// Generator generates a new request ID
	Generator func() string
}

// DefaultRequestIDConfig returns default request ID config
func DefaultRequestIDConfig() RequestIDConfig {
	return RequestIDConfig{
		Header:    HeaderRequestID,
		Generator: id.NewRequestID,
	}
}

// RequestID creates the request ID middleware. It propagates the inbound
// header value when the client supplies one, generates a fresh ID
// otherwise, echoes the ID on the response, and binds the ambient request
// context for everything downstream.
func RequestID(config ...RequestIDConfig) fiber.Handler {
	cfg := DefaultRequestIDConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		requestID := c.Get(cfg.Header)
		if requestID == "" {
			requestID = cfg.Generator()
		}

		// Set request ID in response header
		c.Set(cfg.Header, requestID)

		// Store in locals for use in handlers
		c.Locals("requestID", requestID)

		// Bind the per-request ambient context; service and repository
		// layers read it back through ctx.
		rc := requestctx.New(requestID, c.Method(), c.Path())
		c.SetUserContext(requestctx.With(c.UserContext(), rc))

		return c.Next()
	}
}

// GetRequestID gets the request ID from the fiber context
func GetRequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals("requestID").(string); ok {
		return requestID
	}
	return ""
}
