package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	postgres *pgxpool.Pool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(postgres *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{postgres: postgres}
}

// Health handles GET /health - basic liveness probe
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "OK",
	})
}

// Readiness handles GET /readyz - readiness probe
func (h *HealthHandler) Readiness(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	if err := h.postgres.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"reason": "postgres unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ready",
	})
}
