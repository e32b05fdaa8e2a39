package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/peoplehq/people-api/internal/pkg/errors"
)

func newMetricsApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr := apperrors.GetAppError(err); appErr != nil {
				return c.Status(appErr.StatusCode).JSON(fiber.Map{
					"error": fiber.Map{"code": appErr.Code},
				})
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	m := NewMetricsMiddleware(DefaultMetricsConfig())
	app.Use(m.Handler())
	return app
}

func TestMetricsMiddleware(t *testing.T) {
	t.Run("counts successful requests under their status", func(t *testing.T) {
		app := newMetricsApp()
		app.Get("/metered-ok", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "OK"})
		})

		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metered-ok", "200"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metered-ok", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metered-ok", "200"))
		assert.Equal(t, before+1, after)
	})

	t.Run("counts handler errors under the resolved status", func(t *testing.T) {
		app := newMetricsApp()
		app.Get("/metered-missing", func(c *fiber.Ctx) error {
			return apperrors.NotFound("gone")
		})

		before404 := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metered-missing", "404"))
		before200 := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metered-missing", "200"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metered-missing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		after404 := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metered-missing", "404"))
		after200 := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metered-missing", "200"))
		assert.Equal(t, before404+1, after404)
		assert.Equal(t, before200, after200)
	})

	t.Run("skips the metrics endpoint itself", func(t *testing.T) {
		app := newMetricsApp()
		app.Get("/metrics", func(c *fiber.Ctx) error {
			return c.SendString("")
		})

		before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics", "200"))

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)

		after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics", "200"))
		assert.Equal(t, before, after)
	})
}
