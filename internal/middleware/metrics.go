package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "people_api_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "people_api_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	httpActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "people_api_http_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"method"},
	)
)

// MetricsConfig configures the metrics middleware
type MetricsConfig struct {
	// Skip function
	Skip func(*fiber.Ctx) bool
}

// DefaultMetricsConfig returns default metrics config
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Skip: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics"
		},
	}
}

// MetricsMiddleware records Prometheus metrics per request
type MetricsMiddleware struct {
	config MetricsConfig
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(config MetricsConfig) *MetricsMiddleware {
	return &MetricsMiddleware{config: config}
}

// Handler returns the metrics handler
func (m *MetricsMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.config.Skip != nil && m.config.Skip(c) {
			return c.Next()
		}

		method := c.Method()
		httpActiveRequests.WithLabelValues(method).Inc()
		start := time.Now()

		err := c.Next()

		httpActiveRequests.WithLabelValues(method).Dec()

		// Route pattern rather than the raw path, so /person/:id stays one
		// series regardless of the identifier.
		path := c.Route().Path
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(
			method,
			path,
			strconv.Itoa(ResponseStatus(c, err)),
		).Inc()

		return err
	}
}
