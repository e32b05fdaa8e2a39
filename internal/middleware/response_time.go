package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HeaderResponseTime is the header carrying the request duration.
const HeaderResponseTime = "X-Response-Time"

// ResponseTime sets the X-Response-Time header on every response, success
// or failure, as milliseconds with two decimal places (e.g. "1.42ms").
func ResponseTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		elapsed := float64(time.Since(start).Microseconds()) / 1000.0
		c.Set(HeaderResponseTime, fmt.Sprintf("%.2fms", elapsed))

		return err
	}
}
