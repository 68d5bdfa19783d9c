package middleware

import (
	"strconv"
	"time"

	"go-inventory-catalog/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency labelled by the matched route pattern,
// so /api/products/1 and /api/products/2 share one series.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		metrics.RequestInFlight.Inc()
		defer metrics.RequestInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := c.Route().Path
		if path == "" || path == "/" {
			path = "other"
		}

		labels := []string{c.Method(), path, strconv.Itoa(status)}
		metrics.RequestTotal.WithLabelValues(labels...).Inc()
		metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
