package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const unmatchedRoute = "unmatched"

func (m *middleware) NewMetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := unmatchedRoute
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}

		m.metrics.RecordRequest(c.Method(), route, c.Response().StatusCode(), time.Since(start))

		return err
	}
}
