package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORSConfig is the allow-list handed to the HTTP layer at startup.
type CORSConfig struct {
	AllowedOrigins []string
}

func (m *middleware) NewCORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(m.cors.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		ExposeHeaders:    RequestIDKey,
		AllowCredentials: true,
		MaxAge:           86400,
	})
}
