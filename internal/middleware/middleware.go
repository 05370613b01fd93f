package middleware

import (
	"BlogGolang/internal/entity"
	jwtPkg "BlogGolang/pkg/jwt"
	"BlogGolang/pkg/metrics"
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SessionResolver loads the admin a verified token claims to belong to.
type SessionResolver interface {
	GetSessionAdmin(ctx context.Context, id string) (entity.Admin, error)
}

type Middleware interface {
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	NewMetricsMiddleware() fiber.Handler
	NewCORSMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	token               *tokenMiddleware
	loggingMiddleware   *loggingMiddleware
	requestIDMiddleware fiber.Handler
	metrics             metrics.IMetrics
	cors                CORSConfig
	log                 *logrus.Logger
}

func New(
	logger *logrus.Logger,
	tokenManager jwtPkg.ITokenManager,
	sessions SessionResolver,
	metricsCollector metrics.IMetrics,
	cors CORSConfig,
) Middleware {
	if metricsCollector == nil {
		metricsCollector = metrics.Nop{}
	}

	return &middleware{
		token:               newTokenMiddleware(tokenManager, sessions),
		loggingMiddleware:   newLoggingMiddleware(logger),
		requestIDMiddleware: NewRequestIDMiddleware(),
		metrics:             metricsCollector,
		cors:                cors,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
