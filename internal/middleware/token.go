package middleware

import (
	"BlogGolang/internal/entity"
	jwtPkg "BlogGolang/pkg/jwt"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// unauthenticatedMessage is the only message the guard ever answers with, so
// callers cannot tell a bad signature from a superseded session.
const unauthenticatedMessage = "invalid or expired token"

type tokenMiddleware struct {
	tokenManager jwtPkg.ITokenManager
	sessions     SessionResolver
}

func newTokenMiddleware(tokenManager jwtPkg.ITokenManager, sessions SessionResolver) *tokenMiddleware {
	return &tokenMiddleware{
		tokenManager: tokenManager,
		sessions:     sessions,
	}
}

// NewTokenMiddleware is the session guard for admin routes. A request passes
// only when the bearer token verifies, names an existing active admin, and is
// byte-equal to that admin's stored active token.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)
	errHandler := handlerUtil.New(m.log, false)

	reject := func(reason string, fields logrus.Fields) error {
		if fields == nil {
			fields = logrus.Fields{}
		}
		fields["request_id"] = requestID
		fields["reason"] = reason
		fields["path"] = ctx.Path()
		m.log.WithFields(fields).Warn("Session guard rejected request")
		return errHandler.HandleUnauthorized(ctx, requestID, unauthenticatedMessage)
	}

	if m.token.tokenManager == nil || m.token.sessions == nil {
		return reject("session guard not configured", nil)
	}

	token, err := jwtPkg.ExtractBearerToken(ctx.Get(fiber.HeaderAuthorization))
	if err != nil {
		return reject(err.Error(), nil)
	}

	claims, err := m.token.tokenManager.Verify(token)
	if err != nil {
		return reject("token verification failed", logrus.Fields{"error": err.Error()})
	}

	adminID, ok := claims["id"].(string)
	if !ok || adminID == "" {
		return reject("token has no admin id", nil)
	}

	admin, err := m.token.sessions.GetSessionAdmin(contextPkg.FromFiberCtx(ctx), adminID)
	if err != nil {
		return reject("admin lookup failed", logrus.Fields{"admin_id": adminID, "error": err.Error()})
	}

	if !admin.IsActive {
		return reject("admin is inactive", logrus.Fields{"admin_id": adminID})
	}

	if !admin.ActiveToken.Valid || admin.ActiveToken.String != token {
		return reject("token is not the active session", logrus.Fields{"admin_id": adminID})
	}

	ctx.Locals(jwtPkg.AdminLocalsKey, entity.AdminLoginData{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	})

	m.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"admin_id":   admin.ID,
	}).Debug("Session guard accepted request")

	return ctx.Next()
}
