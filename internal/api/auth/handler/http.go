package authHandler

import (
	authService "BlogGolang/internal/api/auth/service"
	"BlogGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.AuthService
	debug       bool
}

func New(
	log *logrus.Logger,
	authService authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	debug bool,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: authService,
		debug:       debug,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	admin := srv.Group("/admin")

	admin.Post("/register", h.Register)
	admin.Post("/login", h.Login)
	admin.Get("/me", h.middleware.NewTokenMiddleware, h.Me)
	admin.Post("/logout", h.middleware.NewTokenMiddleware, h.Logout)
}
