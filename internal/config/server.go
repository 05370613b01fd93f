package config

import (
	"BlogGolang/database/postgres"
	authHandler "BlogGolang/internal/api/auth/handler"
	authRepository "BlogGolang/internal/api/auth/repository"
	authService "BlogGolang/internal/api/auth/service"
	blogHandler "BlogGolang/internal/api/blog/handler"
	blogRepository "BlogGolang/internal/api/blog/repository"
	blogService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/middleware"
	"BlogGolang/pkg/bcrypt"
	"BlogGolang/pkg/imagestore"
	jwtPkg "BlogGolang/pkg/jwt"
	"BlogGolang/pkg/metrics"
	"BlogGolang/pkg/sanitizer"
	"BlogGolang/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	cfg          AppConfig
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	bcryptUtils  bcrypt.IBcrypt
	tokenManager jwtPkg.ITokenManager
	imageStore   imagestore.ItfImageStore
	sanitizer    sanitizer.ISanitizer
	metrics      metrics.IMetrics
	registry     *prometheus.Registry
	handlers     []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.bcryptUtils == nil {
		server.bcryptUtils = bcrypt.New()
	}
	if server.sanitizer == nil {
		server.sanitizer = sanitizer.New()
	}
	if server.metrics == nil {
		server.metrics = metrics.Nop{}
	}
	if server.tokenManager == nil {
		server.tokenManager = jwtPkg.New(server.cfg.JWTSecret, server.log)
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithConfig(cfg AppConfig) ServerOption {
	return func(s *Server) error {
		s.cfg = cfg
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to PostgreSQL and applies pending migrations.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New(s.cfg.DatabaseURL)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.RunMigrations(s.cfg.DatabaseURL); err != nil {
			_ = db.Close()
			if s.log != nil {
				s.log.Errorf("Failed to run migrations: %v", err)
			}
			return err
		}

		s.db = db
		return nil
	}
}

func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

// WithImageStore builds the configured image backend. A misconfigured store
// only disables uploads; the rest of the API keeps serving.
func WithImageStore() ServerOption {
	return func(s *Server) error {
		store, err := imagestore.New(s.cfg.ImageStore, s.log)
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Image uploads disabled: %v", err)
			}
			return nil
		}
		s.imageStore = store
		return nil
	}
}

func WithTokenManager() ServerOption {
	return func(s *Server) error {
		if s.cfg.JWTSecret == "" {
			return fmt.Errorf("JWT secret is required")
		}
		s.tokenManager = jwtPkg.New(s.cfg.JWTSecret, s.log)
		return nil
	}
}

func WithMetrics(registry *prometheus.Registry) ServerOption {
	return func(s *Server) error {
		s.registry = registry
		s.metrics = metrics.NewCollector(registry)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.NewWithCost(s.cfg.BcryptCost)
		return nil
	}
}

func WithSanitizer() ServerOption {
	return func(s *Server) error {
		s.sanitizer = sanitizer.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	debug := s.cfg.IsDevelopment()

	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.tokenManager, s.utils, s.metrics, s.cfg.TokenTTL)

	s.middleware = middleware.New(s.log, s.tokenManager, authServices, s.metrics, s.cfg.CORS)

	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, debug)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.New(s.log, blogRepo, s.imageStore, s.utils, s.validator, s.sanitizer, s.metrics)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices, debug)

	s.handlers = append(s.handlers, authHandlers, blogHandlers)
}

// Setup installs middleware and routes on the fiber app. Run calls it; tests
// call it directly and drive the app with app.Test.
func (s *Server) Setup() {
	s.engine.Use(s.middleware.NewCORSMiddleware())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewMetricsMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(recover.New(recover.Config{EnableStackTrace: s.cfg.IsDevelopment()}))

	s.setupHealthCheck()

	if s.registry != nil {
		s.engine.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(s.registry)))
	}

	router := s.engine.Group("/api")
	router.Get("/health", s.health)

	for _, h := range s.handlers {
		h.Start(router)
	}

	s.engine.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Route not found",
			"path":   ctx.OriginalURL(),
			"method": ctx.Method(),
		})
	})
}

func (s *Server) Run() error {
	s.Setup()

	port := s.cfg.Port
	if port == "" {
		port = "5000"
	}

	s.log.Infof("Server listening on port %s", port)

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		return err
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Blog API is running",
		})
	})
}

func (s *Server) health(ctx *fiber.Ctx) error {
	dbUp := false
	if s.db != nil {
		c, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()
		dbUp = s.db.PingContext(c) == nil
	}

	return ctx.JSON(fiber.Map{
		"status":    "OK",
		"database":  dbUp,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
