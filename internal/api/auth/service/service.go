package authService

import (
	"BlogGolang/internal/api/auth"
	authRepository "BlogGolang/internal/api/auth/repository"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/bcrypt"
	jwtPkg "BlogGolang/pkg/jwt"
	"BlogGolang/pkg/metrics"
	"BlogGolang/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTokenTTL is how long an issued admin token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, req auth.RegisterAdminRequest) (string, error)
	Login(ctx context.Context, req auth.LoginAdminRequest) (string, error)
	Logout(ctx context.Context, adminID string) error
	GetSessionAdmin(ctx context.Context, id string) (entity.Admin, error)
}

type authService struct {
	log          *logrus.Logger
	repo         authRepository.Repository
	bcryptUtils  bcrypt.IBcrypt
	tokenManager jwtPkg.ITokenManager
	utils        utils.IUtils
	metrics      metrics.IMetrics
	tokenTTL     time.Duration
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	tokenManager jwtPkg.ITokenManager,
	utils utils.IUtils,
	metrics metrics.IMetrics,
	tokenTTL time.Duration,
) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	return &authService{
		log:          log,
		repo:         repo,
		bcryptUtils:  bcryptUtils,
		tokenManager: tokenManager,
		utils:        utils,
		metrics:      metrics,
		tokenTTL:     tokenTTL,
	}
}
