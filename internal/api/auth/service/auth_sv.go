package authService

import (
	"BlogGolang/internal/api/auth"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *authService) Register(ctx context.Context, req auth.RegisterAdminRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	username := strings.TrimSpace(req.Username)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}
	defer repo.Rollback()

	_, err = repo.Admins.GetByUsername(ctx, username)
	switch {
	case err == nil:
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   username,
		}).Warn("Admin already exists")
		return "", auth.ErrAdminAlreadyExists
	case !errors.Is(err, auth.ErrAdminNotFound):
		return "", err
	}

	hashed, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return "", err
	}

	now := time.Now()
	adminID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return "", err
	}

	admin := entity.Admin{
		ID:        adminID,
		Username:  username,
		Password:  hashed,
		IsActive:  true,
		Role:      entity.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" {
		admin.Email = sql.NullString{String: email, Valid: true}
	}

	if err := repo.Admins.CreateAdmin(ctx, admin); err != nil {
		return "", err
	}

	token, err := s.startSession(ctx, repo.Admins, admin, now)
	if err != nil {
		return "", err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"admin_id":   admin.ID,
	}).Info("Admin registered")

	return token, nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginAdminRequest) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}
	defer repo.Rollback()

	admin, err := repo.Admins.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login for unknown username")
			s.metrics.RecordLogin("invalid_credentials")
			return "", auth.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.bcryptUtils.ComparePassword(admin.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"admin_id":   admin.ID,
		}).Warn("Password comparison failed")
		s.metrics.RecordLogin("invalid_credentials")
		return "", auth.ErrInvalidCredentials
	}

	if !admin.IsActive {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"admin_id":   admin.ID,
		}).Warn("Login for inactive admin")
		s.metrics.RecordLogin("inactive")
		return "", auth.ErrInvalidCredentials
	}

	token, err := s.startSession(ctx, repo.Admins, admin, time.Now())
	if err != nil {
		return "", err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return "", err
	}

	s.metrics.RecordLogin("success")
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"admin_id":   admin.ID,
	}).Info("Admin logged in")

	return token, nil
}

func (s *authService) Logout(ctx context.Context, adminID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Admins.ClearActiveToken(ctx, adminID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"admin_id":   adminID,
	}).Info("Admin logged out")

	return nil
}

// GetSessionAdmin loads the admin a bearer token claims to belong to. The
// returned record never carries the password hash.
func (s *authService) GetSessionAdmin(ctx context.Context, id string) (entity.Admin, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.Admin{}, err
	}

	admin, err := repo.Admins.GetByID(ctx, id)
	if err != nil {
		return entity.Admin{}, err
	}
	admin.Password = ""

	return admin, nil
}

// startSession issues a fresh token and overwrites the stored active token,
// which invalidates whatever token the admin held before.
func (s *authService) startSession(ctx context.Context, admins sessionWriter, admin entity.Admin, now time.Time) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	token, _, err := s.tokenManager.Sign(map[string]interface{}{
		"id":       admin.ID,
		"username": admin.Username,
		"role":     string(admin.Role),
	}, s.tokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return "", auth.ErrIssueToken
	}

	if err := admins.SetActiveToken(ctx, admin.ID, token, now); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store active token")
		return "", err
	}

	return token, nil
}

type sessionWriter interface {
	SetActiveToken(ctx context.Context, id string, token string, lastLogin time.Time) error
}
