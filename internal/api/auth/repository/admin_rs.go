package authRepository

import (
	"BlogGolang/internal/api/auth"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const uniqueViolation = "23505"

func (r *adminsRepository) CreateAdmin(ctx context.Context, admin entity.Admin) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         admin.ID,
		"username":   admin.Username,
		"password":   admin.Password,
		"email":      admin.Email,
		"is_active":  admin.IsActive,
		"role":       admin.Role,
		"created_at": admin.CreatedAt,
		"updated_at": admin.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAdmin, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAdmin")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"username":   admin.Username,
			}).Warn("CreateAdmin duplicate username")
			return auth.ErrAdminAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating admin")
		return err
	}

	return nil
}

func (r *adminsRepository) GetByUsername(ctx context.Context, username string) (entity.Admin, error) {
	return r.getOne(ctx, queryGetAdminByUsername, map[string]interface{}{"username": username}, "GetByUsername")
}

// GetByID never selects the password hash.
func (r *adminsRepository) GetByID(ctx context.Context, id string) (entity.Admin, error) {
	return r.getOne(ctx, queryGetAdminByID, map[string]interface{}{"id": id}, "GetByID")
}

func (r *adminsRepository) getOne(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) (entity.Admin, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var admin entity.Admin

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.Admin{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&admin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug(op + " no rows found")
			return entity.Admin{}, auth.ErrAdminNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.Admin{}, err
	}

	return admin, nil
}

func (r *adminsRepository) SetActiveToken(ctx context.Context, id string, token string, lastLogin time.Time) error {
	return r.exec(ctx, querySetActiveToken, map[string]interface{}{
		"id":           id,
		"active_token": token,
		"last_login":   lastLogin,
		"updated_at":   lastLogin,
	}, "SetActiveToken")
}

func (r *adminsRepository) ClearActiveToken(ctx context.Context, id string) error {
	return r.exec(ctx, queryClearActiveToken, map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}, "ClearActiveToken")
}

func (r *adminsRepository) exec(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return auth.ErrAdminNotFound
	}

	return nil
}
