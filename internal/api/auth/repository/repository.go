package authRepository

import (
	"BlogGolang/internal/entity"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Admins:   &adminsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Admins interface {
		CreateAdmin(ctx context.Context, admin entity.Admin) error
		GetByUsername(ctx context.Context, username string) (entity.Admin, error)
		GetByID(ctx context.Context, id string) (entity.Admin, error)
		SetActiveToken(ctx context.Context, id string, token string, lastLogin time.Time) error
		ClearActiveToken(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type adminsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
