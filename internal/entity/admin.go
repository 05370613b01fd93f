package entity

import (
	"database/sql"
	"time"
)

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "superadmin"
	RoleAdmin      AdminRole = "admin"
	RoleModerator  AdminRole = "moderator"
)

func (r AdminRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

type Admin struct {
	ID          string         `db:"id"`
	Username    string         `db:"username"`
	Password    string         `db:"password"`
	Email       sql.NullString `db:"email"`
	IsActive    bool           `db:"is_active"`
	Role        AdminRole      `db:"role"`
	LastLogin   sql.NullTime   `db:"last_login"`
	ActiveToken sql.NullString `db:"active_token"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// AdminLoginData is the identity the session guard attaches to a request.
type AdminLoginData struct {
	ID       string
	Username string
	Role     AdminRole
}
