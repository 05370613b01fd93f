package auth

import (
	"BlogGolang/internal/entity"
	"time"
)

type RegisterAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type LoginAdminRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type AdminResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	IsActive  bool       `json:"isActive"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewAdminResponse(admin entity.Admin) AdminResponse {
	res := AdminResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		IsActive:  admin.IsActive,
		Role:      string(admin.Role),
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
	if admin.Email.Valid {
		res.Email = admin.Email.String
	}
	if admin.LastLogin.Valid {
		lastLogin := admin.LastLogin.Time
		res.LastLogin = &lastLogin
	}
	return res
}
