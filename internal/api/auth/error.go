package auth

import (
	"BlogGolang/pkg/response"
	"net/http"
)

var (
	ErrAdminAlreadyExists = response.NewError(http.StatusBadRequest, "admin already exists")
	ErrInvalidCredentials = response.NewError(http.StatusBadRequest, "invalid credentials")
	ErrAdminNotFound      = response.NewError(http.StatusNotFound, "admin not found")
	ErrUnauthenticated    = response.NewError(http.StatusUnauthorized, "invalid or expired token")
	ErrIssueToken         = response.NewError(http.StatusInternalServerError, "failed to issue token")
)
