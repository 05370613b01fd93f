package jwtPkg

import (
	"BlogGolang/internal/entity"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const AdminLocalsKey = "admin"

var (
	ErrEmptyAuthorization   = errors.New("empty Authorization header")
	ErrInvalidAuthorization = errors.New("invalid Authorization format")
	ErrSecretNotConfigured  = errors.New("JWT secret not configured")
	ErrInvalidClaims        = errors.New("invalid token claims")
)

type ITokenManager interface {
	Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error)
	Verify(accessToken string) (jwt.MapClaims, error)
}

type tokenManager struct {
	secret []byte
	log    *logrus.Logger
}

func New(secret string, log *logrus.Logger) ITokenManager {
	return &tokenManager{
		secret: []byte(secret),
		log:    log,
	}
}

func (m *tokenManager) Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	if len(m.secret) == 0 {
		return "", 0, ErrSecretNotConfigured
	}

	now := time.Now()
	expiredAt := now.Add(expiresIn).Unix()

	claims := jwt.MapClaims{}
	for k, v := range data {
		claims[k] = v
	}
	claims["exp"] = expiredAt
	claims["iat"] = now.Unix()
	claims["jti"] = uuid.NewString()

	m.log.WithField("claims", claims).Debug("Creating token with claims")

	to := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := to.SignedString(m.secret)
	if err != nil {
		m.log.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

func (m *tokenManager) Verify(accessToken string) (jwt.MapClaims, error) {
	if len(m.secret) == 0 {
		return nil, ErrSecretNotConfigured
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// ExtractBearerToken returns the token part of an "Authorization: Bearer <token>" header.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyAuthorization
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return "", ErrInvalidAuthorization
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" || strings.Contains(accessToken, " ") {
		return "", ErrInvalidAuthorization
	}

	return accessToken, nil
}

func GetAdminLoginData(c *fiber.Ctx) (entity.AdminLoginData, error) {
	admin, ok := c.Locals(AdminLocalsKey).(entity.AdminLoginData)
	if !ok {
		return entity.AdminLoginData{}, fiber.ErrUnauthorized
	}

	return admin, nil
}
