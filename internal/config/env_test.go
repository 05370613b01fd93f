package config

import (
	"BlogGolang/pkg/imagestore"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "PORT", "APP_ENV", "NODE_ENV",
		"CORS_ALLOWED_ORIGINS", "IMAGE_STORE", "CLOUDINARY_CLOUD_NAME",
		"TOKEN_TTL", "BCRYPT_COST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadAppConfig_RequiresSecrets(t *testing.T) {
	clearEnv(t)

	_, err := LoadAppConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, defaultAllowedOrigins, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, imagestore.ProviderS3, cfg.ImageStore.Provider)
	assert.Equal(t, "blog_images", cfg.ImageStore.Cloudinary.Folder)
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("TOKEN_TTL", "not-a-duration")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, imagestore.ProviderCloudinary, cfg.ImageStore.Provider)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadAppConfig_AppEnvWinsOverNodeEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, EnvTest, cfg.Environment)
}
