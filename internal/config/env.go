package config

import (
	"BlogGolang/internal/middleware"
	"BlogGolang/pkg/cloudinary"
	"BlogGolang/pkg/imagestore"
	"BlogGolang/pkg/s3"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://sjwrites.com",
	"https://www.sjwrites.com",
}

// AppConfig is read from the environment once at startup and passed down explicitly.
type AppConfig struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	Environment string

	CORS       middleware.CORSConfig
	ImageStore imagestore.Config

	TokenTTL   time.Duration
	BcryptCost int
}

func (c AppConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func LoadAppConfig() (AppConfig, error) {
	cfg := AppConfig{}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return AppConfig{}, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.Port = getEnvString("PORT", "5000")
	cfg.Environment = getEnvString("APP_ENV", getEnvString("NODE_ENV", EnvDevelopment))
	cfg.CORS = middleware.CORSConfig{
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
	}
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", 7*24*time.Hour)
	cfg.BcryptCost = getEnvInt("BCRYPT_COST", 12)

	cfg.ImageStore = imagestore.Config{
		Cloudinary: cloudinary.Config{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    getEnvString("CLOUDINARY_FOLDER", "blog_images"),
		},
		S3: s3.Config{
			Region:          getEnvString("AWS_REGION", "us-east-1"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("AWS_BUCKET_NAME"),
			Folder:          getEnvString("AWS_FOLDER", "blog_images"),
		},
	}

	defaultProvider := imagestore.ProviderS3
	if cfg.ImageStore.Cloudinary.CloudName != "" {
		defaultProvider = imagestore.ProviderCloudinary
	}
	cfg.ImageStore.Provider = strings.ToLower(getEnvString("IMAGE_STORE", defaultProvider))

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func getEnvList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	var list []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultVal
	}
	return list
}
