// Package imagestore picks the backend that turns uploaded files into durable URLs.
package imagestore

import (
	"BlogGolang/pkg/cloudinary"
	"BlogGolang/pkg/s3"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

const (
	ProviderCloudinary = "cloudinary"
	ProviderS3         = "s3"
)

type ItfImageStore interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type Config struct {
	Provider   string
	Cloudinary cloudinary.Config
	S3         s3.Config
}

func New(cfg Config, log *logrus.Logger) (ItfImageStore, error) {
	switch cfg.Provider {
	case ProviderCloudinary:
		log.Info("Using Cloudinary image store")
		return cloudinary.New(cfg.Cloudinary, log)
	case ProviderS3:
		log.Info("Using S3 image store")
		return s3.New(cfg.S3, log)
	default:
		return nil, fmt.Errorf("unknown image store provider %q", cfg.Provider)
	}
}
