package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sirupsen/logrus"
)

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

type ItfCloudinary interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type cloudinaryClient struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    *logrus.Logger
}

func New(cfg Config, log *logrus.Logger) (ItfCloudinary, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials are not set")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}

	return &cloudinaryClient{
		cld:    cld,
		folder: cfg.Folder,
		log:    log,
	}, nil
}

func (c *cloudinaryClient) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func(src multipart.File) {
		if err := src.Close(); err != nil {
			c.log.WithError(err).Warn("Failed to close uploaded file")
		}
	}(src)

	res, err := c.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: c.folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	return res.SecureURL, nil
}
