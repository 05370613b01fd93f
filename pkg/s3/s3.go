package s3

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Folder          string
}

type ItfS3 interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type s3Client struct {
	uploader   *s3manager.Uploader
	bucketName string
	folder     string
	log        *logrus.Logger
}

func New(cfg Config, log *logrus.Logger) (ItfS3, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("AWS_BUCKET_NAME is not set")
	}

	sess, err := newSession(cfg)
	if err != nil {
		return nil, err
	}

	return &s3Client{
		uploader:   s3manager.NewUploader(sess),
		bucketName: cfg.BucketName,
		folder:     cfg.Folder,
		log:        log,
	}, nil
}

func (s *s3Client) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func(src multipart.File) {
		if err := src.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close uploaded file")
		}
	}(src)

	key := path.Join(s.folder, generateUniqueFileName(file.Filename))

	uploadOutput, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload: %w", err)
	}

	return uploadOutput.Location, nil
}

func newSession(cfg Config) (*session.Session, error) {
	return session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
}

func generateUniqueFileName(fileName string) string {
	clean := strings.ReplaceAll(path.Base(fileName), " ", "_")
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), clean)
}
