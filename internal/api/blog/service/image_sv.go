package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := s.checkImage(file); err != nil {
		return "", err
	}

	return s.upload(ctx, file)
}

// AttachImage uploads file and stores its URL in the given slot of the post.
// Slot and file are checked before the post lookup so bad input never reaches storage.
func (s *blogsService) AttachImage(ctx context.Context, id string, slot string, file *multipart.FileHeader) (string, entity.Blog, error) {
	imageSlot := entity.ImageSlot(slot)
	if !imageSlot.Valid() {
		return "", entity.Blog{}, blogs.ErrInvalidImageType
	}

	if err := s.checkImage(file); err != nil {
		return "", entity.Blog{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return "", entity.Blog{}, err
	}

	if _, err := repo.Blogs.GetBlogByID(ctx, id); err != nil {
		return "", entity.Blog{}, err
	}

	url, err := s.upload(ctx, file)
	if err != nil {
		return "", entity.Blog{}, err
	}

	if err := repo.Blogs.SetImage(ctx, id, imageSlot, url); err != nil {
		return "", entity.Blog{}, err
	}

	blog, err := s.loadBlog(ctx, repo, id)
	if err != nil {
		return "", entity.Blog{}, err
	}

	return url, blog, nil
}

func (s *blogsService) checkImage(file *multipart.FileHeader) error {
	if file == nil {
		return blogs.ErrNoImageFile
	}
	if err := s.utils.ValidateImageFile(file); err != nil {
		return blogs.ErrInvalidFileType
	}
	return nil
}

func (s *blogsService) upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.imageStore == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Error("Image upload requested without a configured image store")
		return "", blogs.ErrImageStoreMissing
	}

	url, err := s.imageStore.UploadImage(ctx, file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload image")
		return "", blogs.ErrFailedToUpload
	}

	return url, nil
}
