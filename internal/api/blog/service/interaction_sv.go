package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) AddComment(ctx context.Context, id string, req blogs.AddCommentRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	username := s.sanitizer.PlainText(req.Username)
	text := s.sanitizer.PlainText(req.Text)
	if username == "" || text == "" {
		return entity.Blog{}, blogs.ErrCommentFieldsRequired
	}

	if err := s.validator.Struct(blogs.AddCommentRequest{Username: username, Text: text}); err != nil {
		return entity.Blog{}, err
	}

	now := time.Now()
	commentID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Blog{}, err
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}
	defer repo.Rollback()

	if _, err := repo.Blogs.GetBlogByID(ctx, id); err != nil {
		return entity.Blog{}, err
	}

	if err := repo.Comments.CreateComment(ctx, entity.Comment{
		ID:        commentID,
		BlogID:    id,
		Username:  username,
		Text:      text,
		CreatedAt: now,
	}); err != nil {
		return entity.Blog{}, err
	}

	blog, err := s.loadBlog(ctx, repo, id)
	if err != nil {
		return entity.Blog{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, err
	}

	s.metrics.RecordComment()

	return blog, nil
}

func (s *blogsService) LikeBlog(ctx context.Context, id string) (int64, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return 0, err
	}

	likes, err := repo.Blogs.IncrementLikes(ctx, id)
	if err != nil {
		return 0, err
	}

	s.metrics.RecordLike()

	return likes, nil
}

func (s *blogsService) ViewBlog(ctx context.Context, id string) (int64, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return 0, err
	}

	views, err := repo.Blogs.IncrementViews(ctx, id)
	if err != nil {
		return 0, err
	}

	s.metrics.RecordView()

	return views, nil
}
