package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) GetAllBlogs(ctx context.Context, tag string) ([]entity.Blog, error) {
	return s.listBlogs(ctx, strings.ToLower(strings.TrimSpace(tag)), blogs.SortByCreatedAt)
}

func (s *blogsService) GetBlogsByTag(ctx context.Context, tag string) ([]entity.Blog, error) {
	return s.GetAllBlogs(ctx, tag)
}

func (s *blogsService) SortBlogs(ctx context.Context, by string) ([]entity.Blog, error) {
	return s.listBlogs(ctx, "", blogs.ParseSortKey(by))
}

func (s *blogsService) listBlogs(ctx context.Context, tag string, sortKey blogs.SortKey) ([]entity.Blog, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	list, err := repo.Blogs.ListBlogs(ctx, tag, sortKey)
	if err != nil {
		return nil, err
	}

	return s.attachComments(ctx, repo, list)
}

func (s *blogsService) SearchBlogs(ctx context.Context, query string) ([]entity.Blog, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, blogs.ErrSearchQueryRequired
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	list, err := repo.Blogs.SearchBlogs(ctx, query)
	if err != nil {
		return nil, err
	}

	return s.attachComments(ctx, repo, list)
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.Blog{}, err
	}

	return s.loadBlog(ctx, repo, id)
}

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = entity.DefaultAuthor
	}

	now := time.Now()
	blog := entity.Blog{
		Title:           strings.TrimSpace(req.Title),
		Content:         req.Content,
		Author:          author,
		AuthorImage:     strings.TrimSpace(req.AuthorImage),
		BlogImage:       strings.TrimSpace(req.BlogImage),
		Tags:            NormalizeTags(req.Tags),
		MetaTitle:       strings.TrimSpace(req.MetaTitle),
		MetaDescription: strings.TrimSpace(req.MetaDescription),
		Comments:        []entity.Comment{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.validateDocument(blog); err != nil {
		return entity.Blog{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Blog{}, err
	}
	blog.ID = id

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return entity.Blog{}, err
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		return entity.Blog{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blog.ID,
	}).Info("Blog created")

	return blog, nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return entity.Blog{}, err
	}

	mergeUpdate(&blog, req)
	blog.UpdatedAt = time.Now()

	if err := s.validateDocument(blog); err != nil {
		return entity.Blog{}, err
	}

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		return entity.Blog{}, err
	}

	updated, err := s.attachComments(ctx, repo, []entity.Blog{blog})
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

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
	}).Info("Blog updated")

	return updated[0], nil
}

func mergeUpdate(blog *entity.Blog, req blogs.UpdateBlogRequest) {
	if req.Title != nil {
		blog.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Author != nil {
		blog.Author = strings.TrimSpace(*req.Author)
	}
	if req.AuthorImage != nil {
		blog.AuthorImage = strings.TrimSpace(*req.AuthorImage)
	}
	if req.BlogImage != nil {
		blog.BlogImage = strings.TrimSpace(*req.BlogImage)
	}
	if req.Tags != nil {
		blog.Tags = *req.Tags
	}
	if req.MetaTitle != nil {
		blog.MetaTitle = strings.TrimSpace(*req.MetaTitle)
	}
	if req.MetaDescription != nil {
		blog.MetaDescription = strings.TrimSpace(*req.MetaDescription)
	}

	blog.Tags = NormalizeTags(blog.Tags)
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string) error {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"blog_id":    id,
	}).Info("Blog deleted")

	return nil
}
