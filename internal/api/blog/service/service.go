package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/imagestore"
	"BlogGolang/pkg/metrics"
	"BlogGolang/pkg/sanitizer"
	"BlogGolang/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// PopularTagsLimit caps the popular tags ranking.
const PopularTagsLimit = 10

type IBlogsService interface {
	GetAllBlogs(ctx context.Context, tag string) ([]entity.Blog, error)
	GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
	SearchBlogs(ctx context.Context, query string) ([]entity.Blog, error)
	SortBlogs(ctx context.Context, by string) ([]entity.Blog, error)
	GetBlogsByTag(ctx context.Context, tag string) ([]entity.Blog, error)
	GetAllTags(ctx context.Context) ([]string, error)
	GetPopularTags(ctx context.Context) ([]entity.TagCount, error)

	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) (entity.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
	AttachImage(ctx context.Context, id string, slot string, file *multipart.FileHeader) (string, entity.Blog, error)

	AddComment(ctx context.Context, id string, req blogs.AddCommentRequest) (entity.Blog, error)
	LikeBlog(ctx context.Context, id string) (int64, error)
	ViewBlog(ctx context.Context, id string) (int64, error)
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type blogsService struct {
	log        *logrus.Logger
	repo       blogRepository.Repository
	imageStore imagestore.ItfImageStore
	utils      utils.IUtils
	validator  *validator.Validate
	sanitizer  sanitizer.ISanitizer
	metrics    metrics.IMetrics
}

func New(
	log *logrus.Logger,
	repo blogRepository.Repository,
	imageStore imagestore.ItfImageStore,
	utils utils.IUtils,
	validator *validator.Validate,
	sanitizer sanitizer.ISanitizer,
	metrics metrics.IMetrics,
) IBlogsService {
	return &blogsService{
		log:        log,
		repo:       repo,
		imageStore: imageStore,
		utils:      utils,
		validator:  validator,
		sanitizer:  sanitizer,
		metrics:    metrics,
	}
}
