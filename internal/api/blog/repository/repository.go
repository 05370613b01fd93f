package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogsRepository{q: sqlExecutor, log: r.log},
		Comments: &commentsRepository{q: sqlExecutor, log: r.log},
		Tags:     &tagsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		ListBlogs(ctx context.Context, tag string, sortKey blogs.SortKey) ([]entity.Blog, error)
		SearchBlogs(ctx context.Context, query string) ([]entity.Blog, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
		DeleteBlog(ctx context.Context, id string) error
		IncrementLikes(ctx context.Context, id string) (int64, error)
		IncrementViews(ctx context.Context, id string) (int64, error)
		SetImage(ctx context.Context, id string, slot entity.ImageSlot, url string) error
	}

	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) error
		GetCommentsByBlogIDs(ctx context.Context, blogIDs []string) (map[string][]entity.Comment, error)
	}

	Tags interface {
		GetAllTags(ctx context.Context) ([]string, error)
		GetPopularTags(ctx context.Context, limit int) ([]entity.TagCount, error)
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type tagsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
