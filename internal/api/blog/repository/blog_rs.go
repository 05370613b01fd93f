package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Content         string         `db:"content"`
	Author          string         `db:"author"`
	AuthorImage     string         `db:"author_image"`
	BlogImage       string         `db:"blog_image"`
	Likes           int64          `db:"likes"`
	Views           int64          `db:"views"`
	Tags            pq.StringArray `db:"tags"`
	MetaTitle       string         `db:"meta_title"`
	MetaDescription string         `db:"meta_description"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               blog.ID,
		"title":            blog.Title,
		"content":          blog.Content,
		"author":           blog.Author,
		"author_image":     blog.AuthorImage,
		"blog_image":       blog.BlogImage,
		"tags":             pq.StringArray(nonNilTags(blog.Tags)),
		"meta_title":       blog.MetaTitle,
		"meta_description": blog.MetaDescription,
		"created_at":       blog.CreatedAt,
		"updated_at":       blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	query, args, err := sqlx.Named(queryGetBlogByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

// ListBlogs returns every post, optionally restricted to posts carrying tag.
// Tags are stored lowercase so the caller passes a lowercased tag.
func (r *blogsRepository) ListBlogs(ctx context.Context, tag string, sortKey blogs.SortKey) ([]entity.Blog, error) {
	orderBy, ok := orderBySortKey[string(sortKey)]
	if !ok {
		orderBy = orderBySortKey[string(blogs.SortByCreatedAt)]
	}

	namedQuery := queryListBlogs
	argsKV := map[string]interface{}{}
	if tag != "" {
		namedQuery += whereHasTag
		argsKV["tag"] = tag
	}
	namedQuery += orderBy

	return r.selectBlogs(ctx, namedQuery, argsKV, "ListBlogs")
}

func (r *blogsRepository) SearchBlogs(ctx context.Context, query string) ([]entity.Blog, error) {
	return r.selectBlogs(ctx, querySearchBlogs, map[string]interface{}{
		"pattern": "%" + escapeLike(query) + "%",
	}, "SearchBlogs")
}

func (r *blogsRepository) selectBlogs(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BlogDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	result := make([]entity.Blog, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeBlog(row))
	}

	return result, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	return r.execAffectingOne(ctx, queryUpdateBlog, map[string]interface{}{
		"id":               blog.ID,
		"title":            blog.Title,
		"content":          blog.Content,
		"author":           blog.Author,
		"author_image":     blog.AuthorImage,
		"blog_image":       blog.BlogImage,
		"tags":             pq.StringArray(nonNilTags(blog.Tags)),
		"meta_title":       blog.MetaTitle,
		"meta_description": blog.MetaDescription,
		"updated_at":       blog.UpdatedAt,
	}, "UpdateBlog")
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	return r.execAffectingOne(ctx, queryDeleteBlog, map[string]interface{}{"id": id}, "DeleteBlog")
}

func (r *blogsRepository) SetImage(ctx context.Context, id string, slot entity.ImageSlot, url string) error {
	var namedQuery string
	switch slot {
	case entity.SlotAuthorImage:
		namedQuery = querySetAuthorImage
	case entity.SlotBlogImage:
		namedQuery = querySetBlogImage
	default:
		return blogs.ErrInvalidImageType
	}

	return r.execAffectingOne(ctx, namedQuery, map[string]interface{}{
		"id":         id,
		"url":        url,
		"updated_at": time.Now(),
	}, "SetImage")
}

func (r *blogsRepository) IncrementLikes(ctx context.Context, id string) (int64, error) {
	return r.increment(ctx, queryIncrementLikes, id, "IncrementLikes")
}

// IncrementViews bumps the counter inside a single UPDATE so concurrent calls never lose an increment.
func (r *blogsRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	return r.increment(ctx, queryIncrementViews, id, "IncrementViews")
}

func (r *blogsRepository) increment(ctx context.Context, namedQuery string, id string, op string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var counter int64

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&counter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return 0, err
	}

	return counter, nil
}

func (r *blogsRepository) execAffectingOne(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) makeBlog(b BlogDB) entity.Blog {
	return entity.Blog{
		ID:              b.ID,
		Title:           b.Title,
		Content:         b.Content,
		Author:          b.Author,
		AuthorImage:     b.AuthorImage,
		BlogImage:       b.BlogImage,
		Likes:           b.Likes,
		Views:           b.Views,
		Tags:            nonNilTags(b.Tags),
		MetaTitle:       b.MetaTitle,
		MetaDescription: b.MetaDescription,
		Comments:        []entity.Comment{},
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
