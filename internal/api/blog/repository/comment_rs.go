package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const foreignKeyViolation = "23503"

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"blog_id":    comment.BlogID,
		"username":   comment.Username,
		"text":       comment.Text,
		"created_at": comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentsByBlogIDs(ctx context.Context, blogIDs []string) (map[string][]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	result := make(map[string][]entity.Comment, len(blogIDs))
	if len(blogIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.Named(queryGetCommentsByBlogIDs, map[string]interface{}{
		"blog_ids": pq.StringArray(blogIDs),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlogIDs named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var comments []entity.Comment
	if err := r.q.SelectContext(ctx, &comments, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlogIDs execution err")
		return nil, err
	}

	for _, c := range comments {
		result[c.BlogID] = append(result[c.BlogID], c)
	}

	return result, nil
}
