package blogRepository

import (
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *tagsRepository) GetAllTags(ctx context.Context) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	tags := []string{}

	if err := r.q.SelectContext(ctx, &tags, queryGetAllTags); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTags execution err")
		return nil, err
	}

	return tags, nil
}

// GetPopularTags ranks tags by the number of posts carrying them, ties broken alphabetically.
func (r *tagsRepository) GetPopularTags(ctx context.Context, limit int) ([]entity.TagCount, error) {
	requestID := contextPkg.GetRequestID(ctx)
	counts := []entity.TagCount{}

	query, args, err := sqlx.Named(queryGetPopularTags, map[string]interface{}{"limit": limit})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPopularTags named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &counts, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPopularTags execution err")
		return nil, err
	}

	return counts, nil
}
