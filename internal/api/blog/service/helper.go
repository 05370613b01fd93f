package blogService

import (
	blogs "BlogGolang/internal/api/blog"
	blogRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/entity"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// NormalizeTags trims and lowercases tags, drops empty ones and removes
// duplicates keeping the first occurrence.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}

func (s *blogsService) validateDocument(blog entity.Blog) error {
	return s.validator.Struct(blogs.BlogDocument{
		Title:           blog.Title,
		Content:         blog.Content,
		Author:          blog.Author,
		Tags:            blog.Tags,
		MetaTitle:       blog.MetaTitle,
		MetaDescription: blog.MetaDescription,
	})
}

func (s *blogsService) attachComments(ctx context.Context, repo blogRepository.Client, list []entity.Blog) ([]entity.Blog, error) {
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(list))
	for _, b := range list {
		ids = append(ids, b.ID)
	}

	grouped, err := repo.Comments.GetCommentsByBlogIDs(ctx, ids)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to load comments")
		return nil, err
	}

	for i := range list {
		if comments, ok := grouped[list[i].ID]; ok {
			list[i].Comments = comments
		}
	}

	return list, nil
}

func (s *blogsService) loadBlog(ctx context.Context, repo blogRepository.Client, id string) (entity.Blog, error) {
	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return entity.Blog{}, err
	}

	withComments, err := s.attachComments(ctx, repo, []entity.Blog{blog})
	if err != nil {
		return entity.Blog{}, err
	}

	return withComments[0], nil
}
