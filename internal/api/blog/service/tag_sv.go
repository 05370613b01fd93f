package blogService

import (
	"BlogGolang/internal/entity"
	"context"
)

func (s *blogsService) GetAllTags(ctx context.Context) ([]string, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Tags.GetAllTags(ctx)
}

func (s *blogsService) GetPopularTags(ctx context.Context) ([]entity.TagCount, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Tags.GetPopularTags(ctx, PopularTagsLimit)
}
