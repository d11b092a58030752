package usecases

import (
	"context"
	"fmt"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type ListTagsCommand struct {
	// Category filters tags to one resource category; BOTH tags always match.
	Category string
}

type ListTagsUseCase struct {
	tagRepo catalog.TagRepository
	logger  logger.Interface
}

func NewListTagsUseCase(tagRepo catalog.TagRepository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{tagRepo: tagRepo, logger: logger}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context, cmd ListTagsCommand) ([]TagResult, error) {
	var (
		tags []*catalog.Tag
		err  error
	)
	if cmd.Category != "" {
		category := vo.Category(cmd.Category)
		if !category.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid category: %s", cmd.Category))
		}
		tags, err = uc.tagRepo.ListByCategory(ctx, category)
	} else {
		tags, err = uc.tagRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	results := make([]TagResult, 0, len(tags))
	for _, tag := range tags {
		results = append(results, toTagResult(tag))
	}
	return results, nil
}
