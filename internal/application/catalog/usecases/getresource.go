package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/domain/catalog"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type GetResourceUseCase struct {
	resourceRepo catalog.Repository
	tagRepo      catalog.TagRepository
	logger       logger.Interface
}

func NewGetResourceUseCase(
	resourceRepo catalog.Repository,
	tagRepo catalog.TagRepository,
	logger logger.Interface,
) *GetResourceUseCase {
	return &GetResourceUseCase{
		resourceRepo: resourceRepo,
		tagRepo:      tagRepo,
		logger:       logger,
	}
}

// ResourceDetailResult carries the resource together with its resolved tags.
type ResourceDetailResult struct {
	ResourceResult
	Tags []TagResult `json:"tags"`
}

func (uc *GetResourceUseCase) Execute(ctx context.Context, resourceID uint) (*ResourceDetailResult, error) {
	resource, err := uc.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		if stderrors.Is(err, catalog.ErrResourceNotFound) {
			return nil, errors.NewNotFoundError("resource not found")
		}
		uc.logger.Errorw("failed to get resource", "error", err, "resource_id", resourceID)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	result := &ResourceDetailResult{
		ResourceResult: *toResourceResult(resource),
		Tags:           []TagResult{},
	}

	if ids := resource.TagIDs(); len(ids) > 0 {
		tags, err := uc.tagRepo.GetByIDs(ctx, ids)
		if err != nil {
			uc.logger.Errorw("failed to load resource tags", "error", err, "resource_id", resourceID)
			return nil, fmt.Errorf("failed to load resource tags: %w", err)
		}
		for _, tag := range tags {
			result.Tags = append(result.Tags, toTagResult(tag))
		}
	}
	return result, nil
}
