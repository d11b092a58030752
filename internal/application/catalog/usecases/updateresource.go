package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type UpdateResourceCommand struct {
	ResourceID     uint
	ActorUserID    uint
	ActorRole      authorization.UserRole
	ActorChurchID  *uint
	Category       string
	Title          string
	TitleEs        string
	AuthorComposer string
	Publisher      string
	Description    string
	DescriptionEs  string
	Subcategory    *string
	Format         *string
	Quantity       int
	MaxLoanWeeks   *int
	TagIDs         []uint
}

type UpdateResourceUseCase struct {
	resourceRepo catalog.Repository
	tagRepo      catalog.TagRepository
	recorder     activity.Recorder
	logger       logger.Interface
}

func NewUpdateResourceUseCase(
	resourceRepo catalog.Repository,
	tagRepo catalog.TagRepository,
	recorder activity.Recorder,
	logger logger.Interface,
) *UpdateResourceUseCase {
	return &UpdateResourceUseCase{
		resourceRepo: resourceRepo,
		tagRepo:      tagRepo,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *UpdateResourceUseCase) Execute(ctx context.Context, cmd UpdateResourceCommand) (*ResourceResult, error) {
	resource, err := uc.resourceRepo.GetByID(ctx, cmd.ResourceID)
	if err != nil {
		if stderrors.Is(err, catalog.ErrResourceNotFound) {
			return nil, errors.NewNotFoundError("resource not found")
		}
		uc.logger.Errorw("failed to get resource", "error", err, "resource_id", cmd.ResourceID)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	if !authorization.CanActForChurch(cmd.ActorRole, cmd.ActorChurchID, resource.ChurchID()) {
		return nil, errors.NewForbiddenError("only the owning church can edit this resource")
	}

	category := vo.Category(cmd.Category)
	if !category.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid category: %s", cmd.Category))
	}

	attrs, err := buildAttributes(category, cmd.TitleEs, cmd.AuthorComposer, cmd.Publisher,
		cmd.Description, cmd.DescriptionEs, cmd.Subcategory, cmd.Format, cmd.Quantity, cmd.MaxLoanWeeks)
	if err != nil {
		return nil, err
	}

	if err := resource.Update(category, cmd.Title, attrs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.TagIDs != nil {
		if len(cmd.TagIDs) > 0 {
			tags, err := uc.tagRepo.GetByIDs(ctx, cmd.TagIDs)
			if err != nil {
				return nil, fmt.Errorf("failed to load tags: %w", err)
			}
			if len(tags) != len(cmd.TagIDs) {
				return nil, errors.NewValidationError("one or more tags do not exist")
			}
			for _, tag := range tags {
				if !tag.Category().AppliesTo(category) {
					return nil, errors.NewValidationError(
						fmt.Sprintf("tag %q does not apply to %s resources", tag.Name(), category))
				}
			}
		}
		resource.SetTagIDs(cmd.TagIDs)
	}

	if err := uc.resourceRepo.Update(ctx, resource); err != nil {
		uc.logger.Errorw("failed to update resource", "error", err, "resource_id", cmd.ResourceID)
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}

	uc.logger.Infow("resource updated", "resource_id", resource.ID())

	resourceID := resource.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionUpdateResource, constants.EntityResource, &resourceID, map[string]any{
		"title": resource.Title(),
	})

	return toResourceResult(resource), nil
}
