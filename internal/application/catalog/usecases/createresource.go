package usecases

import (
	"context"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type CreateResourceCommand struct {
	ActorUserID    uint
	ActorRole      authorization.UserRole
	ActorChurchID  *uint
	ChurchID       *uint // admin may create for any church
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

type CreateResourceUseCase struct {
	resourceRepo catalog.Repository
	tagRepo      catalog.TagRepository
	recorder     activity.Recorder
	logger       logger.Interface
}

func NewCreateResourceUseCase(
	resourceRepo catalog.Repository,
	tagRepo catalog.TagRepository,
	recorder activity.Recorder,
	logger logger.Interface,
) *CreateResourceUseCase {
	return &CreateResourceUseCase{
		resourceRepo: resourceRepo,
		tagRepo:      tagRepo,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *CreateResourceUseCase) Execute(ctx context.Context, cmd CreateResourceCommand) (*ResourceResult, error) {
	churchID, err := resolveOwningChurch(cmd.ActorRole, cmd.ActorChurchID, cmd.ChurchID)
	if err != nil {
		return nil, err
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

	resource, err := catalog.NewResource(churchID, category, cmd.Title, attrs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.TagIDs) > 0 {
		if err := uc.validateTags(ctx, category, cmd.TagIDs); err != nil {
			return nil, err
		}
		resource.SetTagIDs(cmd.TagIDs)
	}

	if err := uc.resourceRepo.Create(ctx, resource); err != nil {
		uc.logger.Errorw("failed to create resource", "error", err, "church_id", churchID)
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	uc.logger.Infow("resource created",
		"resource_id", resource.ID(),
		"church_id", churchID,
		"category", category.String(),
	)

	resourceID := resource.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionCreateResource, constants.EntityResource, &resourceID, map[string]any{
		"title": resource.Title(),
	})

	return toResourceResult(resource), nil
}

func (uc *CreateResourceUseCase) validateTags(ctx context.Context, category vo.Category, tagIDs []uint) error {
	tags, err := uc.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}
	if len(tags) != len(tagIDs) {
		return errors.NewValidationError("one or more tags do not exist")
	}
	for _, tag := range tags {
		if !tag.Category().AppliesTo(category) {
			return errors.NewValidationError(
				fmt.Sprintf("tag %q does not apply to %s resources", tag.Name(), category))
		}
	}
	return nil
}

// resolveOwningChurch decides which church a write targets: editors always
// act for their own church, admins may name any church.
func resolveOwningChurch(role authorization.UserRole, actorChurchID, requested *uint) (uint, error) {
	if role.IsAdmin() {
		if requested != nil {
			return *requested, nil
		}
		if actorChurchID != nil {
			return *actorChurchID, nil
		}
		return 0, errors.NewValidationError("a church must be specified")
	}
	if actorChurchID == nil {
		return 0, errors.NewValidationError("a church membership is required")
	}
	if requested != nil && *requested != *actorChurchID {
		return 0, errors.NewForbiddenError("cannot act for another church")
	}
	return *actorChurchID, nil
}

func buildAttributes(
	category vo.Category,
	titleEs, authorComposer, publisher, description, descriptionEs string,
	subcategory, format *string,
	quantity int,
	maxLoanWeeks *int,
) (catalog.Attributes, error) {
	attrs := catalog.Attributes{
		TitleEs:        titleEs,
		AuthorComposer: authorComposer,
		Publisher:      publisher,
		Description:    description,
		DescriptionEs:  descriptionEs,
		Quantity:       quantity,
		MaxLoanWeeks:   maxLoanWeeks,
	}
	if subcategory != nil && *subcategory != "" {
		sub := vo.Subcategory(*subcategory)
		if !sub.IsValidFor(category) {
			return attrs, errors.NewValidationError(
				fmt.Sprintf("subcategory %s is not valid for category %s", *subcategory, category))
		}
		attrs.Subcategory = &sub
	}
	if format != nil && *format != "" {
		f := vo.Format(*format)
		if !f.IsValid() {
			return attrs, errors.NewValidationError(fmt.Sprintf("invalid format: %s", *format))
		}
		attrs.Format = &f
	}
	return attrs, nil
}
