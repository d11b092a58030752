package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/domain/catalog"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type DeleteResourceCommand struct {
	ResourceID    uint
	ActorUserID   uint
	ActorRole     authorization.UserRole
	ActorChurchID *uint
}

type DeleteResourceUseCase struct {
	resourceRepo catalog.Repository
	loanRepo     lending.LoanRepository
	recorder     activity.Recorder
	logger       logger.Interface
}

func NewDeleteResourceUseCase(
	resourceRepo catalog.Repository,
	loanRepo lending.LoanRepository,
	recorder activity.Recorder,
	logger logger.Interface,
) *DeleteResourceUseCase {
	return &DeleteResourceUseCase{
		resourceRepo: resourceRepo,
		loanRepo:     loanRepo,
		recorder:     recorder,
		logger:       logger,
	}
}

func (uc *DeleteResourceUseCase) Execute(ctx context.Context, cmd DeleteResourceCommand) error {
	resource, err := uc.resourceRepo.GetByID(ctx, cmd.ResourceID)
	if err != nil {
		if stderrors.Is(err, catalog.ErrResourceNotFound) {
			return errors.NewNotFoundError("resource not found")
		}
		uc.logger.Errorw("failed to get resource", "error", err, "resource_id", cmd.ResourceID)
		return fmt.Errorf("failed to get resource: %w", err)
	}

	if !authorization.CanActForChurch(cmd.ActorRole, cmd.ActorChurchID, resource.ChurchID()) {
		return errors.NewForbiddenError("only the owning church can delete this resource")
	}

	// A resource with an open loan cannot be deleted; close the loan first.
	if open, err := uc.loanRepo.GetOpenByResource(ctx, cmd.ResourceID); err == nil && open != nil {
		return errors.NewConflictError("resource has an open loan")
	} else if err != nil && !stderrors.Is(err, lending.ErrLoanNotFound) {
		uc.logger.Errorw("failed to check open loans", "error", err, "resource_id", cmd.ResourceID)
		return fmt.Errorf("failed to check open loans: %w", err)
	}

	if err := uc.resourceRepo.Delete(ctx, cmd.ResourceID); err != nil {
		uc.logger.Errorw("failed to delete resource", "error", err, "resource_id", cmd.ResourceID)
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	uc.logger.Infow("resource deleted", "resource_id", cmd.ResourceID)

	resourceID := cmd.ResourceID
	uc.recorder.Record(cmd.ActorUserID, constants.ActionDeleteResource, constants.EntityResource, &resourceID, map[string]any{
		"title": resource.Title(),
	})
	return nil
}
