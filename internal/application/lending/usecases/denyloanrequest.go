package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/catalog"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type DenyLoanRequestCommand struct {
	RequestID       uint
	ActorUserID     uint
	ActorRole       authorization.UserRole
	ActorChurchID   *uint
	ResponseMessage string
}

type DenyLoanRequestUseCase struct {
	requestRepo  lending.RequestRepository
	resourceRepo catalog.Repository
	churchRepo   church.Repository
	userRepo     user.Repository
	recorder     activity.Recorder
	notifier     notification.Notifier
	logger       logger.Interface
}

func NewDenyLoanRequestUseCase(
	requestRepo lending.RequestRepository,
	resourceRepo catalog.Repository,
	churchRepo church.Repository,
	userRepo user.Repository,
	recorder activity.Recorder,
	notifier notification.Notifier,
	logger logger.Interface,
) *DenyLoanRequestUseCase {
	return &DenyLoanRequestUseCase{
		requestRepo:  requestRepo,
		resourceRepo: resourceRepo,
		churchRepo:   churchRepo,
		userRepo:     userRepo,
		recorder:     recorder,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *DenyLoanRequestUseCase) Execute(ctx context.Context, cmd DenyLoanRequestCommand) (*LoanRequestResult, error) {
	request, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		if stderrors.Is(err, lending.ErrRequestNotFound) {
			return nil, errors.NewNotFoundError("loan request not found")
		}
		uc.logger.Errorw("failed to get loan request", "error", err, "request_id", cmd.RequestID)
		return nil, fmt.Errorf("failed to get loan request: %w", err)
	}

	resource, err := uc.resourceRepo.GetByID(ctx, request.ResourceID())
	if err != nil {
		uc.logger.Errorw("failed to get resource", "error", err, "resource_id", request.ResourceID())
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	if !authorization.CanActForChurch(cmd.ActorRole, cmd.ActorChurchID, resource.ChurchID()) {
		return nil, errors.NewForbiddenError("only the owning church can respond to this request")
	}

	if err := request.Deny(cmd.ActorUserID, cmd.ResponseMessage); err != nil {
		if stderrors.Is(err, lending.ErrRequestNotPending) {
			return nil, errors.NewConflictError("request no longer pending").
				WithReason(errors.ReasonNotPending)
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to update loan request", "error", err, "request_id", cmd.RequestID)
		return nil, fmt.Errorf("failed to update loan request: %w", err)
	}

	uc.logger.Infow("loan request denied", "request_id", request.ID(), "resource_id", resource.ID())

	requestID := request.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionDenyRequest, constants.EntityLoanRequest, &requestID, map[string]any{
		"resource_id": resource.ID(),
	})

	ownerName := ""
	if owner, err := uc.churchRepo.GetByID(ctx, resource.ChurchID()); err == nil {
		ownerName = owner.Name()
	}
	uc.notifier.RequestDenied(notification.RequestEvent{
		ResourceTitle:   resource.Title(),
		OwnerChurch:     ownerName,
		ResponseMessage: request.ResponseMessage(),
	}, recipientsForChurch(ctx, uc.userRepo, uc.logger, request.RequestingChurchID()))

	return toLoanRequestResult(request), nil
}
