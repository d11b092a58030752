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

type CancelLoanRequestCommand struct {
	RequestID     uint
	ActorUserID   uint
	ActorRole     authorization.UserRole
	ActorChurchID *uint
}

type CancelLoanRequestUseCase struct {
	requestRepo  lending.RequestRepository
	resourceRepo catalog.Repository
	churchRepo   church.Repository
	userRepo     user.Repository
	recorder     activity.Recorder
	notifier     notification.Notifier
	logger       logger.Interface
}

func NewCancelLoanRequestUseCase(
	requestRepo lending.RequestRepository,
	resourceRepo catalog.Repository,
	churchRepo church.Repository,
	userRepo user.Repository,
	recorder activity.Recorder,
	notifier notification.Notifier,
	logger logger.Interface,
) *CancelLoanRequestUseCase {
	return &CancelLoanRequestUseCase{
		requestRepo:  requestRepo,
		resourceRepo: resourceRepo,
		churchRepo:   churchRepo,
		userRepo:     userRepo,
		recorder:     recorder,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *CancelLoanRequestUseCase) Execute(ctx context.Context, cmd CancelLoanRequestCommand) (*LoanRequestResult, error) {
	request, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		if stderrors.Is(err, lending.ErrRequestNotFound) {
			return nil, errors.NewNotFoundError("loan request not found")
		}
		uc.logger.Errorw("failed to get loan request", "error", err, "request_id", cmd.RequestID)
		return nil, fmt.Errorf("failed to get loan request: %w", err)
	}

	// Cancellation belongs to the requesting side, not the owner.
	if !authorization.CanActForChurch(cmd.ActorRole, cmd.ActorChurchID, request.RequestingChurchID()) {
		return nil, errors.NewForbiddenError("only the requesting church can cancel this request")
	}

	if err := request.Cancel(); err != nil {
		if stderrors.Is(err, lending.ErrRequestNotPending) {
			return nil, errors.NewConflictError("request no longer pending").
				WithReason(errors.ReasonNotPending)
		}
		return nil, err
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to update loan request", "error", err, "request_id", cmd.RequestID)
		return nil, fmt.Errorf("failed to update loan request: %w", err)
	}

	uc.logger.Infow("loan request cancelled", "request_id", request.ID())

	requestID := request.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionCancelRequest, constants.EntityLoanRequest, &requestID, nil)

	resource, err := uc.resourceRepo.GetByID(ctx, request.ResourceID())
	if err != nil {
		uc.logger.Warnw("failed to get resource for cancellation notice", "error", err, "resource_id", request.ResourceID())
		return toLoanRequestResult(request), nil
	}
	requesterName := ""
	if requester, err := uc.churchRepo.GetByID(ctx, request.RequestingChurchID()); err == nil {
		requesterName = requester.Name()
	}
	uc.notifier.RequestCancelled(notification.RequestEvent{
		ResourceTitle:   resource.Title(),
		RequesterChurch: requesterName,
	}, recipientsForChurch(ctx, uc.userRepo, uc.logger, resource.ChurchID()))

	return toLoanRequestResult(request), nil
}
