package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/catalog"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type CreateLoanRequestCommand struct {
	ResourceID    uint
	ActorUserID   uint
	ActorChurchID *uint
	NeededByDate  *time.Time
	ReturnByDate  time.Time
	Message       string
}

type CreateLoanRequestUseCase struct {
	requestRepo  lending.RequestRepository
	resourceRepo catalog.Repository
	churchRepo   church.Repository
	userRepo     user.Repository
	recorder     activity.Recorder
	notifier     notification.Notifier
	logger       logger.Interface
}

func NewCreateLoanRequestUseCase(
	requestRepo lending.RequestRepository,
	resourceRepo catalog.Repository,
	churchRepo church.Repository,
	userRepo user.Repository,
	recorder activity.Recorder,
	notifier notification.Notifier,
	logger logger.Interface,
) *CreateLoanRequestUseCase {
	return &CreateLoanRequestUseCase{
		requestRepo:  requestRepo,
		resourceRepo: resourceRepo,
		churchRepo:   churchRepo,
		userRepo:     userRepo,
		recorder:     recorder,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *CreateLoanRequestUseCase) Execute(ctx context.Context, cmd CreateLoanRequestCommand) (*LoanRequestResult, error) {
	if cmd.ActorChurchID == nil {
		return nil, errors.NewValidationError("a church membership is required to request a loan")
	}
	requestingChurchID := *cmd.ActorChurchID

	resource, err := uc.resourceRepo.GetByID(ctx, cmd.ResourceID)
	if err != nil {
		if stderrors.Is(err, catalog.ErrResourceNotFound) {
			return nil, errors.NewNotFoundError("resource not found")
		}
		uc.logger.Errorw("failed to get resource", "error", err, "resource_id", cmd.ResourceID)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ChurchID() == requestingChurchID {
		return nil, errors.NewConflictError("cannot request a resource owned by your own church").
			WithReason(errors.ReasonOwnResource)
	}

	if !resource.IsAvailable() {
		return nil, errors.NewConflictError("resource is not available").
			WithReason(errors.ReasonNotAvailable)
	}

	requester, err := uc.churchRepo.GetByID(ctx, requestingChurchID)
	if err != nil {
		uc.logger.Errorw("failed to get requesting church", "error", err, "church_id", requestingChurchID)
		return nil, fmt.Errorf("failed to get requesting church: %w", err)
	}
	if !requester.CanParticipate() {
		return nil, errors.NewForbiddenError("your church is not active in the lending network")
	}

	if weeks := resource.MaxLoanWeeks(); weeks != nil {
		limit := time.Now().AddDate(0, 0, *weeks*7)
		if cmd.ReturnByDate.After(limit) {
			return nil, errors.NewValidationError(
				fmt.Sprintf("this resource can be borrowed for at most %d weeks", *weeks))
		}
	}

	exists, err := uc.requestRepo.ExistsPending(ctx, cmd.ResourceID, requestingChurchID)
	if err != nil {
		uc.logger.Errorw("failed to check pending requests", "error", err, "resource_id", cmd.ResourceID)
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("your church already has a pending request for this resource").
			WithReason(errors.ReasonDuplicatePending)
	}

	request, err := lending.NewLoanRequest(cmd.ResourceID, requestingChurchID, cmd.ActorUserID, cmd.NeededByDate, cmd.ReturnByDate, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		uc.logger.Errorw("failed to create loan request", "error", err, "resource_id", cmd.ResourceID)
		return nil, fmt.Errorf("failed to create loan request: %w", err)
	}

	uc.logger.Infow("loan request created",
		"request_id", request.ID(),
		"resource_id", cmd.ResourceID,
		"requesting_church_id", requestingChurchID,
	)

	requestID := request.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionCreateLoanRequest, constants.EntityLoanRequest, &requestID, map[string]any{
		"resource_id":    cmd.ResourceID,
		"resource_title": resource.Title(),
	})

	recipients := recipientsForChurch(ctx, uc.userRepo, uc.logger, resource.ChurchID())
	uc.notifier.RequestCreated(notification.RequestEvent{
		ResourceTitle:   resource.Title(),
		RequesterChurch: requester.Name(),
		ReturnByDate:    formatDate(request.ReturnByDate()),
		Message:         request.Message(),
	}, recipients)

	return toLoanRequestResult(request), nil
}
