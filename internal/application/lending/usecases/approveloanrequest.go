package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/catalog"
	catalogvo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type ApproveLoanRequestCommand struct {
	RequestID       uint
	ActorUserID     uint
	ActorRole       authorization.UserRole
	ActorChurchID   *uint
	ResponseMessage string
}

// ApproveLoanRequestUseCase runs the approval transition: request to
// APPROVED, a new ACTIVE loan, and the resource to ON_LOAN, all in one
// transaction. Competing pending requests for the same resource are denied in
// the same commit.
type ApproveLoanRequestUseCase struct {
	requestRepo  lending.RequestRepository
	loanRepo     lending.LoanRepository
	resourceRepo catalog.Repository
	churchRepo   church.Repository
	userRepo     user.Repository
	txManager    TransactionManager
	recorder     activity.Recorder
	notifier     notification.Notifier
	logger       logger.Interface
}

func NewApproveLoanRequestUseCase(
	requestRepo lending.RequestRepository,
	loanRepo lending.LoanRepository,
	resourceRepo catalog.Repository,
	churchRepo church.Repository,
	userRepo user.Repository,
	txManager TransactionManager,
	recorder activity.Recorder,
	notifier notification.Notifier,
	logger logger.Interface,
) *ApproveLoanRequestUseCase {
	return &ApproveLoanRequestUseCase{
		requestRepo:  requestRepo,
		loanRepo:     loanRepo,
		resourceRepo: resourceRepo,
		churchRepo:   churchRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		recorder:     recorder,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *ApproveLoanRequestUseCase) Execute(ctx context.Context, cmd ApproveLoanRequestCommand) (*LoanResult, error) {
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

	if !request.IsPending() {
		return nil, errors.NewConflictError("request no longer pending").
			WithReason(errors.ReasonNotPending)
	}

	var loan *lending.Loan
	var denied []*lending.LoanRequest

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := request.Approve(cmd.ActorUserID, cmd.ResponseMessage); err != nil {
			if stderrors.Is(err, lending.ErrRequestNotPending) {
				return errors.NewConflictError("request no longer pending").
					WithReason(errors.ReasonNotPending)
			}
			return err
		}
		if err := uc.requestRepo.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update loan request: %w", err)
		}

		// Conditional flip closes the race with a concurrent approval of a
		// competing request.
		flipped, err := uc.resourceRepo.SetAvailabilityIf(txCtx, resource.ID(), catalogvo.AvailabilityAvailable, catalogvo.AvailabilityOnLoan)
		if err != nil {
			return fmt.Errorf("failed to update resource availability: %w", err)
		}
		if !flipped {
			return errors.NewConflictError("resource is not available").
				WithReason(errors.ReasonNotAvailable)
		}

		loan, err = lending.NewLoanFromRequest(request, resource.ChurchID())
		if err != nil {
			return err
		}
		if err := uc.loanRepo.Create(txCtx, loan); err != nil {
			return fmt.Errorf("failed to create loan: %w", err)
		}

		siblings, err := uc.requestRepo.ListPendingForResource(txCtx, resource.ID(), request.ID())
		if err != nil {
			return fmt.Errorf("failed to list competing requests: %w", err)
		}
		for _, sibling := range siblings {
			if err := sibling.Deny(cmd.ActorUserID, "The resource has been loaned to another church."); err != nil {
				continue
			}
			if err := uc.requestRepo.Update(txCtx, sibling); err != nil {
				return fmt.Errorf("failed to deny competing request: %w", err)
			}
			denied = append(denied, sibling)
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to approve loan request", "error", err, "request_id", cmd.RequestID)
		return nil, fmt.Errorf("failed to approve loan request: %w", err)
	}

	uc.logger.Infow("loan request approved",
		"request_id", request.ID(),
		"loan_id", loan.ID(),
		"resource_id", resource.ID(),
		"denied_competing", len(denied),
	)

	requestID := request.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionApproveRequest, constants.EntityLoanRequest, &requestID, map[string]any{
		"resource_id": resource.ID(),
		"loan_id":     loan.ID(),
	})

	owner, err := uc.churchRepo.GetByID(ctx, resource.ChurchID())
	ownerName := ""
	if err == nil {
		ownerName = owner.Name()
	}

	event := notification.RequestEvent{
		ResourceTitle:   resource.Title(),
		OwnerChurch:     ownerName,
		ReturnByDate:    formatDate(request.ReturnByDate()),
		ResponseMessage: request.ResponseMessage(),
	}
	uc.notifier.RequestApproved(event, recipientsForChurch(ctx, uc.userRepo, uc.logger, request.RequestingChurchID()))

	for _, sibling := range denied {
		uc.notifier.RequestDenied(notification.RequestEvent{
			ResourceTitle:   resource.Title(),
			OwnerChurch:     ownerName,
			ResponseMessage: sibling.ResponseMessage(),
		}, recipientsForChurch(ctx, uc.userRepo, uc.logger, sibling.RequestingChurchID()))
	}

	return toLoanResult(loan), nil
}
