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

type ReturnLoanCommand struct {
	LoanID        uint
	ActorUserID   uint
	ActorRole     authorization.UserRole
	ActorChurchID *uint
	Notes         string
}

// ReturnLoanUseCase closes a loan and puts the resource back in circulation
// in one transaction.
type ReturnLoanUseCase struct {
	loanRepo     lending.LoanRepository
	resourceRepo catalog.Repository
	churchRepo   church.Repository
	userRepo     user.Repository
	txManager    TransactionManager
	recorder     activity.Recorder
	notifier     notification.Notifier
	logger       logger.Interface
}

func NewReturnLoanUseCase(
	loanRepo lending.LoanRepository,
	resourceRepo catalog.Repository,
	churchRepo church.Repository,
	userRepo user.Repository,
	txManager TransactionManager,
	recorder activity.Recorder,
	notifier notification.Notifier,
	logger logger.Interface,
) *ReturnLoanUseCase {
	return &ReturnLoanUseCase{
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

func (uc *ReturnLoanUseCase) Execute(ctx context.Context, cmd ReturnLoanCommand) (*LoanResult, error) {
	loan, err := uc.loanRepo.GetByID(ctx, cmd.LoanID)
	if err != nil {
		if stderrors.Is(err, lending.ErrLoanNotFound) {
			return nil, errors.NewNotFoundError("loan not found")
		}
		uc.logger.Errorw("failed to get loan", "error", err, "loan_id", cmd.LoanID)
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	if !authorization.CanActForChurch(cmd.ActorRole, cmd.ActorChurchID, loan.LendingChurchID()) {
		return nil, errors.NewForbiddenError("only the lending church can record a return")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := loan.MarkReturned(cmd.Notes); err != nil {
			if stderrors.Is(err, lending.ErrLoanNotOpen) {
				return errors.NewConflictError("loan is not active or overdue").
					WithReason(errors.ReasonNotActive)
			}
			return err
		}
		if err := uc.loanRepo.Update(txCtx, loan); err != nil {
			return fmt.Errorf("failed to update loan: %w", err)
		}

		resource, err := uc.resourceRepo.GetByID(txCtx, loan.ResourceID())
		if err != nil {
			return fmt.Errorf("failed to get resource: %w", err)
		}
		resource.MarkAvailable()
		if err := uc.resourceRepo.Update(txCtx, resource); err != nil {
			return fmt.Errorf("failed to update resource: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to return loan", "error", err, "loan_id", cmd.LoanID)
		return nil, fmt.Errorf("failed to return loan: %w", err)
	}

	uc.logger.Infow("loan returned", "loan_id", loan.ID(), "resource_id", loan.ResourceID())

	loanID := loan.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionReturnLoan, constants.EntityLoan, &loanID, map[string]any{
		"resource_id": loan.ResourceID(),
	})

	uc.notifyLoanEvent(ctx, loan, func(event notification.LoanEvent, recipients []notification.Recipient) {
		uc.notifier.LoanReturned(event, recipients)
	})

	return toLoanResult(loan), nil
}

// notifyLoanEvent notifies the borrowing church about a lifecycle change.
func (uc *ReturnLoanUseCase) notifyLoanEvent(ctx context.Context, loan *lending.Loan, send func(notification.LoanEvent, []notification.Recipient)) {
	resource, err := uc.resourceRepo.GetByID(ctx, loan.ResourceID())
	if err != nil {
		uc.logger.Warnw("failed to get resource for loan notice", "error", err, "resource_id", loan.ResourceID())
		return
	}
	borrowerName := ""
	if borrower, err := uc.churchRepo.GetByID(ctx, loan.BorrowingChurchID()); err == nil {
		borrowerName = borrower.Name()
	}
	send(notification.LoanEvent{
		ResourceTitle:   resource.Title(),
		BorrowingChurch: borrowerName,
		DueDate:         formatDate(loan.DueDate()),
		Notes:           loan.Notes(),
	}, recipientsForChurch(ctx, uc.userRepo, uc.logger, loan.BorrowingChurchID()))
}
