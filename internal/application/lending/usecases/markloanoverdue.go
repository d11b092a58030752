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

type MarkLoanOverdueCommand struct {
	LoanID        uint
	ActorUserID   uint
	ActorRole     authorization.UserRole
	ActorChurchID *uint
}

// MarkLoanOverdueUseCase flags a loan OVERDUE. The resource stays ON_LOAN;
// no transaction is needed because only the loan row changes. An already
// overdue loan re-marks without error.
type MarkLoanOverdueUseCase struct {
	loanRepo     lending.LoanRepository
	resourceRepo catalog.Repository
	churchRepo   church.Repository
	userRepo     user.Repository
	recorder     activity.Recorder
	notifier     notification.Notifier
	logger       logger.Interface
}

func NewMarkLoanOverdueUseCase(
	loanRepo lending.LoanRepository,
	resourceRepo catalog.Repository,
	churchRepo church.Repository,
	userRepo user.Repository,
	recorder activity.Recorder,
	notifier notification.Notifier,
	logger logger.Interface,
) *MarkLoanOverdueUseCase {
	return &MarkLoanOverdueUseCase{
		loanRepo:     loanRepo,
		resourceRepo: resourceRepo,
		churchRepo:   churchRepo,
		userRepo:     userRepo,
		recorder:     recorder,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *MarkLoanOverdueUseCase) Execute(ctx context.Context, cmd MarkLoanOverdueCommand) (*LoanResult, error) {
	loan, err := uc.loanRepo.GetByID(ctx, cmd.LoanID)
	if err != nil {
		if stderrors.Is(err, lending.ErrLoanNotFound) {
			return nil, errors.NewNotFoundError("loan not found")
		}
		uc.logger.Errorw("failed to get loan", "error", err, "loan_id", cmd.LoanID)
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	if !authorization.CanActForChurch(cmd.ActorRole, cmd.ActorChurchID, loan.LendingChurchID()) {
		return nil, errors.NewForbiddenError("only the lending church can mark a loan overdue")
	}

	if err := loan.MarkOverdue(); err != nil {
		if stderrors.Is(err, lending.ErrLoanNotActive) {
			return nil, errors.NewConflictError("loan is not active").
				WithReason(errors.ReasonNotActive)
		}
		return nil, err
	}

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		uc.logger.Errorw("failed to update loan", "error", err, "loan_id", cmd.LoanID)
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}

	uc.logger.Infow("loan marked overdue", "loan_id", loan.ID())

	loanID := loan.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionMarkOverdue, constants.EntityLoan, &loanID, nil)

	if resource, err := uc.resourceRepo.GetByID(ctx, loan.ResourceID()); err == nil {
		borrowerName := ""
		if borrower, err := uc.churchRepo.GetByID(ctx, loan.BorrowingChurchID()); err == nil {
			borrowerName = borrower.Name()
		}
		uc.notifier.LoanOverdue(notification.LoanEvent{
			ResourceTitle:   resource.Title(),
			BorrowingChurch: borrowerName,
			DueDate:         formatDate(loan.DueDate()),
		}, recipientsForChurch(ctx, uc.userRepo, uc.logger, loan.BorrowingChurchID()))
	}

	return toLoanResult(loan), nil
}
