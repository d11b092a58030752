package usecases

import (
	"context"
	"fmt"
	"time"

	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/catalog"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/logger"
)

type SweepOverdueLoansResult struct {
	Marked int `json:"marked"`
}

// SweepOverdueLoansUseCase flags every ACTIVE loan past its due date. Run
// periodically from the server's background ticker.
type SweepOverdueLoansUseCase struct {
	loanRepo     lending.LoanRepository
	resourceRepo catalog.Repository
	churchRepo   church.Repository
	userRepo     user.Repository
	notifier     notification.Notifier
	logger       logger.Interface
}

func NewSweepOverdueLoansUseCase(
	loanRepo lending.LoanRepository,
	resourceRepo catalog.Repository,
	churchRepo church.Repository,
	userRepo user.Repository,
	notifier notification.Notifier,
	logger logger.Interface,
) *SweepOverdueLoansUseCase {
	return &SweepOverdueLoansUseCase{
		loanRepo:     loanRepo,
		resourceRepo: resourceRepo,
		churchRepo:   churchRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *SweepOverdueLoansUseCase) Execute(ctx context.Context) (*SweepOverdueLoansResult, error) {
	due, err := uc.loanRepo.ListDueBefore(ctx, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to list due loans", "error", err)
		return nil, fmt.Errorf("failed to list due loans: %w", err)
	}

	marked := 0
	for _, loan := range due {
		if err := loan.MarkOverdue(); err != nil {
			continue
		}
		if err := uc.loanRepo.Update(ctx, loan); err != nil {
			uc.logger.Warnw("failed to mark loan overdue", "error", err, "loan_id", loan.ID())
			continue
		}
		marked++

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
	}

	if marked > 0 {
		uc.logger.Infow("overdue sweep complete", "marked", marked, "candidates", len(due))
	}
	return &SweepOverdueLoansResult{Marked: marked}, nil
}
