package usecases

import (
	"context"
	"fmt"

	"ministryshare/internal/domain/lending"
	vo "ministryshare/internal/domain/lending/valueobjects"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

// Loan listing directions relative to a church.
const (
	DirectionLent     = "lent"
	DirectionBorrowed = "borrowed"
)

type ListLoansCommand struct {
	ActorRole     authorization.UserRole
	ActorChurchID *uint
	ChurchID      *uint // admin may scope to any church
	Direction     string
	Status        string
	Pagination    utils.Pagination
}

type ListLoansResult struct {
	Loans []LoanResult `json:"loans"`
	Total int64        `json:"total"`
}

type ListLoansUseCase struct {
	loanRepo lending.LoanRepository
	logger   logger.Interface
}

func NewListLoansUseCase(loanRepo lending.LoanRepository, logger logger.Interface) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo, logger: logger}
}

func (uc *ListLoansUseCase) Execute(ctx context.Context, cmd ListLoansCommand) (*ListLoansResult, error) {
	churchID := cmd.ActorChurchID
	if cmd.ActorRole.IsAdmin() && cmd.ChurchID != nil {
		churchID = cmd.ChurchID
	}
	if churchID == nil && !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewValidationError("a church membership is required to list loans")
	}

	filter := lending.LoanFilter{
		Page:     cmd.Pagination.Page,
		PageSize: cmd.Pagination.PageSize,
	}

	if churchID != nil {
		switch cmd.Direction {
		case DirectionBorrowed:
			filter.BorrowingChurchID = churchID
		case DirectionLent, "":
			filter.LendingChurchID = churchID
		default:
			return nil, errors.NewValidationError(fmt.Sprintf("unknown direction: %s", cmd.Direction))
		}
	}

	if cmd.Status != "" {
		status := vo.LoanStatus(cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown loan status: %s", cmd.Status))
		}
		filter.Status = &status
	}

	loans, total, err := uc.loanRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list loans", "error", err)
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	results := make([]LoanResult, 0, len(loans))
	for _, l := range loans {
		results = append(results, *toLoanResult(l))
	}
	return &ListLoansResult{Loans: results, Total: total}, nil
}
