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

// Request listing directions relative to a church.
const (
	DirectionIncoming = "incoming" // requests for the church's resources
	DirectionOutgoing = "outgoing" // requests the church has made
)

type ListLoanRequestsCommand struct {
	ActorRole     authorization.UserRole
	ActorChurchID *uint
	ChurchID      *uint // admin may scope to any church
	Direction     string
	Status        string
	Pagination    utils.Pagination
}

type ListLoanRequestsResult struct {
	Requests []LoanRequestResult `json:"requests"`
	Total    int64               `json:"total"`
}

type ListLoanRequestsUseCase struct {
	requestRepo lending.RequestRepository
	logger      logger.Interface
}

func NewListLoanRequestsUseCase(requestRepo lending.RequestRepository, logger logger.Interface) *ListLoanRequestsUseCase {
	return &ListLoanRequestsUseCase{requestRepo: requestRepo, logger: logger}
}

func (uc *ListLoanRequestsUseCase) Execute(ctx context.Context, cmd ListLoanRequestsCommand) (*ListLoanRequestsResult, error) {
	churchID := cmd.ActorChurchID
	if cmd.ActorRole.IsAdmin() && cmd.ChurchID != nil {
		churchID = cmd.ChurchID
	}
	if churchID == nil && !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewValidationError("a church membership is required to list requests")
	}

	filter := lending.RequestFilter{
		Page:     cmd.Pagination.Page,
		PageSize: cmd.Pagination.PageSize,
	}

	if churchID != nil {
		switch cmd.Direction {
		case DirectionOutgoing:
			filter.RequestingChurchID = churchID
		case DirectionIncoming, "":
			filter.OwnerChurchID = churchID
		default:
			return nil, errors.NewValidationError(fmt.Sprintf("unknown direction: %s", cmd.Direction))
		}
	}

	if cmd.Status != "" {
		status := vo.RequestStatus(cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown request status: %s", cmd.Status))
		}
		filter.Status = &status
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list loan requests", "error", err)
		return nil, fmt.Errorf("failed to list loan requests: %w", err)
	}

	results := make([]LoanRequestResult, 0, len(requests))
	for _, r := range requests {
		results = append(results, *toLoanRequestResult(r))
	}
	return &ListLoanRequestsResult{Requests: results, Total: total}, nil
}
