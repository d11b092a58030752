// Package usecases implements the admin dashboard aggregates.
package usecases

import (
	"context"
	"fmt"

	"ministryshare/internal/domain/catalog"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	lendingvo "ministryshare/internal/domain/lending/valueobjects"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/logger"
)

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	Churches        int64 `json:"churches"`
	PendingChurches int64 `json:"pending_churches"`
	Users           int64 `json:"users"`
	Resources       int64 `json:"resources"`
	ActiveLoans     int64 `json:"active_loans"`
	PendingRequests int64 `json:"pending_requests"`
}

type GetDashboardStatsUseCase struct {
	churchRepo   church.Repository
	userRepo     user.Repository
	resourceRepo catalog.Repository
	requestRepo  lending.RequestRepository
	loanRepo     lending.LoanRepository
	logger       logger.Interface
}

func NewGetDashboardStatsUseCase(
	churchRepo church.Repository,
	userRepo user.Repository,
	resourceRepo catalog.Repository,
	requestRepo lending.RequestRepository,
	loanRepo lending.LoanRepository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		churchRepo:   churchRepo,
		userRepo:     userRepo,
		resourceRepo: resourceRepo,
		requestRepo:  requestRepo,
		loanRepo:     loanRepo,
		logger:       logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	approved, err := uc.churchRepo.CountByStatus(ctx, church.RegistrationApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to count churches: %w", err)
	}
	pending, err := uc.churchRepo.CountByStatus(ctx, church.RegistrationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending churches: %w", err)
	}
	stats.Churches = approved
	stats.PendingChurches = pending

	if stats.Users, err = uc.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	_, resourceTotal, err := uc.resourceRepo.List(ctx, catalog.ListFilter{Page: 1, PageSize: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to count resources: %w", err)
	}
	stats.Resources = resourceTotal

	pendingStatus := lendingvo.RequestPending
	_, requestTotal, err := uc.requestRepo.List(ctx, lending.RequestFilter{
		Status: &pendingStatus, Page: 1, PageSize: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count pending requests: %w", err)
	}
	stats.PendingRequests = requestTotal

	// open loans are ACTIVE plus OVERDUE
	for _, status := range []lendingvo.LoanStatus{lendingvo.LoanActive, lendingvo.LoanOverdue} {
		s := status
		_, total, err := uc.loanRepo.List(ctx, lending.LoanFilter{Status: &s, Page: 1, PageSize: 1})
		if err != nil {
			return nil, fmt.Errorf("failed to count open loans: %w", err)
		}
		stats.ActiveLoans += total
	}

	return stats, nil
}
