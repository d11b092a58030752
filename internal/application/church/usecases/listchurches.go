package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type ListChurchesCommand struct {
	Search             string
	RegistrationStatus string
	ActiveOnly         bool
	Page               int
	PageSize           int
}

type ListChurchesResult struct {
	Churches []*ChurchResult `json:"churches"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ListChurchesUseCase also serves the public directory, where callers pass
// ActiveOnly to hide pending and suspended churches.
type ListChurchesUseCase struct {
	churchRepo church.Repository
	logger     logger.Interface
}

func NewListChurchesUseCase(churchRepo church.Repository, logger logger.Interface) *ListChurchesUseCase {
	return &ListChurchesUseCase{churchRepo: churchRepo, logger: logger}
}

func (uc *ListChurchesUseCase) Execute(ctx context.Context, cmd ListChurchesCommand) (*ListChurchesResult, error) {
	filter := church.ListFilter{
		Search:     cmd.Search,
		ActiveOnly: cmd.ActiveOnly,
		Page:       cmd.Page,
		PageSize:   cmd.PageSize,
	}
	if cmd.RegistrationStatus != "" {
		status := church.RegistrationStatus(cmd.RegistrationStatus)
		if !status.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid registration status: %s", cmd.RegistrationStatus))
		}
		filter.RegistrationStatus = &status
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	churches, total, err := uc.churchRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list churches", "error", err)
		return nil, fmt.Errorf("failed to list churches: %w", err)
	}

	results := make([]*ChurchResult, 0, len(churches))
	for _, c := range churches {
		results = append(results, toChurchResult(c))
	}
	return &ListChurchesResult{
		Churches: results,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// GetChurchUseCase fetches one church.
type GetChurchUseCase struct {
	churchRepo church.Repository
	logger     logger.Interface
}

func NewGetChurchUseCase(churchRepo church.Repository, logger logger.Interface) *GetChurchUseCase {
	return &GetChurchUseCase{churchRepo: churchRepo, logger: logger}
}

func (uc *GetChurchUseCase) Execute(ctx context.Context, churchID uint) (*ChurchResult, error) {
	c, err := uc.churchRepo.GetByID(ctx, churchID)
	if err != nil {
		if stderrors.Is(err, church.ErrChurchNotFound) {
			return nil, errors.NewNotFoundError("church not found")
		}
		uc.logger.Errorw("failed to get church", "error", err, "church_id", churchID)
		return nil, fmt.Errorf("failed to get church: %w", err)
	}
	return toChurchResult(c), nil
}
