package activity

import (
	"context"
	"fmt"
	"time"

	"ministryshare/internal/domain/activity"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type ListActivityCommand struct {
	ActorUserID   uint
	ActorRole     authorization.UserRole
	ActorChurchID *uint
	Action        string
	EntityType    string
	Pagination    utils.Pagination
}

type ActivityEntryResult struct {
	ID         uint           `json:"id"`
	UserID     uint           `json:"user_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *uint          `json:"entity_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ListActivityResult struct {
	Entries []ActivityEntryResult `json:"entries"`
	Total   int64                 `json:"total"`
}

// ListActivityUseCase lists audit entries newest first. Admins see all
// entries; editors only those written by users of their own church.
type ListActivityUseCase struct {
	activityRepo activity.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewListActivityUseCase(
	activityRepo activity.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListActivityUseCase {
	return &ListActivityUseCase{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *ListActivityUseCase) Execute(ctx context.Context, cmd ListActivityCommand) (*ListActivityResult, error) {
	filter := activity.ListFilter{
		Action:     cmd.Action,
		EntityType: cmd.EntityType,
		Page:       cmd.Pagination.Page,
		PageSize:   cmd.Pagination.PageSize,
	}

	if !cmd.ActorRole.IsAdmin() {
		if cmd.ActorChurchID == nil {
			return &ListActivityResult{Entries: []ActivityEntryResult{}}, nil
		}
		members, err := uc.userRepo.ListByChurch(ctx, *cmd.ActorChurchID)
		if err != nil {
			uc.logger.Errorw("failed to list church members", "error", err, "church_id", *cmd.ActorChurchID)
			return nil, fmt.Errorf("failed to list church members: %w", err)
		}
		if len(members) == 0 {
			return &ListActivityResult{Entries: []ActivityEntryResult{}}, nil
		}
		ids := make([]uint, 0, len(members))
		for _, m := range members {
			ids = append(ids, m.ID())
		}
		filter.UserIDs = ids
	}

	entries, total, err := uc.activityRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list activity", "error", err)
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	results := make([]ActivityEntryResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, ActivityEntryResult{
			ID:         e.ID(),
			UserID:     e.UserID(),
			Action:     e.Action(),
			EntityType: e.EntityType(),
			EntityID:   e.EntityID(),
			Details:    e.Details(),
			CreatedAt:  e.CreatedAt(),
		})
	}

	return &ListActivityResult{Entries: results, Total: total}, nil
}
