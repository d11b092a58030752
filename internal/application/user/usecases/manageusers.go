package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type ListUsersCommand struct {
	Search   string
	ChurchID *uint
	Role     string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*UserResult `json:"users"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type UpdateUserCommand struct {
	UserID      uint
	ActorUserID uint
	Role        *string
	ChurchID    *uint
	Active      *bool
}

// ManageUsersUseCase covers the admin user administration surface.
type ManageUsersUseCase struct {
	userRepo   user.Repository
	churchRepo church.Repository
	recorder   activity.Recorder
	logger     logger.Interface
}

func NewManageUsersUseCase(
	userRepo user.Repository,
	churchRepo church.Repository,
	recorder activity.Recorder,
	logger logger.Interface,
) *ManageUsersUseCase {
	return &ManageUsersUseCase{
		userRepo:   userRepo,
		churchRepo: churchRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *ManageUsersUseCase) List(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	filter := user.ListFilter{
		Search:   cmd.Search,
		ChurchID: cmd.ChurchID,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}
	if cmd.Role != "" {
		role := authorization.UserRole(cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", cmd.Role))
		}
		roleStr := role.String()
		filter.Role = &roleStr
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	results := make([]*UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, toUserResult(u))
	}
	return &ListUsersResult{Users: results, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}

func (uc *ManageUsersUseCase) Update(ctx context.Context, cmd UpdateUserCommand) (*UserResult, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if cmd.ChurchID != nil {
		if _, err := uc.churchRepo.GetByID(ctx, *cmd.ChurchID); err != nil {
			if stderrors.Is(err, church.ErrChurchNotFound) {
				return nil, errors.NewNotFoundError("church not found")
			}
			return nil, fmt.Errorf("failed to get church: %w", err)
		}
	}

	if cmd.Role != nil {
		role := authorization.UserRole(*cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", *cmd.Role))
		}
		if err := u.SetRole(role, cmd.ChurchID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else if cmd.ChurchID != nil {
		if err := u.SetRole(u.Role(), cmd.ChurchID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Active != nil {
		if *cmd.Active {
			u.Activate()
		} else {
			u.Deactivate()
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "user_id", u.ID())

	userID := u.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionUpdateUser, constants.EntityUser, &userID, map[string]any{
		"username": u.Username(),
	})
	return toUserResult(u), nil
}

// GetProfileUseCase fetches the authenticated user's own record.
type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*UserResult, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResult(u), nil
}
