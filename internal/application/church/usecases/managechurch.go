package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type UpdateChurchCommand struct {
	ChurchID      uint
	ActorUserID   uint
	ActorRole     authorization.UserRole
	ActorChurchID *uint
	Name          string
	Profile       ChurchProfileInput
}

type SetChurchActiveCommand struct {
	ChurchID    uint
	ActorUserID uint
	Active      bool
}

// ManageChurchUseCase covers the profile update and the admin activate and
// deactivate switches.
type ManageChurchUseCase struct {
	churchRepo church.Repository
	recorder   activity.Recorder
	logger     logger.Interface
}

func NewManageChurchUseCase(churchRepo church.Repository, recorder activity.Recorder, logger logger.Interface) *ManageChurchUseCase {
	return &ManageChurchUseCase{churchRepo: churchRepo, recorder: recorder, logger: logger}
}

func (uc *ManageChurchUseCase) Update(ctx context.Context, cmd UpdateChurchCommand) (*ChurchResult, error) {
	c, err := uc.getChurch(ctx, cmd.ChurchID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanActForChurch(cmd.ActorRole, cmd.ActorChurchID, c.ID()) {
		return nil, errors.NewForbiddenError("only members of this church can edit it")
	}

	if err := c.Update(cmd.Name, profileFromCommand(cmd.Profile)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.churchRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update church", "error", err, "church_id", cmd.ChurchID)
		return nil, fmt.Errorf("failed to update church: %w", err)
	}

	uc.logger.Infow("church updated", "church_id", c.ID())
	return toChurchResult(c), nil
}

// SetActive flips an approved church between active and suspended.
func (uc *ManageChurchUseCase) SetActive(ctx context.Context, cmd SetChurchActiveCommand) (*ChurchResult, error) {
	c, err := uc.getChurch(ctx, cmd.ChurchID)
	if err != nil {
		return nil, err
	}

	if cmd.Active {
		if err := c.Activate(); err != nil {
			if stderrors.Is(err, church.ErrChurchNotApproved) {
				return nil, errors.NewConflictError("only approved churches can be activated")
			}
			return nil, errors.NewValidationError(err.Error())
		}
	} else {
		c.Deactivate()
	}

	if err := uc.churchRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to change church status", "error", err, "church_id", cmd.ChurchID)
		return nil, fmt.Errorf("failed to change church status: %w", err)
	}

	uc.logger.Infow("church status changed", "church_id", c.ID(), "active", cmd.Active)
	return toChurchResult(c), nil
}

func (uc *ManageChurchUseCase) getChurch(ctx context.Context, id uint) (*church.Church, error) {
	c, err := uc.churchRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, church.ErrChurchNotFound) {
			return nil, errors.NewNotFoundError("church not found")
		}
		uc.logger.Errorw("failed to get church", "error", err, "church_id", id)
		return nil, fmt.Errorf("failed to get church: %w", err)
	}
	return c, nil
}
