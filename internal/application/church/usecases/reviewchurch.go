package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type ApproveChurchCommand struct {
	ChurchID    uint
	ActorUserID uint
}

type RejectChurchCommand struct {
	ChurchID    uint
	ActorUserID uint
	Reason      string
}

// ReviewChurchUseCase handles the admin registration decisions. Route-level
// authorization restricts both operations to admins.
type ReviewChurchUseCase struct {
	churchRepo church.Repository
	userRepo   user.Repository
	recorder   activity.Recorder
	notifier   notification.Notifier
	logger     logger.Interface
}

func NewReviewChurchUseCase(
	churchRepo church.Repository,
	userRepo user.Repository,
	recorder activity.Recorder,
	notifier notification.Notifier,
	logger logger.Interface,
) *ReviewChurchUseCase {
	return &ReviewChurchUseCase{
		churchRepo: churchRepo,
		userRepo:   userRepo,
		recorder:   recorder,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *ReviewChurchUseCase) Approve(ctx context.Context, cmd ApproveChurchCommand) (*ChurchResult, error) {
	c, err := uc.getChurch(ctx, cmd.ChurchID)
	if err != nil {
		return nil, err
	}

	if err := c.Approve(); err != nil {
		if stderrors.Is(err, church.ErrChurchNotPending) {
			return nil, errors.NewConflictError("church registration is no longer pending")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.churchRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to approve church", "error", err, "church_id", cmd.ChurchID)
		return nil, fmt.Errorf("failed to approve church: %w", err)
	}

	uc.logger.Infow("church approved", "church_id", c.ID(), "name", c.Name())

	churchID := c.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionApproveChurch, constants.EntityChurch, &churchID, map[string]any{
		"name": c.Name(),
	})
	uc.notifier.ChurchApproved(
		notification.ChurchEvent{ChurchName: c.Name()},
		churchRecipients(ctx, uc.userRepo, uc.logger, c),
	)
	return toChurchResult(c), nil
}

func (uc *ReviewChurchUseCase) Reject(ctx context.Context, cmd RejectChurchCommand) (*ChurchResult, error) {
	c, err := uc.getChurch(ctx, cmd.ChurchID)
	if err != nil {
		return nil, err
	}

	if err := c.Reject(cmd.Reason); err != nil {
		if stderrors.Is(err, church.ErrChurchNotPending) {
			return nil, errors.NewConflictError("church registration is no longer pending")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.churchRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to reject church", "error", err, "church_id", cmd.ChurchID)
		return nil, fmt.Errorf("failed to reject church: %w", err)
	}

	uc.logger.Infow("church rejected", "church_id", c.ID(), "name", c.Name())

	churchID := c.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionRejectChurch, constants.EntityChurch, &churchID, map[string]any{
		"name":   c.Name(),
		"reason": cmd.Reason,
	})
	uc.notifier.ChurchRejected(
		notification.ChurchEvent{ChurchName: c.Name(), RejectionReason: cmd.Reason},
		churchRecipients(ctx, uc.userRepo, uc.logger, c),
	)
	return toChurchResult(c), nil
}

func (uc *ReviewChurchUseCase) getChurch(ctx context.Context, id uint) (*church.Church, error) {
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
