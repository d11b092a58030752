package usecases

import (
	"context"
	"fmt"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type CreateChurchCommand struct {
	ActorUserID uint
	Name        string
	Profile     ChurchProfileInput
}

// CreateChurchUseCase lets an admin add a church directly, skipping review.
// The church starts APPROVED and active.
type CreateChurchUseCase struct {
	churchRepo church.Repository
	recorder   activity.Recorder
	logger     logger.Interface
}

func NewCreateChurchUseCase(churchRepo church.Repository, recorder activity.Recorder, logger logger.Interface) *CreateChurchUseCase {
	return &CreateChurchUseCase{churchRepo: churchRepo, recorder: recorder, logger: logger}
}

func (uc *CreateChurchUseCase) Execute(ctx context.Context, cmd CreateChurchCommand) (*ChurchResult, error) {
	if existing, err := uc.churchRepo.GetByName(ctx, cmd.Name); err == nil && existing != nil {
		return nil, errors.NewConflictError("a church with this name already exists")
	}

	c, err := church.NewApprovedChurch(cmd.Name, profileFromCommand(cmd.Profile))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.churchRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create church", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create church: %w", err)
	}

	uc.logger.Infow("church created", "church_id", c.ID(), "name", c.Name())

	churchID := c.ID()
	uc.recorder.Record(cmd.ActorUserID, constants.ActionRegisterChurch, constants.EntityChurch, &churchID, map[string]any{
		"name": c.Name(),
	})
	return toChurchResult(c), nil
}
