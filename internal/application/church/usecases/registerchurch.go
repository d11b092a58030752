package usecases

import (
	"context"
	"fmt"

	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type RegisterChurchCommand struct {
	Name    string
	Profile ChurchProfileInput
}

// RegisterChurchUseCase handles public self-registration. The church starts
// PENDING and inactive until an admin reviews it.
type RegisterChurchUseCase struct {
	churchRepo church.Repository
	logger     logger.Interface
}

func NewRegisterChurchUseCase(churchRepo church.Repository, logger logger.Interface) *RegisterChurchUseCase {
	return &RegisterChurchUseCase{churchRepo: churchRepo, logger: logger}
}

func (uc *RegisterChurchUseCase) Execute(ctx context.Context, cmd RegisterChurchCommand) (*ChurchResult, error) {
	if existing, err := uc.churchRepo.GetByName(ctx, cmd.Name); err == nil && existing != nil {
		return nil, errors.NewConflictError("a church with this name is already registered")
	}

	c, err := church.NewChurch(cmd.Name, profileFromCommand(cmd.Profile))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.churchRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to register church", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to register church: %w", err)
	}

	uc.logger.Infow("church registered", "church_id", c.ID(), "name", c.Name())
	return toChurchResult(c), nil
}
