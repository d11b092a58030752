package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ministryshare/internal/application/activity"
	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/constants"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/i18n"
	"ministryshare/internal/shared/logger"
)

// VerifyEmailUseCase redeems a verification token, activating the account.
type VerifyEmailUseCase struct {
	userRepo user.Repository
	recorder activity.Recorder
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, recorder activity.Recorder, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{userRepo: userRepo, recorder: recorder, logger: logger}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, token string) (*UserResult, error) {
	if token == "" {
		return nil, errors.NewValidationError("verification token is required")
	}

	u, err := uc.userRepo.GetByVerificationToken(ctx, token)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("invalid verification token")
		}
		uc.logger.Errorw("failed to look up verification token", "error", err)
		return nil, fmt.Errorf("failed to look up verification token: %w", err)
	}

	if err := u.VerifyEmail(token, time.Now()); err != nil {
		switch {
		case stderrors.Is(err, user.ErrAlreadyVerified):
			return nil, errors.NewConflictError(err.Error())
		case stderrors.Is(err, user.ErrVerificationTokenExpired):
			return nil, errors.NewValidationError(err.Error())
		default:
			return nil, errors.NewValidationError(user.ErrInvalidVerificationToken.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to verify email", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to verify email: %w", err)
	}

	uc.logger.Infow("email verified", "user_id", u.ID())

	userID := u.ID()
	uc.recorder.Record(userID, constants.ActionVerifyEmail, constants.EntityUser, &userID, nil)
	return toUserResult(u), nil
}

type ResendVerificationCommand struct {
	Email  string
	Locale i18n.Locale
}

// ResendVerificationUseCase issues a fresh token. To avoid leaking which
// addresses have accounts, unknown and already-verified addresses succeed
// silently.
type ResendVerificationUseCase struct {
	userRepo      user.Repository
	notifier      notification.Notifier
	verifyURLBase string
	logger        logger.Interface
}

func NewResendVerificationUseCase(
	userRepo user.Repository,
	notifier notification.Notifier,
	verifyURLBase string,
	logger logger.Interface,
) *ResendVerificationUseCase {
	return &ResendVerificationUseCase{
		userRepo:      userRepo,
		notifier:      notifier,
		verifyURLBase: verifyURLBase,
		logger:        logger,
	}
}

func (uc *ResendVerificationUseCase) Execute(ctx context.Context, cmd ResendVerificationCommand) error {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		uc.logger.Errorw("failed to look up email", "error", err)
		return fmt.Errorf("failed to look up email: %w", err)
	}

	token := uuid.NewString()
	if err := u.ResetVerificationToken(token, time.Now().Add(user.VerificationTokenTTL)); err != nil {
		if stderrors.Is(err, user.ErrAlreadyVerified) {
			return nil
		}
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to reset verification token", "error", err, "user_id", u.ID())
		return fmt.Errorf("failed to reset verification token: %w", err)
	}

	uc.logger.Infow("verification email resent", "user_id", u.ID())

	uc.notifier.VerificationEmail(notification.Recipient{
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Locale:      cmd.Locale,
	}, fmt.Sprintf("%s/verify-email?token=%s", uc.verifyURLBase, token))
	return nil
}
