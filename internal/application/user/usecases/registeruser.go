package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ministryshare/internal/application/notification"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/i18n"
	"ministryshare/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username    string
	DisplayName string
	Email       string
	Password    string
	ChurchID    uint
	Locale      i18n.Locale
}

// RegisterUserUseCase creates an editor account under an approved, active
// church. The account stays inactive until the verification email is
// redeemed.
type RegisterUserUseCase struct {
	userRepo      user.Repository
	churchRepo    church.Repository
	hasher        PasswordHasher
	notifier      notification.Notifier
	verifyURLBase string
	logger        logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	churchRepo church.Repository,
	hasher PasswordHasher,
	notifier notification.Notifier,
	verifyURLBase string,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:      userRepo,
		churchRepo:    churchRepo,
		hasher:        hasher,
		notifier:      notifier,
		verifyURLBase: verifyURLBase,
		logger:        logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*UserResult, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	c, err := uc.churchRepo.GetByID(ctx, cmd.ChurchID)
	if err != nil {
		if stderrors.Is(err, church.ErrChurchNotFound) {
			return nil, errors.NewNotFoundError("church not found")
		}
		uc.logger.Errorw("failed to get church", "error", err, "church_id", cmd.ChurchID)
		return nil, fmt.Errorf("failed to get church: %w", err)
	}
	if !c.CanParticipate() {
		return nil, errors.NewConflictError("church is not approved for new accounts")
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username); err == nil && existing != nil {
		return nil, errors.NewConflictError(user.ErrUsernameTaken.Error())
	}
	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError(user.ErrEmailTaken.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token := uuid.NewString()
	u, err := user.NewUser(cmd.Username, cmd.DisplayName, cmd.Email, hash, cmd.ChurchID,
		token, time.Now().Add(user.VerificationTokenTTL))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	u.SetPreferredLocale(cmd.Locale)

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "username", cmd.Username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "church_id", cmd.ChurchID)

	uc.notifier.VerificationEmail(notification.Recipient{
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Locale:      u.PreferredLocale(),
	}, uc.verifyURL(token))

	return toUserResult(u), nil
}

func (uc *RegisterUserUseCase) verifyURL(token string) string {
	return fmt.Sprintf("%s/verify-email?token=%s", uc.verifyURLBase, token)
}
