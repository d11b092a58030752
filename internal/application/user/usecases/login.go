package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User   *UserResult `json:"user"`
	Tokens *TokenPair  `json:"tokens"`
}

// LoginUseCase authenticates by username or email. Credential failures and
// unknown accounts return the same error so callers cannot probe for
// usernames.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.lookup(ctx, cmd.Username)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}

	if !u.CanLogin() {
		if !u.EmailVerified() {
			return nil, errors.NewForbiddenError("email address is not verified")
		}
		return nil, errors.NewForbiddenError(user.ErrUserInactive.Error())
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role(), u.ChurchID())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())
	return &LoginResult{User: toUserResult(u), Tokens: pair}, nil
}

// lookup accepts either a username or an email address.
func (uc *LoginUseCase) lookup(ctx context.Context, identifier string) (*user.User, error) {
	u, err := uc.userRepo.GetByUsername(ctx, identifier)
	if err == nil {
		return u, nil
	}
	if !stderrors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}
	return uc.userRepo.GetByEmail(ctx, identifier)
}
