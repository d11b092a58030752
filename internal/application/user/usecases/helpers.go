// Package usecases implements account management: registration, email
// verification, login, and admin user administration.
package usecases

import (
	"time"

	"ministryshare/internal/domain/user"
	"ministryshare/internal/shared/authorization"
)

// PasswordHasher abstracts bcrypt so usecases stay testable.
// Satisfied by auth.BcryptPasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenPair is an issued access/refresh token set.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// TokenService issues signed tokens. Satisfied by auth.JWTService through a
// thin adapter in the wire layer.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole, churchID *uint) (*TokenPair, error)
}

const minPasswordLength = 8

// UserResult is the API-facing shape of a user.
type UserResult struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"display_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	ChurchID      *uint     `json:"church_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func toUserResult(u *user.User) *UserResult {
	return &UserResult{
		ID:            u.ID(),
		Username:      u.Username(),
		DisplayName:   u.DisplayName(),
		Email:         u.Email(),
		Role:          u.Role().String(),
		ChurchID:      u.ChurchID(),
		IsActive:      u.IsActive(),
		EmailVerified: u.EmailVerified(),
		CreatedAt:     u.CreatedAt(),
	}
}
