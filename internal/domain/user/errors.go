package user

import "errors"

var (
	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates another account already uses the username
	ErrUsernameTaken = errors.New("username already in use")

	// ErrEmailTaken indicates another account already uses the email
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials indicates a failed username/password check
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserInactive indicates the account is disabled or not yet verified
	ErrUserInactive = errors.New("user account is not active")

	// ErrAlreadyVerified indicates the email was already verified
	ErrAlreadyVerified = errors.New("email is already verified")

	// ErrInvalidVerificationToken indicates the token does not match
	ErrInvalidVerificationToken = errors.New("invalid verification token")

	// ErrVerificationTokenExpired indicates the token is past its expiry
	ErrVerificationTokenExpired = errors.New("verification token has expired")
)
