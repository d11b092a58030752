// Package user models accounts on the platform. Editors belong to a church;
// admins operate district wide.
package user

import (
	"fmt"
	"strings"
	"time"

	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/i18n"
)

// VerificationTokenTTL is how long an email verification token stays valid.
const VerificationTokenTTL = 24 * time.Hour

// User is an account. A self-registered editor stays inactive and unverified
// until the email verification token is redeemed.
type User struct {
	id                uint
	username          string
	displayName       string
	email             string
	passwordHash      string
	role              authorization.UserRole
	churchID          *uint
	preferredLocale   i18n.Locale
	isActive          bool
	emailVerified     bool
	verificationToken *string
	tokenExpiresAt    *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// NewUser creates an editor account pending email verification. The caller
// supplies the already-hashed password and a fresh verification token.
func NewUser(username, displayName, email, passwordHash string, churchID uint, verificationToken string, tokenExpiresAt time.Time) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validateIdentity(username, displayName, email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if churchID == 0 {
		return nil, fmt.Errorf("church ID is required for editor accounts")
	}
	if verificationToken == "" {
		return nil, fmt.Errorf("verification token is required")
	}

	now := time.Now()
	return &User{
		username:          username,
		displayName:       displayName,
		email:             email,
		passwordHash:      passwordHash,
		role:              authorization.RoleEditor,
		churchID:          &churchID,
		preferredLocale:   i18n.LocaleEnglish,
		isActive:          false,
		emailVerified:     false,
		verificationToken: &verificationToken,
		tokenExpiresAt:    &tokenExpiresAt,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// NewAdminUser creates an active, verified admin account. Admins are not tied
// to a church.
func NewAdminUser(username, displayName, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validateIdentity(username, displayName, email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		username:        username,
		displayName:     displayName,
		email:           email,
		passwordHash:    passwordHash,
		role:            authorization.RoleAdmin,
		preferredLocale: i18n.LocaleEnglish,
		isActive:        true,
		emailVerified:   true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	id uint,
	username string,
	displayName string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	churchID *uint,
	preferredLocale i18n.Locale,
	isActive bool,
	emailVerified bool,
	verificationToken *string,
	tokenExpiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if preferredLocale == "" {
		preferredLocale = i18n.LocaleEnglish
	}

	return &User{
		id:                id,
		username:          username,
		displayName:       displayName,
		email:             email,
		passwordHash:      passwordHash,
		role:              role,
		churchID:          churchID,
		preferredLocale:   preferredLocale,
		isActive:          isActive,
		emailVerified:     emailVerified,
		verificationToken: verificationToken,
		tokenExpiresAt:    tokenExpiresAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func validateIdentity(username, displayName, email string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) < 3 || len(username) > 50 {
		return fmt.Errorf("username must be between 3 and 50 characters")
	}
	if displayName == "" {
		return fmt.Errorf("display name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	return nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) DisplayName() string          { return u.displayName }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) ChurchID() *uint              { return u.churchID }
func (u *User) PreferredLocale() i18n.Locale { return u.preferredLocale }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) EmailVerified() bool          { return u.emailVerified }
func (u *User) VerificationToken() *string   { return u.verificationToken }
func (u *User) TokenExpiresAt() *time.Time   { return u.tokenExpiresAt }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsAdmin reports whether the user has the district-wide role.
func (u *User) IsAdmin() bool {
	return u.role == authorization.RoleAdmin
}

// CanLogin reports whether authentication may proceed after a password match.
func (u *User) CanLogin() bool {
	return u.isActive
}

// VerifyEmail redeems a verification token. On success the account becomes
// verified and active and the token is cleared.
func (u *User) VerifyEmail(token string, now time.Time) error {
	if u.emailVerified {
		return ErrAlreadyVerified
	}
	if u.verificationToken == nil || *u.verificationToken != token {
		return ErrInvalidVerificationToken
	}
	if u.tokenExpiresAt == nil || now.After(*u.tokenExpiresAt) {
		return ErrVerificationTokenExpired
	}
	u.emailVerified = true
	u.isActive = true
	u.verificationToken = nil
	u.tokenExpiresAt = nil
	u.updatedAt = time.Now()
	return nil
}

// ResetVerificationToken installs a fresh token for a resend.
func (u *User) ResetVerificationToken(token string, expiresAt time.Time) error {
	if u.emailVerified {
		return ErrAlreadyVerified
	}
	if token == "" {
		return fmt.Errorf("verification token is required")
	}
	u.verificationToken = &token
	u.tokenExpiresAt = &expiresAt
	u.updatedAt = time.Now()
	return nil
}

// UpdateProfile changes the display name and email.
func (u *User) UpdateProfile(displayName, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if displayName == "" {
		return fmt.Errorf("display name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	u.displayName = displayName
	u.email = email
	u.updatedAt = time.Now()
	return nil
}

// SetPreferredLocale records the language the user wants emails in. Empty
// input is ignored.
func (u *User) SetPreferredLocale(locale i18n.Locale) {
	if locale == "" {
		return
	}
	u.preferredLocale = locale
	u.updatedAt = time.Now()
}

// UpdatePassword stores a new password hash.
func (u *User) UpdatePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

// SetRole changes the role. Promoting to admin detaches the church; demoting
// to editor requires one.
func (u *User) SetRole(role authorization.UserRole, churchID *uint) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if role == authorization.RoleEditor && churchID == nil && u.churchID == nil {
		return fmt.Errorf("editor accounts require a church")
	}
	u.role = role
	if churchID != nil {
		u.churchID = churchID
	}
	if role == authorization.RoleAdmin {
		u.churchID = nil
	}
	u.updatedAt = time.Now()
	return nil
}

// Activate enables the account.
func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}

// Deactivate disables the account without deleting it.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}
