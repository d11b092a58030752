package models

import (
	"time"

	"ministryshare/internal/shared/constants"
)

// UserModel is the persistence model for user accounts.
type UserModel struct {
	ID                uint    `gorm:"primarykey"`
	Username          string  `gorm:"uniqueIndex;not null;size:50"`
	DisplayName       string  `gorm:"not null;size:100"`
	Email             string  `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash      string  `gorm:"not null;size:255"`
	Role              string  `gorm:"not null;default:EDITOR;size:20"`
	ChurchID          *uint   `gorm:"index:idx_users_church"`
	PreferredLocale   string  `gorm:"not null;default:en;size:5"`
	IsActive          bool    `gorm:"not null;default:false"`
	EmailVerified     bool    `gorm:"not null;default:false"`
	VerificationToken *string `gorm:"size:255;index:idx_users_verification_token"`
	TokenExpiresAt    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
