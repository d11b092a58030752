package models

import (
	"time"

	"ministryshare/internal/shared/constants"
)

// SiteSettingsModel is the single-row persistence model for site settings.
type SiteSettingsModel struct {
	ID                 uint `gorm:"primarykey"`
	EmailNotifications bool `gorm:"not null;default:true"`
	UpdatedAt          time.Time
}

func (SiteSettingsModel) TableName() string {
	return constants.TableSiteSettings
}
