// Package setting holds the site-wide configuration singleton.
package setting

import "time"

// SiteSettings is a single-row table of admin-togglable switches. The email
// notification gate covers workflow emails only; account verification emails
// always send.
type SiteSettings struct {
	id                 uint
	emailNotifications bool
	updatedAt          time.Time
}

// DefaultSiteSettings returns the values used before an admin ever saves.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		emailNotifications: true,
		updatedAt:          time.Now(),
	}
}

// ReconstructSiteSettings reconstructs the singleton from persistence.
func ReconstructSiteSettings(id uint, emailNotifications bool, updatedAt time.Time) *SiteSettings {
	return &SiteSettings{
		id:                 id,
		emailNotifications: emailNotifications,
		updatedAt:          updatedAt,
	}
}

func (s *SiteSettings) ID() uint                 { return s.id }
func (s *SiteSettings) EmailNotifications() bool { return s.emailNotifications }
func (s *SiteSettings) UpdatedAt() time.Time     { return s.updatedAt }

// SetEmailNotifications toggles the workflow email gate.
func (s *SiteSettings) SetEmailNotifications(enabled bool) {
	s.emailNotifications = enabled
	s.updatedAt = time.Now()
}
