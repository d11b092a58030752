package mappers

import (
	"ministryshare/internal/domain/setting"
	"ministryshare/internal/infrastructure/persistence/models"
)

// SiteSettingsMapper handles conversion between the settings singleton and
// its single-row model.
type SiteSettingsMapper interface {
	ToModel(s *setting.SiteSettings) *models.SiteSettingsModel
	ToDomain(model *models.SiteSettingsModel) *setting.SiteSettings
}

type siteSettingsMapperImpl struct{}

// NewSiteSettingsMapper creates a new SiteSettingsMapper.
func NewSiteSettingsMapper() SiteSettingsMapper {
	return &siteSettingsMapperImpl{}
}

func (m *siteSettingsMapperImpl) ToModel(s *setting.SiteSettings) *models.SiteSettingsModel {
	return &models.SiteSettingsModel{
		ID:                 s.ID(),
		EmailNotifications: s.EmailNotifications(),
		UpdatedAt:          s.UpdatedAt(),
	}
}

func (m *siteSettingsMapperImpl) ToDomain(model *models.SiteSettingsModel) *setting.SiteSettings {
	return setting.ReconstructSiteSettings(model.ID, model.EmailNotifications, model.UpdatedAt)
}
