package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ministryshare/internal/domain/setting"
	"ministryshare/internal/infrastructure/persistence/mappers"
	"ministryshare/internal/infrastructure/persistence/models"
	"ministryshare/internal/shared/logger"
)

// SiteSettingsRepository implements setting.Repository on a single-row table.
type SiteSettingsRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SiteSettingsMapper
}

// NewSiteSettingsRepository creates a new SiteSettingsRepository.
func NewSiteSettingsRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SiteSettingsRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSiteSettingsMapper(),
	}
}

// Get returns the stored settings, or the defaults when no row exists yet.
func (r *SiteSettingsRepository) Get(ctx context.Context) (*setting.SiteSettings, error) {
	var model models.SiteSettingsModel

	err := r.db.WithContext(ctx).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return setting.DefaultSiteSettings(), nil
		}
		r.logger.Errorw("failed to get site settings", "error", err)
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Save upserts the singleton row.
func (r *SiteSettingsRepository) Save(ctx context.Context, settings *setting.SiteSettings) error {
	model := r.mapper.ToModel(settings)
	if model.ID == 0 {
		model.ID = 1
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email_notifications", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save site settings", "error", err)
		return fmt.Errorf("failed to save site settings: %w", err)
	}
	return nil
}
