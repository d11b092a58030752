package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ministryshare/internal/domain/activity"
	"ministryshare/internal/infrastructure/persistence/mappers"
	"ministryshare/internal/infrastructure/persistence/models"
	"ministryshare/internal/shared/logger"
)

// ActivityLogRepository implements activity.Repository. The table is
// append-only; there is no update or delete path.
type ActivityLogRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ActivityLogMapper
}

// NewActivityLogRepository creates a new ActivityLogRepository.
func NewActivityLogRepository(db *gorm.DB, logger logger.Interface) activity.Repository {
	return &ActivityLogRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewActivityLogMapper(),
	}
}

func (r *ActivityLogRepository) Create(ctx context.Context, entry *activity.Entry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create activity log", "action", entry.Action(), "error", err)
		return fmt.Errorf("failed to create activity log: %w", err)
	}

	if entry.ID() == 0 {
		return entry.SetID(model.ID)
	}
	return nil
}

func (r *ActivityLogRepository) List(ctx context.Context, filter activity.ListFilter) ([]*activity.Entry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ActivityLogModel{})

	if len(filter.UserIDs) > 0 {
		query = query.Where("user_id IN ?", filter.UserIDs)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	var modelList []*models.ActivityLogModel
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list activity logs", "error", err)
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}

	entries, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
