// Package repository implements the domain repository interfaces on GORM.
// Writes that take part in a workflow transaction resolve their handle via
// shared/db so they join the caller's transaction when one is in flight.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ministryshare/internal/domain/church"
	"ministryshare/internal/infrastructure/persistence/mappers"
	"ministryshare/internal/infrastructure/persistence/models"
	"ministryshare/internal/shared/logger"
)

// ChurchRepository implements church.Repository.
type ChurchRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ChurchMapper
}

// NewChurchRepository creates a new ChurchRepository.
func NewChurchRepository(db *gorm.DB, logger logger.Interface) church.Repository {
	return &ChurchRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewChurchMapper(),
	}
}

func (r *ChurchRepository) Create(ctx context.Context, c *church.Church) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create church", "name", c.Name(), "error", err)
		return fmt.Errorf("failed to create church: %w", err)
	}

	if c.ID() == 0 {
		return c.SetID(model.ID)
	}
	return nil
}

func (r *ChurchRepository) GetByID(ctx context.Context, id uint) (*church.Church, error) {
	var model models.ChurchModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, church.ErrChurchNotFound
		}
		r.logger.Errorw("failed to get church", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get church: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ChurchRepository) GetByName(ctx context.Context, name string) (*church.Church, error) {
	var model models.ChurchModel

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, church.ErrChurchNotFound
		}
		r.logger.Errorw("failed to get church by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get church by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ChurchRepository) Update(ctx context.Context, c *church.Church) error {
	model := r.mapper.ToModel(c)

	result := r.db.WithContext(ctx).Model(&models.ChurchModel{}).
		Where("id = ?", c.ID()).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update church", "id", c.ID(), "error", result.Error)
		return fmt.Errorf("failed to update church: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return church.ErrChurchNotFound
	}
	return nil
}

func (r *ChurchRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ChurchModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete church", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete church: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return church.ErrChurchNotFound
	}
	return nil
}

func (r *ChurchRepository) List(ctx context.Context, filter church.ListFilter) ([]*church.Church, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ChurchModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR city LIKE ? OR pastor LIKE ?", pattern, pattern, pattern)
	}
	if filter.RegistrationStatus != nil {
		query = query.Where("registration_status = ?", filter.RegistrationStatus.String())
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count churches: %w", err)
	}

	var modelList []*models.ChurchModel
	err := query.Order("name ASC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list churches", "error", err)
		return nil, 0, fmt.Errorf("failed to list churches: %w", err)
	}

	churches, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return churches, total, nil
}

func (r *ChurchRepository) CountByStatus(ctx context.Context, status church.RegistrationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ChurchModel{}).
		Where("registration_status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count churches by status: %w", err)
	}
	return count, nil
}
