package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/infrastructure/persistence/mappers"
	"ministryshare/internal/infrastructure/persistence/models"
	"ministryshare/internal/shared/logger"
)

// TagRepository implements catalog.TagRepository.
type TagRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.TagMapper
}

// NewTagRepository creates a new TagRepository.
func NewTagRepository(db *gorm.DB, logger logger.Interface) catalog.TagRepository {
	return &TagRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewTagMapper(),
	}
}

func (r *TagRepository) Create(ctx context.Context, tag *catalog.Tag) error {
	model := r.mapper.ToModel(tag)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create tag", "name", tag.Name(), "error", err)
		return fmt.Errorf("failed to create tag: %w", err)
	}

	if tag.ID() == 0 {
		return tag.SetID(model.ID)
	}
	return nil
}

func (r *TagRepository) GetByID(ctx context.Context, id uint) (*catalog.Tag, error) {
	var model models.TagModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TagRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var modelList []*models.TagModel
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tags by ids: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

// GetByNameFold matches a tag name case-insensitively, which backs the
// import pipeline's tag reconciliation.
func (r *TagRepository) GetByNameFold(ctx context.Context, name string) (*catalog.Tag, error) {
	var model models.TagModel

	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TagRepository) List(ctx context.Context) ([]*catalog.Tag, error) {
	var modelList []*models.TagModel

	err := r.db.WithContext(ctx).Order("name ASC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list tags", "error", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}

// ListByCategory returns the tags applicable to resources of the given
// category, which includes BOTH-scoped tags.
func (r *TagRepository) ListByCategory(ctx context.Context, category vo.Category) ([]*catalog.Tag, error) {
	var modelList []*models.TagModel

	err := r.db.WithContext(ctx).
		Where("category IN ?", []string{category.String(), vo.TagCategoryBoth.String()}).
		Order("name ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tags by category: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
