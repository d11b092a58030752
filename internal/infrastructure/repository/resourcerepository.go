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
	shareddb "ministryshare/internal/shared/db"
	"ministryshare/internal/shared/logger"
)

// ResourceRepository implements catalog.Repository. Tag associations live in
// the resource_tags join table and are replaced wholesale on update.
type ResourceRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ResourceMapper
}

// NewResourceRepository creates a new ResourceRepository.
func NewResourceRepository(db *gorm.DB, logger logger.Interface) catalog.Repository {
	return &ResourceRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewResourceMapper(),
	}
}

func (r *ResourceRepository) Create(ctx context.Context, resource *catalog.Resource) error {
	model := r.mapper.ToModel(resource)
	tx := shareddb.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create resource", "title", resource.Title(), "error", err)
		return fmt.Errorf("failed to create resource: %w", err)
	}

	if resource.ID() == 0 {
		if err := resource.SetID(model.ID); err != nil {
			return err
		}
	}

	return r.replaceTags(tx, resource.ID(), resource.TagIDs())
}

func (r *ResourceRepository) GetByID(ctx context.Context, id uint) (*catalog.Resource, error) {
	tx := shareddb.GetTxFromContext(ctx, r.db)

	var model models.ResourceModel
	err := tx.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrResourceNotFound
		}
		r.logger.Errorw("failed to get resource", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	tagIDs, err := r.tagIDsFor(tx, []uint{id})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model, tagIDs[id])
}

func (r *ResourceRepository) Update(ctx context.Context, resource *catalog.Resource) error {
	model := r.mapper.ToModel(resource)
	tx := shareddb.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ResourceModel{}).
		Where("id = ?", resource.ID()).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update resource", "id", resource.ID(), "error", result.Error)
		return fmt.Errorf("failed to update resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrResourceNotFound
	}

	return r.replaceTags(tx, resource.ID(), resource.TagIDs())
}

func (r *ResourceRepository) Delete(ctx context.Context, id uint) error {
	tx := shareddb.GetTxFromContext(ctx, r.db)

	if err := tx.Where("resource_id = ?", id).Delete(&models.ResourceTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete resource tags: %w", err)
	}

	result := tx.Delete(&models.ResourceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete resource", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Resource, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ResourceModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title LIKE ? OR title_es LIKE ? OR author_composer LIKE ? OR description LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Subcategory != nil {
		query = query.Where("subcategory = ?", filter.Subcategory.String())
	}
	if filter.ChurchID != nil {
		query = query.Where("church_id = ?", *filter.ChurchID)
	}
	if filter.Availability != nil {
		query = query.Where("availability_status = ?", filter.Availability.String())
	}
	if len(filter.TagIDs) > 0 {
		query = query.Where(
			"id IN (SELECT resource_id FROM resource_tags WHERE tag_id IN ?)",
			filter.TagIDs,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count resources: %w", err)
	}

	switch filter.Sort {
	case catalog.SortTitle:
		query = query.Order("title ASC")
	case catalog.SortAuthor:
		query = query.Order("author_composer ASC, title ASC")
	default:
		query = query.Order("created_at DESC")
	}

	var modelList []*models.ResourceModel
	err := query.
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list resources", "error", err)
		return nil, 0, fmt.Errorf("failed to list resources: %w", err)
	}

	resources, err := r.toDomainWithTags(r.db.WithContext(ctx), modelList)
	if err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

func (r *ResourceRepository) ListByChurch(ctx context.Context, churchID uint) ([]*catalog.Resource, error) {
	var modelList []*models.ResourceModel

	err := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Order("title ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resources by church: %w", err)
	}

	return r.toDomainWithTags(r.db.WithContext(ctx), modelList)
}

func (r *ResourceRepository) CreateBatch(ctx context.Context, resources []*catalog.Resource) error {
	if len(resources) == 0 {
		return nil
	}
	tx := shareddb.GetTxFromContext(ctx, r.db)

	modelList := make([]*models.ResourceModel, len(resources))
	for i, resource := range resources {
		modelList[i] = r.mapper.ToModel(resource)
	}

	if err := tx.Create(&modelList).Error; err != nil {
		r.logger.Errorw("failed to batch create resources", "count", len(resources), "error", err)
		return fmt.Errorf("failed to batch create resources: %w", err)
	}

	var links []models.ResourceTagModel
	for i, resource := range resources {
		if resource.ID() == 0 {
			if err := resource.SetID(modelList[i].ID); err != nil {
				return err
			}
		}
		for _, tagID := range resource.TagIDs() {
			links = append(links, models.ResourceTagModel{ResourceID: resource.ID(), TagID: tagID})
		}
	}
	if len(links) == 0 {
		return nil
	}
	if err := tx.Create(&links).Error; err != nil {
		r.logger.Errorw("failed to batch create resource tags", "error", err)
		return fmt.Errorf("failed to batch create resource tags: %w", err)
	}
	return nil
}

// SetAvailabilityIf performs the guarded availability flip. The WHERE clause
// on the expected value makes a lost race visible as zero affected rows.
func (r *ResourceRepository) SetAvailabilityIf(ctx context.Context, id uint, expected, next vo.AvailabilityStatus) (bool, error) {
	tx := shareddb.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ResourceModel{}).
		Where("id = ? AND availability_status = ?", id, expected.String()).
		Update("availability_status", next.String())
	if result.Error != nil {
		r.logger.Errorw("failed to set resource availability",
			"id", id, "expected", expected, "next", next, "error", result.Error)
		return false, fmt.Errorf("failed to set resource availability: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ResourceRepository) replaceTags(tx *gorm.DB, resourceID uint, tagIDs []uint) error {
	if err := tx.Where("resource_id = ?", resourceID).Delete(&models.ResourceTagModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear resource tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]models.ResourceTagModel, len(tagIDs))
	for i, tagID := range tagIDs {
		links[i] = models.ResourceTagModel{ResourceID: resourceID, TagID: tagID}
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to create resource tags: %w", err)
	}
	return nil
}

func (r *ResourceRepository) tagIDsFor(tx *gorm.DB, resourceIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(resourceIDs))
	if len(resourceIDs) == 0 {
		return result, nil
	}

	var links []models.ResourceTagModel
	if err := tx.Where("resource_id IN ?", resourceIDs).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to load resource tags: %w", err)
	}
	for _, link := range links {
		result[link.ResourceID] = append(result[link.ResourceID], link.TagID)
	}
	return result, nil
}

func (r *ResourceRepository) toDomainWithTags(tx *gorm.DB, modelList []*models.ResourceModel) ([]*catalog.Resource, error) {
	ids := make([]uint, len(modelList))
	for i, model := range modelList {
		ids[i] = model.ID
	}
	tagIDs, err := r.tagIDsFor(tx, ids)
	if err != nil {
		return nil, err
	}

	resources := make([]*catalog.Resource, 0, len(modelList))
	for _, model := range modelList {
		resource, err := r.mapper.ToDomain(model, tagIDs[model.ID])
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	return resources, nil
}
