package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ministryshare/internal/domain/lending"
	vo "ministryshare/internal/domain/lending/valueobjects"
	"ministryshare/internal/infrastructure/persistence/mappers"
	"ministryshare/internal/infrastructure/persistence/models"
	shareddb "ministryshare/internal/shared/db"
	"ministryshare/internal/shared/logger"
)

// LoanRequestRepository implements lending.RequestRepository.
type LoanRequestRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.LoanRequestMapper
}

// NewLoanRequestRepository creates a new LoanRequestRepository.
func NewLoanRequestRepository(db *gorm.DB, logger logger.Interface) lending.RequestRepository {
	return &LoanRequestRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewLoanRequestMapper(),
	}
}

func (r *LoanRequestRepository) Create(ctx context.Context, request *lending.LoanRequest) error {
	model := r.mapper.ToModel(request)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create loan request", "resource_id", request.ResourceID(), "error", err)
		return fmt.Errorf("failed to create loan request: %w", err)
	}

	if request.ID() == 0 {
		return request.SetID(model.ID)
	}
	return nil
}

func (r *LoanRequestRepository) GetByID(ctx context.Context, id uint) (*lending.LoanRequest, error) {
	tx := shareddb.GetTxFromContext(ctx, r.db)

	var model models.LoanRequestModel
	err := tx.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lending.ErrRequestNotFound
		}
		r.logger.Errorw("failed to get loan request", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get loan request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LoanRequestRepository) Update(ctx context.Context, request *lending.LoanRequest) error {
	model := r.mapper.ToModel(request)
	tx := shareddb.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.LoanRequestModel{}).
		Where("id = ?", request.ID()).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update loan request", "id", request.ID(), "error", result.Error)
		return fmt.Errorf("failed to update loan request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return lending.ErrRequestNotFound
	}
	return nil
}

func (r *LoanRequestRepository) List(ctx context.Context, filter lending.RequestFilter) ([]*lending.LoanRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.LoanRequestModel{})

	if filter.RequestingChurchID != nil {
		query = query.Where("requesting_church_id = ?", *filter.RequestingChurchID)
	}
	if filter.OwnerChurchID != nil {
		query = query.Where(
			"resource_id IN (SELECT id FROM resources WHERE church_id = ?)",
			*filter.OwnerChurchID,
		)
	}
	if filter.ResourceID != nil {
		query = query.Where("resource_id = ?", *filter.ResourceID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count loan requests: %w", err)
	}

	var modelList []*models.LoanRequestModel
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list loan requests", "error", err)
		return nil, 0, fmt.Errorf("failed to list loan requests: %w", err)
	}

	requests, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *LoanRequestRepository) ExistsPending(ctx context.Context, resourceID, requestingChurchID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LoanRequestModel{}).
		Where("resource_id = ? AND requesting_church_id = ? AND status = ?",
			resourceID, requestingChurchID, vo.RequestPending.String()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending loan request: %w", err)
	}
	return count > 0, nil
}

func (r *LoanRequestRepository) ListPendingForResource(ctx context.Context, resourceID uint, excludeID uint) ([]*lending.LoanRequest, error) {
	tx := shareddb.GetTxFromContext(ctx, r.db)

	var modelList []*models.LoanRequestModel
	err := tx.
		Where("resource_id = ? AND status = ? AND id <> ?",
			resourceID, vo.RequestPending.String(), excludeID).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending loan requests: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
