package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ministryshare/internal/domain/lending"
	vo "ministryshare/internal/domain/lending/valueobjects"
	"ministryshare/internal/infrastructure/persistence/mappers"
	"ministryshare/internal/infrastructure/persistence/models"
	shareddb "ministryshare/internal/shared/db"
	"ministryshare/internal/shared/logger"
)

var openLoanStatuses = []string{vo.LoanActive.String(), vo.LoanOverdue.String()}

// LoanRepository implements lending.LoanRepository.
type LoanRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.LoanMapper
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(db *gorm.DB, logger logger.Interface) lending.LoanRepository {
	return &LoanRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewLoanMapper(),
	}
}

func (r *LoanRepository) Create(ctx context.Context, loan *lending.Loan) error {
	model := r.mapper.ToModel(loan)
	tx := shareddb.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create loan", "resource_id", loan.ResourceID(), "error", err)
		return fmt.Errorf("failed to create loan: %w", err)
	}

	if loan.ID() == 0 {
		return loan.SetID(model.ID)
	}
	return nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint) (*lending.Loan, error) {
	tx := shareddb.GetTxFromContext(ctx, r.db)

	var model models.LoanModel
	err := tx.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lending.ErrLoanNotFound
		}
		r.logger.Errorw("failed to get loan", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LoanRepository) Update(ctx context.Context, loan *lending.Loan) error {
	model := r.mapper.ToModel(loan)
	tx := shareddb.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.LoanModel{}).
		Where("id = ?", loan.ID()).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update loan", "id", loan.ID(), "error", result.Error)
		return fmt.Errorf("failed to update loan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return lending.ErrLoanNotFound
	}
	return nil
}

func (r *LoanRepository) List(ctx context.Context, filter lending.LoanFilter) ([]*lending.Loan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.LoanModel{})

	if filter.BorrowingChurchID != nil {
		query = query.Where("borrowing_church_id = ?", *filter.BorrowingChurchID)
	}
	if filter.LendingChurchID != nil {
		query = query.Where("lending_church_id = ?", *filter.LendingChurchID)
	}
	if filter.ResourceID != nil {
		query = query.Where("resource_id = ?", *filter.ResourceID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	var modelList []*models.LoanModel
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list loans", "error", err)
		return nil, 0, fmt.Errorf("failed to list loans: %w", err)
	}

	loans, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return loans, total, nil
}

// GetOpenByResource returns the ACTIVE or OVERDUE loan holding the resource,
// if any. At most one exists by the single-open-loan invariant.
func (r *LoanRepository) GetOpenByResource(ctx context.Context, resourceID uint) (*lending.Loan, error) {
	tx := shareddb.GetTxFromContext(ctx, r.db)

	var model models.LoanModel
	err := tx.
		Where("resource_id = ? AND status IN ?", resourceID, openLoanStatuses).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lending.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get open loan: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LoanRepository) ListDueBefore(ctx context.Context, t time.Time) ([]*lending.Loan, error) {
	var modelList []*models.LoanModel

	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", vo.LoanActive.String(), t).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due loans: %w", err)
	}

	return r.mapper.ToDomainList(modelList)
}
