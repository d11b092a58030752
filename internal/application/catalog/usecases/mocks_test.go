package usecases

import (
	"context"
	"time"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/shared/logger"
)

type mockResourceRepository struct {
	CreateFunc            func(ctx context.Context, resource *catalog.Resource) error
	GetByIDFunc           func(ctx context.Context, id uint) (*catalog.Resource, error)
	UpdateFunc            func(ctx context.Context, resource *catalog.Resource) error
	DeleteFunc            func(ctx context.Context, id uint) error
	ListFunc              func(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Resource, int64, error)
	ListByChurchFunc      func(ctx context.Context, churchID uint) ([]*catalog.Resource, error)
	CreateBatchFunc       func(ctx context.Context, resources []*catalog.Resource) error
	SetAvailabilityIfFunc func(ctx context.Context, id uint, expected, next vo.AvailabilityStatus) (bool, error)
}

func (m *mockResourceRepository) Create(ctx context.Context, resource *catalog.Resource) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, resource)
	}
	return resource.SetID(1)
}

func (m *mockResourceRepository) GetByID(ctx context.Context, id uint) (*catalog.Resource, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, catalog.ErrResourceNotFound
}

func (m *mockResourceRepository) Update(ctx context.Context, resource *catalog.Resource) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, resource)
	}
	return nil
}

func (m *mockResourceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockResourceRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Resource, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockResourceRepository) ListByChurch(ctx context.Context, churchID uint) ([]*catalog.Resource, error) {
	if m.ListByChurchFunc != nil {
		return m.ListByChurchFunc(ctx, churchID)
	}
	return nil, nil
}

func (m *mockResourceRepository) CreateBatch(ctx context.Context, resources []*catalog.Resource) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, resources)
	}
	return nil
}

func (m *mockResourceRepository) SetAvailabilityIf(ctx context.Context, id uint, expected, next vo.AvailabilityStatus) (bool, error) {
	if m.SetAvailabilityIfFunc != nil {
		return m.SetAvailabilityIfFunc(ctx, id, expected, next)
	}
	return true, nil
}

type mockTagRepository struct {
	CreateFunc         func(ctx context.Context, tag *catalog.Tag) error
	GetByIDFunc        func(ctx context.Context, id uint) (*catalog.Tag, error)
	GetByIDsFunc       func(ctx context.Context, ids []uint) ([]*catalog.Tag, error)
	GetByNameFoldFunc  func(ctx context.Context, name string) (*catalog.Tag, error)
	ListFunc           func(ctx context.Context) ([]*catalog.Tag, error)
	ListByCategoryFunc func(ctx context.Context, category vo.Category) ([]*catalog.Tag, error)
}

func (m *mockTagRepository) Create(ctx context.Context, tag *catalog.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	return tag.SetID(1)
}

func (m *mockTagRepository) GetByID(ctx context.Context, id uint) (*catalog.Tag, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, catalog.ErrTagNotFound
}

func (m *mockTagRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Tag, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockTagRepository) GetByNameFold(ctx context.Context, name string) (*catalog.Tag, error) {
	if m.GetByNameFoldFunc != nil {
		return m.GetByNameFoldFunc(ctx, name)
	}
	return nil, catalog.ErrTagNotFound
}

func (m *mockTagRepository) List(ctx context.Context) ([]*catalog.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTagRepository) ListByCategory(ctx context.Context, category vo.Category) ([]*catalog.Tag, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	return nil, nil
}

type mockLoanRepository struct {
	CreateFunc            func(ctx context.Context, loan *lending.Loan) error
	GetByIDFunc           func(ctx context.Context, id uint) (*lending.Loan, error)
	UpdateFunc            func(ctx context.Context, loan *lending.Loan) error
	ListFunc              func(ctx context.Context, filter lending.LoanFilter) ([]*lending.Loan, int64, error)
	GetOpenByResourceFunc func(ctx context.Context, resourceID uint) (*lending.Loan, error)
	ListDueBeforeFunc     func(ctx context.Context, t time.Time) ([]*lending.Loan, error)
}

func (m *mockLoanRepository) Create(ctx context.Context, loan *lending.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, loan)
	}
	return loan.SetID(1)
}

func (m *mockLoanRepository) GetByID(ctx context.Context, id uint) (*lending.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, lending.ErrLoanNotFound
}

func (m *mockLoanRepository) Update(ctx context.Context, loan *lending.Loan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, loan)
	}
	return nil
}

func (m *mockLoanRepository) List(ctx context.Context, filter lending.LoanFilter) ([]*lending.Loan, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockLoanRepository) GetOpenByResource(ctx context.Context, resourceID uint) (*lending.Loan, error) {
	if m.GetOpenByResourceFunc != nil {
		return m.GetOpenByResourceFunc(ctx, resourceID)
	}
	return nil, lending.ErrLoanNotFound
}

func (m *mockLoanRepository) ListDueBefore(ctx context.Context, t time.Time) ([]*lending.Loan, error) {
	if m.ListDueBeforeFunc != nil {
		return m.ListDueBeforeFunc(ctx, t)
	}
	return nil, nil
}

type mockRecorder struct {
	actions []string
}

func (m *mockRecorder) Record(userID uint, action, entityType string, entityID *uint, details map[string]any) {
	m.actions = append(m.actions, action)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }
