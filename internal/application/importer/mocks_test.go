package importer

import (
	"context"

	"ministryshare/internal/domain/catalog"
	vo "ministryshare/internal/domain/catalog/valueobjects"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/shared/logger"
)

type mockResourceRepository struct {
	CreateFunc      func(ctx context.Context, resource *catalog.Resource) error
	CreateBatchFunc func(ctx context.Context, resources []*catalog.Resource) error

	batches [][]*catalog.Resource
	singles []*catalog.Resource
	nextID  uint
}

func (m *mockResourceRepository) Create(ctx context.Context, resource *catalog.Resource) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, resource)
	}
	m.singles = append(m.singles, resource)
	return resource.SetID(uint(len(m.singles)))
}

func (m *mockResourceRepository) GetByID(ctx context.Context, id uint) (*catalog.Resource, error) {
	return nil, catalog.ErrResourceNotFound
}

func (m *mockResourceRepository) Update(ctx context.Context, resource *catalog.Resource) error { return nil }

func (m *mockResourceRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockResourceRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Resource, int64, error) {
	return nil, 0, nil
}

func (m *mockResourceRepository) ListByChurch(ctx context.Context, churchID uint) ([]*catalog.Resource, error) {
	return nil, nil
}

func (m *mockResourceRepository) CreateBatch(ctx context.Context, resources []*catalog.Resource) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, resources)
	}
	m.batches = append(m.batches, resources)
	for _, r := range resources {
		if r.ID() != 0 {
			continue
		}
		m.nextID++
		if err := r.SetID(m.nextID); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockResourceRepository) SetAvailabilityIf(ctx context.Context, id uint, expected, next vo.AvailabilityStatus) (bool, error) {
	return true, nil
}

type mockTagRepository struct {
	CreateFunc        func(ctx context.Context, tag *catalog.Tag) error
	GetByNameFoldFunc func(ctx context.Context, name string) (*catalog.Tag, error)
	ListFunc          func(ctx context.Context) ([]*catalog.Tag, error)

	created []*catalog.Tag
}

func (m *mockTagRepository) Create(ctx context.Context, tag *catalog.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	m.created = append(m.created, tag)
	return tag.SetID(uint(1000 + len(m.created)))
}

func (m *mockTagRepository) GetByID(ctx context.Context, id uint) (*catalog.Tag, error) {
	return nil, catalog.ErrTagNotFound
}

func (m *mockTagRepository) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Tag, error) {
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
	return nil, nil
}

type mockChurchRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*church.Church, error)
}

func (m *mockChurchRepository) Create(ctx context.Context, c *church.Church) error { return nil }

func (m *mockChurchRepository) GetByID(ctx context.Context, id uint) (*church.Church, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, church.ErrChurchNotFound
}

func (m *mockChurchRepository) GetByName(ctx context.Context, name string) (*church.Church, error) {
	return nil, church.ErrChurchNotFound
}

func (m *mockChurchRepository) Update(ctx context.Context, c *church.Church) error { return nil }

func (m *mockChurchRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockChurchRepository) List(ctx context.Context, filter church.ListFilter) ([]*church.Church, int64, error) {
	return nil, 0, nil
}

func (m *mockChurchRepository) CountByStatus(ctx context.Context, status church.RegistrationStatus) (int64, error) {
	return 0, nil
}

type mockRecorder struct {
	actions     []string
	entityTypes []string
	entityIDs   []*uint
}

func (m *mockRecorder) Record(userID uint, action, entityType string, entityID *uint, details map[string]any) {
	m.actions = append(m.actions, action)
	m.entityTypes = append(m.entityTypes, entityType)
	m.entityIDs = append(m.entityIDs, entityID)
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
