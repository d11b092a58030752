package catalog

import (
	"context"

	vo "ministryshare/internal/domain/catalog/valueobjects"
)

// SortOrder selects how catalog listings are ordered.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortTitle  SortOrder = "title"
	SortAuthor SortOrder = "author"
)

func (s SortOrder) IsValid() bool {
	return s == SortNewest || s == SortTitle || s == SortAuthor
}

// ListFilter narrows catalog listings. Zero values mean "no filter".
type ListFilter struct {
	Search       string
	Category     *vo.Category
	Subcategory  *vo.Subcategory
	ChurchID     *uint
	Availability *vo.AvailabilityStatus
	TagIDs       []uint
	Sort         SortOrder
	Page         int
	PageSize     int
}

// Repository persists resources and their tag associations.
type Repository interface {
	Create(ctx context.Context, resource *Resource) error
	GetByID(ctx context.Context, id uint) (*Resource, error)
	Update(ctx context.Context, resource *Resource) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Resource, int64, error)
	ListByChurch(ctx context.Context, churchID uint) ([]*Resource, error)
	CreateBatch(ctx context.Context, resources []*Resource) error

	// SetAvailabilityIf updates availability only when the stored value still
	// matches expected. It reports whether a row changed, which lets callers
	// detect a lost race without an extra read.
	SetAvailabilityIf(ctx context.Context, id uint, expected, next vo.AvailabilityStatus) (bool, error)
}

// TagRepository persists the shared tag vocabulary.
type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	GetByID(ctx context.Context, id uint) (*Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Tag, error)
	GetByNameFold(ctx context.Context, name string) (*Tag, error)
	List(ctx context.Context) ([]*Tag, error)
	ListByCategory(ctx context.Context, category vo.Category) ([]*Tag, error)
}
