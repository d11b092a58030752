package activity

import "context"

// ListFilter narrows audit listings. UserIDs restricts entries to actions by
// those users, used to scope editors to their own church.
type ListFilter struct {
	UserIDs    []uint
	Action     string
	EntityType string
	Page       int
	PageSize   int
}

// Repository persists audit entries. Entries are append-only.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter ListFilter) ([]*Entry, int64, error)
}
