package church

import "context"

// ListFilter narrows church listings.
type ListFilter struct {
	Search             string
	RegistrationStatus *RegistrationStatus
	ActiveOnly         bool
	Page               int
	PageSize           int
}

// Repository persists churches.
type Repository interface {
	Create(ctx context.Context, church *Church) error
	GetByID(ctx context.Context, id uint) (*Church, error)
	GetByName(ctx context.Context, name string) (*Church, error)
	Update(ctx context.Context, church *Church) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Church, int64, error)
	CountByStatus(ctx context.Context, status RegistrationStatus) (int64, error)
}
