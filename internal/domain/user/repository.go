package user

import "context"

// ListFilter narrows user listings.
type ListFilter struct {
	Search   string
	ChurchID *uint
	Role     *string
	Page     int
	PageSize int
}

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByVerificationToken(ctx context.Context, token string) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	ListByChurch(ctx context.Context, churchID uint) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}
