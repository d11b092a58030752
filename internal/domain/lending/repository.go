package lending

import (
	"context"
	"time"

	vo "ministryshare/internal/domain/lending/valueobjects"
)

// RequestFilter narrows loan request listings. Direction distinguishes
// requests made by a church (outgoing) from requests for its resources
// (incoming).
type RequestFilter struct {
	RequestingChurchID *uint
	OwnerChurchID      *uint
	ResourceID         *uint
	Status             *vo.RequestStatus
	Page               int
	PageSize           int
}

// LoanFilter narrows loan listings.
type LoanFilter struct {
	BorrowingChurchID *uint
	LendingChurchID   *uint
	ResourceID        *uint
	Status            *vo.LoanStatus
	Page              int
	PageSize          int
}

// RequestRepository persists loan requests.
type RequestRepository interface {
	Create(ctx context.Context, request *LoanRequest) error
	GetByID(ctx context.Context, id uint) (*LoanRequest, error)
	Update(ctx context.Context, request *LoanRequest) error
	List(ctx context.Context, filter RequestFilter) ([]*LoanRequest, int64, error)

	// ExistsPending reports whether the church already has a PENDING request
	// for the resource.
	ExistsPending(ctx context.Context, resourceID, requestingChurchID uint) (bool, error)

	// ListPendingForResource returns the other pending requests for a
	// resource, used to auto-deny siblings when one request is approved.
	ListPendingForResource(ctx context.Context, resourceID uint, excludeID uint) ([]*LoanRequest, error)
}

// LoanRepository persists loans.
type LoanRepository interface {
	Create(ctx context.Context, loan *Loan) error
	GetByID(ctx context.Context, id uint) (*Loan, error)
	Update(ctx context.Context, loan *Loan) error
	List(ctx context.Context, filter LoanFilter) ([]*Loan, int64, error)
	GetOpenByResource(ctx context.Context, resourceID uint) (*Loan, error)

	// ListDueBefore returns open ACTIVE loans whose due date is before the
	// given time, for the overdue sweep.
	ListDueBefore(ctx context.Context, t time.Time) ([]*Loan, error)
}
