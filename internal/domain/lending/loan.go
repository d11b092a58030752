package lending

import (
	"fmt"
	"time"

	vo "ministryshare/internal/domain/lending/valueobjects"
)

// Loan is the record of a resource held by a borrowing church. A resource has
// at most one open loan at a time.
type Loan struct {
	id                uint
	resourceID        uint
	requestID         uint
	lendingChurchID   uint
	borrowingChurchID uint
	status            vo.LoanStatus
	dueDate           time.Time
	returnDate        *time.Time
	notes             string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewLoanFromRequest creates an ACTIVE loan for an approved request. The due
// date is the request's agreed return-by date.
func NewLoanFromRequest(request *LoanRequest, lendingChurchID uint) (*Loan, error) {
	if request == nil {
		return nil, fmt.Errorf("loan request is required")
	}
	if request.Status() != vo.RequestApproved {
		return nil, fmt.Errorf("loan can only be created from an approved request")
	}
	if request.ID() == 0 {
		return nil, fmt.Errorf("loan request must be persisted first")
	}
	if lendingChurchID == 0 {
		return nil, fmt.Errorf("lending church ID is required")
	}
	if lendingChurchID == request.RequestingChurchID() {
		return nil, fmt.Errorf("lending and borrowing church cannot be the same")
	}

	now := time.Now()
	return &Loan{
		resourceID:        request.ResourceID(),
		requestID:         request.ID(),
		lendingChurchID:   lendingChurchID,
		borrowingChurchID: request.RequestingChurchID(),
		status:            vo.LoanActive,
		dueDate:           request.ReturnByDate(),
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructLoan reconstructs a loan from persistence.
func ReconstructLoan(
	id uint,
	resourceID uint,
	requestID uint,
	lendingChurchID uint,
	borrowingChurchID uint,
	status vo.LoanStatus,
	dueDate time.Time,
	returnDate *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Loan, error) {
	if id == 0 {
		return nil, fmt.Errorf("loan ID cannot be zero")
	}
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid loan status: %s", status)
	}

	return &Loan{
		id:                id,
		resourceID:        resourceID,
		requestID:         requestID,
		lendingChurchID:   lendingChurchID,
		borrowingChurchID: borrowingChurchID,
		status:            status,
		dueDate:           dueDate,
		returnDate:        returnDate,
		notes:             notes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (l *Loan) ID() uint                { return l.id }
func (l *Loan) ResourceID() uint        { return l.resourceID }
func (l *Loan) RequestID() uint         { return l.requestID }
func (l *Loan) LendingChurchID() uint   { return l.lendingChurchID }
func (l *Loan) BorrowingChurchID() uint { return l.borrowingChurchID }
func (l *Loan) Status() vo.LoanStatus   { return l.status }
func (l *Loan) DueDate() time.Time      { return l.dueDate }
func (l *Loan) ReturnDate() *time.Time  { return l.returnDate }
func (l *Loan) Notes() string           { return l.notes }
func (l *Loan) CreatedAt() time.Time    { return l.createdAt }
func (l *Loan) UpdatedAt() time.Time    { return l.updatedAt }

func (l *Loan) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("loan ID already set")
	}
	if id == 0 {
		return fmt.Errorf("loan ID cannot be zero")
	}
	l.id = id
	return nil
}

// IsOpen reports whether the loan still holds the resource.
func (l *Loan) IsOpen() bool {
	return l.status.IsOpen()
}

// IsPastDue reports whether an open loan has passed its due date.
func (l *Loan) IsPastDue(now time.Time) bool {
	return l.status.IsOpen() && now.After(l.dueDate)
}

// MarkReturned closes an open loan. Returning an overdue loan is allowed.
func (l *Loan) MarkReturned(notes string) error {
	if !l.status.IsOpen() {
		return ErrLoanNotOpen
	}
	now := time.Now()
	l.status = vo.LoanReturned
	l.returnDate = &now
	if notes != "" {
		l.notes = notes
	}
	l.updatedAt = now
	return nil
}

// MarkOverdue flags an active loan past its due date. The resource stays
// ON_LOAN. Re-marking an already overdue loan is a no-op.
func (l *Loan) MarkOverdue() error {
	if l.status == vo.LoanOverdue {
		return nil
	}
	if l.status != vo.LoanActive {
		return ErrLoanNotActive
	}
	l.status = vo.LoanOverdue
	l.updatedAt = time.Now()
	return nil
}

// MarkLost closes an open loan whose resource will not come back. The
// resource itself moves to UNAVAILABLE.
func (l *Loan) MarkLost(notes string) error {
	if !l.status.IsOpen() {
		return ErrLoanNotOpen
	}
	l.status = vo.LoanLost
	if notes != "" {
		l.notes = notes
	}
	l.updatedAt = time.Now()
	return nil
}
