package lending

import "errors"

var (
	// ErrRequestNotFound indicates the loan request was not found
	ErrRequestNotFound = errors.New("loan request not found")

	// ErrRequestNotPending indicates a transition was attempted on a request that already left PENDING
	ErrRequestNotPending = errors.New("loan request is not pending")

	// ErrDuplicatePendingRequest indicates the church already has a pending request for the resource
	ErrDuplicatePendingRequest = errors.New("a pending request for this resource already exists")

	// ErrOwnResource indicates a church tried to request its own resource
	ErrOwnResource = errors.New("cannot request a resource owned by your own church")

	// ErrLoanNotFound indicates the loan was not found
	ErrLoanNotFound = errors.New("loan not found")

	// ErrLoanNotOpen indicates a close was attempted on a loan that is already RETURNED or LOST
	ErrLoanNotOpen = errors.New("loan is not active or overdue")

	// ErrLoanNotActive indicates an overdue mark was attempted on a non-ACTIVE loan
	ErrLoanNotActive = errors.New("loan is not active")
)
