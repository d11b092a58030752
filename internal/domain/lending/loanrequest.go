// Package lending models the loan workflow: borrow requests between churches
// and the loans created when a request is approved.
package lending

import (
	"fmt"
	"time"

	vo "ministryshare/internal/domain/lending/valueobjects"
)

// LoanRequest is a church's ask to borrow another church's resource. It
// starts PENDING and moves exactly once to APPROVED, DENIED or CANCELLED.
type LoanRequest struct {
	id                 uint
	resourceID         uint
	requestingChurchID uint
	requestingUserID   uint
	neededByDate       *time.Time
	returnByDate       time.Time
	message            string
	status             vo.RequestStatus
	responseMessage    string
	respondedByUserID  *uint
	respondedAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewLoanRequest creates a pending request. Ownership, availability and
// duplicate checks belong to the use case; this constructor only enforces
// field validity.
func NewLoanRequest(resourceID, requestingChurchID, requestingUserID uint, neededByDate *time.Time, returnByDate time.Time, message string) (*LoanRequest, error) {
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if requestingChurchID == 0 {
		return nil, fmt.Errorf("requesting church ID is required")
	}
	if requestingUserID == 0 {
		return nil, fmt.Errorf("requesting user ID is required")
	}
	now := time.Now()
	if returnByDate.IsZero() {
		return nil, fmt.Errorf("return by date is required")
	}
	if !returnByDate.After(now) {
		return nil, fmt.Errorf("return by date must be in the future")
	}
	if neededByDate != nil && neededByDate.After(returnByDate) {
		return nil, fmt.Errorf("needed by date cannot be after return by date")
	}
	if len(message) > 1000 {
		return nil, fmt.Errorf("message exceeds 1000 characters")
	}

	return &LoanRequest{
		resourceID:         resourceID,
		requestingChurchID: requestingChurchID,
		requestingUserID:   requestingUserID,
		neededByDate:       neededByDate,
		returnByDate:       returnByDate,
		message:            message,
		status:             vo.RequestPending,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructLoanRequest reconstructs a request from persistence.
func ReconstructLoanRequest(
	id uint,
	resourceID uint,
	requestingChurchID uint,
	requestingUserID uint,
	neededByDate *time.Time,
	returnByDate time.Time,
	message string,
	status vo.RequestStatus,
	responseMessage string,
	respondedByUserID *uint,
	respondedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*LoanRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("loan request ID cannot be zero")
	}
	if resourceID == 0 {
		return nil, fmt.Errorf("resource ID is required")
	}
	if requestingChurchID == 0 {
		return nil, fmt.Errorf("requesting church ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid request status: %s", status)
	}

	return &LoanRequest{
		id:                 id,
		resourceID:         resourceID,
		requestingChurchID: requestingChurchID,
		requestingUserID:   requestingUserID,
		neededByDate:       neededByDate,
		returnByDate:       returnByDate,
		message:            message,
		status:             status,
		responseMessage:    responseMessage,
		respondedByUserID:  respondedByUserID,
		respondedAt:        respondedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (r *LoanRequest) ID() uint                 { return r.id }
func (r *LoanRequest) ResourceID() uint         { return r.resourceID }
func (r *LoanRequest) RequestingChurchID() uint { return r.requestingChurchID }
func (r *LoanRequest) RequestingUserID() uint   { return r.requestingUserID }
func (r *LoanRequest) NeededByDate() *time.Time { return r.neededByDate }
func (r *LoanRequest) ReturnByDate() time.Time  { return r.returnByDate }
func (r *LoanRequest) Message() string          { return r.message }
func (r *LoanRequest) Status() vo.RequestStatus { return r.status }
func (r *LoanRequest) ResponseMessage() string  { return r.responseMessage }
func (r *LoanRequest) RespondedByUserID() *uint { return r.respondedByUserID }
func (r *LoanRequest) RespondedAt() *time.Time  { return r.respondedAt }
func (r *LoanRequest) CreatedAt() time.Time     { return r.createdAt }
func (r *LoanRequest) UpdatedAt() time.Time     { return r.updatedAt }

func (r *LoanRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("loan request ID already set")
	}
	if id == 0 {
		return fmt.Errorf("loan request ID cannot be zero")
	}
	r.id = id
	return nil
}

// IsPending reports whether the request can still be acted on.
func (r *LoanRequest) IsPending() bool {
	return r.status == vo.RequestPending
}

// Approve moves a pending request to APPROVED, recording who responded.
func (r *LoanRequest) Approve(respondedByUserID uint, responseMessage string) error {
	if r.status != vo.RequestPending {
		return ErrRequestNotPending
	}
	if len(responseMessage) > 1000 {
		return fmt.Errorf("response message exceeds 1000 characters")
	}
	now := time.Now()
	r.status = vo.RequestApproved
	r.responseMessage = responseMessage
	r.respondedByUserID = &respondedByUserID
	r.respondedAt = &now
	r.updatedAt = now
	return nil
}

// Deny moves a pending request to DENIED with an optional reason.
func (r *LoanRequest) Deny(respondedByUserID uint, responseMessage string) error {
	if r.status != vo.RequestPending {
		return ErrRequestNotPending
	}
	if len(responseMessage) > 1000 {
		return fmt.Errorf("response message exceeds 1000 characters")
	}
	now := time.Now()
	r.status = vo.RequestDenied
	r.responseMessage = responseMessage
	r.respondedByUserID = &respondedByUserID
	r.respondedAt = &now
	r.updatedAt = now
	return nil
}

// Cancel moves a pending request to CANCELLED. Only the requesting church may
// cancel; that check lives in the use case.
func (r *LoanRequest) Cancel() error {
	if r.status != vo.RequestPending {
		return ErrRequestNotPending
	}
	r.status = vo.RequestCancelled
	r.updatedAt = time.Now()
	return nil
}
