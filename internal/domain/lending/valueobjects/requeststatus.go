// Package valueobjects defines the state enums of the lending workflow.
package valueobjects

// RequestStatus tracks a loan request through its lifecycle. PENDING is the
// only state from which a transition is allowed; APPROVED, DENIED and
// CANCELLED are terminal.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestApproved  RequestStatus = "APPROVED"
	RequestDenied    RequestStatus = "DENIED"
	RequestCancelled RequestStatus = "CANCELLED"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestDenied, RequestCancelled:
		return true
	}
	return false
}

func (s RequestStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is allowed.
func (s RequestStatus) IsTerminal() bool {
	return s != RequestPending
}
