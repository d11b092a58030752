package valueobjects

// LoanStatus tracks an open or closed loan. ACTIVE and OVERDUE are open
// states; RETURNED and LOST are terminal.
type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanOverdue  LoanStatus = "OVERDUE"
	LoanReturned LoanStatus = "RETURNED"
	LoanLost     LoanStatus = "LOST"
)

func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanActive, LoanOverdue, LoanReturned, LoanLost:
		return true
	}
	return false
}

func (s LoanStatus) String() string {
	return string(s)
}

// IsOpen reports whether the loan still holds the resource.
func (s LoanStatus) IsOpen() bool {
	return s == LoanActive || s == LoanOverdue
}
