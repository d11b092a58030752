package valueobjects

// AvailabilityStatus is the mutable field driving the loan workflow. A
// resource is ON_LOAN exactly while one active or overdue loan exists for it.
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "AVAILABLE"
	AvailabilityOnLoan      AvailabilityStatus = "ON_LOAN"
	AvailabilityUnavailable AvailabilityStatus = "UNAVAILABLE"
)

func (s AvailabilityStatus) IsValid() bool {
	return s == AvailabilityAvailable || s == AvailabilityOnLoan || s == AvailabilityUnavailable
}

func (s AvailabilityStatus) String() string {
	return string(s)
}
