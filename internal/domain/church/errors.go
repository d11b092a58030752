package church

import "errors"

var (
	// ErrChurchNotFound indicates the church was not found
	ErrChurchNotFound = errors.New("church not found")

	// ErrChurchNotPending indicates an approval decision was attempted on a church that already left review
	ErrChurchNotPending = errors.New("church registration is not pending")

	// ErrChurchNotApproved indicates the church has not passed admin review
	ErrChurchNotApproved = errors.New("church is not approved")

	// ErrChurchInactive indicates the church is deactivated
	ErrChurchInactive = errors.New("church is not active")

	// ErrChurchNameTaken indicates another church already uses the name
	ErrChurchNameTaken = errors.New("church name already in use")
)
