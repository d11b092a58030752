package catalog

import "errors"

var (
	// ErrResourceNotFound indicates the resource was not found
	ErrResourceNotFound = errors.New("resource not found")

	// ErrResourceNotAvailable indicates the resource is not available for loan
	ErrResourceNotAvailable = errors.New("resource is not available")

	// ErrResourceNotOnLoan indicates a return was attempted on a resource that is not on loan
	ErrResourceNotOnLoan = errors.New("resource is not on loan")

	// ErrTagNotFound indicates the tag was not found
	ErrTagNotFound = errors.New("tag not found")
)
