package tabstrip

import "errors"

var (
	// ErrContractViolation is returned by Bind when the page provider cannot
	// supply tab titles. It is a programming error and is not retried.
	ErrContractViolation = errors.New("contract violation")

	// ErrPrecondition is returned when a pager callback arrives before Bind,
	// when an index is out of range, or when rebinding mid-gesture.
	ErrPrecondition = errors.New("precondition failed")
)
