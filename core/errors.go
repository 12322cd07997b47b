package core

import "errors"

// Every fallible operation in this package reports one of these sentinel
// errors. None of them is transient: a failed configuration attempt will fail
// the same way on retry, so callers should treat any error as a configuration
// bug to fix, not a condition to wait out.
var (
	// ErrInvalidParameter reports malformed input: a nil module handle, a
	// negative or NaN time, a prescaler factor of zero, an out-of-domain
	// selector, or a trigger threshold above the counter width.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAlreadyUsed reports a channel or accumulator double-booking.
	ErrAlreadyUsed = errors.New("resource already in use")

	// ErrOutOfRange reports a time value that converts to more ticks than
	// the target counter can hold.
	ErrOutOfRange = errors.New("tick count exceeds counter range")

	// ErrResourceExhausted reports an empty accumulator pool.
	ErrResourceExhausted = errors.New("no free accumulator")
)
