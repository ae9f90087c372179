package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel classes for marking errors. Callers test against these with
// errors.Is / the helper predicates below rather than string matching.
var (
	// ErrValidation covers recoverable field-level validation failures.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a referenced entity does not exist
	// in the reference-data snapshot or a repository.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned by the stock guard when the
	// requested quantity exceeds the available stock snapshot.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidOperation covers misuse of the engine API, e.g. editing
	// a line that is not part of the invoice.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInternal covers failures that should never occur in normal
	// operation, e.g. a computation producing a non-finite value.
	ErrInternal = errors.New("internal error")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsValidation reports whether err is marked as a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is marked as a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInsufficientStock reports whether err is marked as a stock failure.
func IsInsufficientStock(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}
