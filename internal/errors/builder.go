package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError is the concrete error produced by the builder. It carries a
// user-facing hint and structured reportable details alongside the wrapped
// cause, and is marked with one of the sentinel classes so errors.Is works.
type InternalError struct {
	cause   error
	hint    string
	details map[string]any
	mark    error
}

func (e *InternalError) Error() string {
	if e.hint != "" {
		return fmt.Sprintf("%s: %s", e.cause.Error(), e.hint)
	}
	return e.cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match both the mark and the wrapped cause.
func (e *InternalError) Is(target error) bool {
	if e.mark != nil && errors.Is(e.mark, target) {
		return true
	}
	return errors.Is(e.cause, target)
}

// Hint returns the user-facing hint attached to err, if any.
func Hint(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.hint
	}
	return ""
}

// ReportableDetails returns the structured details attached to err, if any.
func ReportableDetails(err error) map[string]any {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.details
	}
	return nil
}

// Message returns the bare cause message of err, without the hint suffix.
func Message(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.cause.Error()
	}
	return err.Error()
}

// ErrorBuilder assembles an InternalError fluently. The terminal Mark call
// stamps the sentinel class and returns the built error.
type ErrorBuilder struct {
	err *InternalError
}

// NewError starts a builder from a new error message.
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: &InternalError{cause: errors.New(msg)}}
}

// NewErrorf starts a builder from a formatted error message.
func NewErrorf(format string, args ...any) *ErrorBuilder {
	return &ErrorBuilder{err: &InternalError{cause: errors.Newf(format, args...)}}
}

// WithError starts a builder wrapping an existing error.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: &InternalError{cause: err}}
}

// WithHint attaches a human-readable hint for display to the user.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err.hint = hint
	return b
}

// WithHintf attaches a formatted hint.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err.hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured details safe to surface to callers.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	b.err.details = details
	return b
}

// Mark stamps the sentinel class on the error and returns it.
func (b *ErrorBuilder) Mark(mark error) error {
	b.err.mark = mark
	return b.err
}
