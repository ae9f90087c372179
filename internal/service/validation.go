package service

import (
	"fmt"
	"sort"
	"strings"

	ierr "github.com/tillcore/tillcore/internal/errors"
)

// FieldErrors collects recoverable validation failures keyed by field path,
// e.g. "items[2].quantity" or "paid_amount". Failures are accumulated, not
// thrown on first hit; submission is blocked until the map is empty.
type FieldErrors map[string]string

func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Add records a message for a field, keeping the first message per field.
func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

// Addf records a formatted message for a field.
func (fe FieldErrors) Addf(field, format string, args ...any) {
	fe.Add(field, fmt.Sprintf(format, args...))
}

// Merge copies all entries from other into fe.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, message := range other {
		fe.Add(field, message)
	}
}

// IsEmpty reports whether no validation failures were collected.
func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Fields returns the failing field paths in sorted order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (fe FieldErrors) String() string {
	parts := make([]string, 0, len(fe))
	for _, field := range fe.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe[field]))
	}
	return strings.Join(parts, "; ")
}

// AsError converts the collection into a single validation error carrying
// the field map as reportable details, or nil when empty.
func (fe FieldErrors) AsError() error {
	if fe.IsEmpty() {
		return nil
	}
	details := make(map[string]any, len(fe))
	for field, message := range fe {
		details[field] = message
	}
	return ierr.NewError("invoice validation failed").
		WithHint("Fix the reported fields before submitting").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}

// FieldErrorsFromError recovers the field map from an error produced by
// AsError. It returns nil when err carries no field details.
func FieldErrorsFromError(err error) FieldErrors {
	details := ierr.ReportableDetails(err)
	if details == nil {
		return nil
	}
	fe := NewFieldErrors()
	for field, message := range details {
		if msg, ok := message.(string); ok {
			fe.Add(field, msg)
		}
	}
	return fe
}

// lineField builds a field path for the i-th line, e.g. "items[0].quantity".
func lineField(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}

// validationField reads the failing field name attached to a validation
// error's reportable details, defaulting to "item".
func validationField(err error) string {
	if details := ierr.ReportableDetails(err); details != nil {
		if field, ok := details["field"].(string); ok && field != "" {
			return field
		}
	}
	return "item"
}
