package validator

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	ierr "github.com/tillcore/tillcore/internal/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// NewValidator returns the shared validator instance.
func NewValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest validates a request struct against its validate tags and
// converts failures into a single validation error carrying per-field details.
func ValidateRequest(req interface{}) error {
	err := NewValidator().Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ierr.WithError(err).
			WithHint("Request validation failed").
			Mark(ierr.ErrValidation)
	}

	details := make(map[string]any, len(validationErrors))
	for _, fe := range validationErrors {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}

	return ierr.NewError("request validation failed").
		WithHint("One or more request fields are invalid").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
