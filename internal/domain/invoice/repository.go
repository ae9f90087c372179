package invoice

import "context"

// Repository is the persistence boundary port. The engine never calls it:
// it produces a SubmitPayload and leaves invocation to the caller, which
// also owns retry and network-error handling. Stock deduction happens on
// the implementation side of this port, not in the engine.
type Repository interface {
	// Save persists a submitted invoice payload
	Save(ctx context.Context, payload *SubmitPayload) error

	// Get retrieves a previously saved payload by invoice ID
	Get(ctx context.Context, invoiceID string) (*SubmitPayload, error)
}
