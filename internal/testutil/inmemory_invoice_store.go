package testutil

import (
	"context"

	"github.com/tillcore/tillcore/internal/domain/invoice"
)

// InMemoryInvoiceStore implements invoice.Repository for tests exercising
// the caller side of the persistence boundary.
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.SubmitPayload]
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.SubmitPayload](),
	}
}

func (s *InMemoryInvoiceStore) Save(ctx context.Context, payload *invoice.SubmitPayload) error {
	return s.InMemoryStore.Create(ctx, payload.InvoiceID, payload)
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, invoiceID string) (*invoice.SubmitPayload, error) {
	return s.InMemoryStore.Get(ctx, invoiceID)
}
