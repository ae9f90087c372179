package testutil

import (
	"context"

	"github.com/tillcore/tillcore/internal/domain/scheme"
)

// InMemorySchemeStore implements scheme.Repository. List order is insertion
// order, matching the first-match-wins contract.
type InMemorySchemeStore struct {
	*InMemoryStore[*scheme.DiscountScheme]
}

// NewInMemorySchemeStore creates a new in-memory scheme store
func NewInMemorySchemeStore() *InMemorySchemeStore {
	return &InMemorySchemeStore{
		InMemoryStore: NewInMemoryStore[*scheme.DiscountScheme](),
	}
}

func copyScheme(sch *scheme.DiscountScheme) *scheme.DiscountScheme {
	if sch == nil {
		return nil
	}
	copied := *sch
	return &copied
}

func (s *InMemorySchemeStore) Add(ctx context.Context, sch *scheme.DiscountScheme) error {
	return s.InMemoryStore.Create(ctx, sch.ID, copyScheme(sch))
}

func (s *InMemorySchemeStore) Get(ctx context.Context, id string) (*scheme.DiscountScheme, error) {
	sch, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyScheme(sch), nil
}

func (s *InMemorySchemeStore) List(ctx context.Context) ([]*scheme.DiscountScheme, error) {
	schemes := s.InMemoryStore.List(ctx)
	copied := make([]*scheme.DiscountScheme, len(schemes))
	for i, sch := range schemes {
		copied[i] = copyScheme(sch)
	}
	return copied, nil
}
