package testutil

import (
	"context"

	"github.com/tillcore/tillcore/internal/domain/product"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	products   *InMemoryStore[*product.Product]
	categories *InMemoryStore[*product.Category]
}

// NewInMemoryProductStore creates a new in-memory product store
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		products:   NewInMemoryStore[*product.Product](),
		categories: NewInMemoryStore[*product.Category](),
	}
}

func copyProduct(p *product.Product) *product.Product {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

func (s *InMemoryProductStore) AddProduct(ctx context.Context, p *product.Product) error {
	return s.products.Create(ctx, p.ID, copyProduct(p))
}

func (s *InMemoryProductStore) AddCategory(ctx context.Context, c *product.Category) error {
	copied := *c
	return s.categories.Create(ctx, c.ID, &copied)
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyProduct(p), nil
}

func (s *InMemoryProductStore) List(ctx context.Context) ([]*product.Product, error) {
	products := s.products.List(ctx)
	copied := make([]*product.Product, len(products))
	for i, p := range products {
		copied[i] = copyProduct(p)
	}
	return copied, nil
}

func (s *InMemoryProductStore) ListCategories(ctx context.Context) ([]*product.Category, error) {
	categories := s.categories.List(ctx)
	copied := make([]*product.Category, len(categories))
	for i, c := range categories {
		cc := *c
		copied[i] = &cc
	}
	return copied, nil
}

// Clear removes all products and categories
func (s *InMemoryProductStore) Clear() {
	s.products.Clear()
	s.categories.Clear()
}
