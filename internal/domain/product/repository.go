package product

import "context"

// Repository is the read port for catalog reference data.
type Repository interface {
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}
