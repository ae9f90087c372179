package scheme

import "context"

// Repository is the read port for discount scheme reference data. List
// order is significant: it is the first-match-wins matching order.
type Repository interface {
	Get(ctx context.Context, id string) (*DiscountScheme, error)
	List(ctx context.Context) ([]*DiscountScheme, error)
}
