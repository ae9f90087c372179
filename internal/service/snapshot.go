package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/tillcore/tillcore/internal/domain/product"
	"github.com/tillcore/tillcore/internal/domain/scheme"
	ierr "github.com/tillcore/tillcore/internal/errors"
)

// Snapshot is the immutable reference-data view for one form session:
// products, categories and discount schemes, loaded once before the engine
// is exercised. Every pricing function takes it as an explicit parameter;
// there is no ambient/global reference data.
type Snapshot struct {
	products   map[string]*product.Product
	categories map[string]*product.Category
	schemes    []*scheme.DiscountScheme
}

// NewSnapshot reads the full reference lists through the repository ports.
// Scheme order is preserved: it is the matching order.
func NewSnapshot(ctx context.Context, params ServiceParams) (*Snapshot, error) {
	products, err := params.ProductRepo.List(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load product reference data").
			Mark(ierr.ErrInternal)
	}

	categories, err := params.ProductRepo.ListCategories(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load category reference data").
			Mark(ierr.ErrInternal)
	}

	listed, err := params.SchemeRepo.List(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load discount scheme reference data").
			Mark(ierr.ErrInternal)
	}

	// Malformed schemes are excluded rather than failing the session; the
	// rest of the reference data is still usable.
	schemes := make([]*scheme.DiscountScheme, 0, len(listed))
	for _, sch := range listed {
		if err := sch.Validate(); err != nil {
			params.Logger.Warnw("skipping invalid discount scheme",
				"scheme_id", sch.ID,
				"error", ierr.Message(err),
				"hint", ierr.Hint(err))
			continue
		}
		schemes = append(schemes, sch)
	}

	params.Logger.Debugw("built reference data snapshot",
		"product_count", len(products),
		"category_count", len(categories),
		"scheme_count", len(schemes))

	return &Snapshot{
		products:   lo.KeyBy(products, func(p *product.Product) string { return p.ID }),
		categories: lo.KeyBy(categories, func(c *product.Category) string { return c.ID }),
		schemes:    schemes,
	}, nil
}

// NewSnapshotFromData builds a snapshot directly from in-memory lists.
func NewSnapshotFromData(products []*product.Product, categories []*product.Category, schemes []*scheme.DiscountScheme) *Snapshot {
	return &Snapshot{
		products:   lo.KeyBy(products, func(p *product.Product) string { return p.ID }),
		categories: lo.KeyBy(categories, func(c *product.Category) string { return c.ID }),
		schemes:    schemes,
	}
}

// Product returns the product with the given ID, or nil.
func (s *Snapshot) Product(id string) *product.Product {
	return s.products[id]
}

// CategoryName resolves a category ID to its name, or "".
func (s *Snapshot) CategoryName(id string) string {
	if c, ok := s.categories[id]; ok {
		return c.Name
	}
	return ""
}

// Schemes returns the scheme list in matching order.
func (s *Snapshot) Schemes() []*scheme.DiscountScheme {
	return s.schemes
}
