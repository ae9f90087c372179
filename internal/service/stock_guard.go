package service

import (
	"github.com/samber/lo"
	"github.com/tillcore/tillcore/internal/domain/invoice"
	"github.com/tillcore/tillcore/internal/domain/product"
	ierr "github.com/tillcore/tillcore/internal/errors"
)

// CheckStock cross-checks a sales line's requested quantity against the
// stock snapshot at submission time. It is a pre-submission guard, not a
// reservation: it never mutates stock, and two concurrent forms can both
// pass against the same snapshot. The persistence layer owns rejecting an
// over-commit at save time.
func CheckStock(li *invoice.LineItem, p *product.Product) error {
	if p == nil {
		return ierr.NewErrorf("product %s not found", lo.FromPtr(li.ProductID)).
			WithHint("Product is not part of the session snapshot").
			Mark(ierr.ErrNotFound)
	}
	if li.Quantity.GreaterThan(p.AvailableStock) {
		return ierr.NewErrorf("only %s available in stock", p.AvailableStock.String()).
			WithHintf("Requested %s of %s but only %s available", li.Quantity.String(), p.Name, p.AvailableStock.String()).
			WithReportableDetails(map[string]any{
				"line_id":         li.ID,
				"product_id":      p.ID,
				"requested":       li.Quantity.String(),
				"available_stock": p.AvailableStock.String(),
			}).
			Mark(ierr.ErrInsufficientStock)
	}
	return nil
}
