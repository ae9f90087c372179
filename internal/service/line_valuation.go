package service

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/tillcore/tillcore/internal/domain/invoice"
	"github.com/tillcore/tillcore/internal/domain/scheme"
	"github.com/tillcore/tillcore/internal/types"
)

// ValueLine recomputes a single line in place: subtotal, reconciled manual
// discount, scheme discount, buying-cost total and net total. It is a pure
// function of the line's user-controlled fields, the invoice context and the
// reference-data snapshot; calling it twice with identical inputs yields
// identical output.
//
// A validation error leaves the computed fields zeroed and is returned for
// the caller to collect; it never aborts the recompute pass.
func ValueLine(li *invoice.LineItem, invoiceType types.InvoiceType, invoiceDate time.Time, snap *Snapshot) error {
	if err := li.Validate(invoiceType); err != nil {
		li.LineSubtotal = decimal.Zero
		li.LineTotal = decimal.Zero
		li.TotalBuyingCost = decimal.Zero
		li.SpecialDiscount = decimal.Zero
		li.AppliedSchemeID = nil
		return err
	}

	// Purchases cost free items into the line; sales have no free quantity.
	costedQuantity := li.Quantity
	if invoiceType == types.InvoiceTypePurchase {
		costedQuantity = costedQuantity.Add(types.ClampNonNegative(li.FreeQuantity))
	}
	li.LineSubtotal = costedQuantity.Mul(types.ClampNonNegative(li.UnitPrice))

	reconciled := ReconcileDualField(li.LineSubtotal, li.DiscountAmount, li.DiscountPercent, li.LastEditedDiscountField)
	li.DiscountAmount = reconciled.Amount
	li.DiscountPercent = reconciled.Percent

	li.SpecialDiscount = decimal.Zero
	li.AppliedSchemeID = nil
	if invoiceType == types.InvoiceTypeSale && li.ProductID != nil {
		if matched := matchScheme(li, invoiceDate, snap); matched != nil {
			li.SpecialDiscount = matched.DiscountFor(li.LineSubtotal, li.Quantity)
			li.AppliedSchemeID = lo.ToPtr(matched.ID)
		}
	}

	li.LineTotal = types.ClampNonNegative(
		li.LineSubtotal.Sub(li.DiscountAmount).Sub(li.SpecialDiscount))

	// Informational margin figure; not part of the invoice total.
	li.TotalBuyingCost = li.Quantity.Mul(types.ClampNonNegative(li.BuyingCost))

	return nil
}

// matchScheme resolves the line's product and category and delegates to the
// first-match-wins scheme selection.
func matchScheme(li *invoice.LineItem, invoiceDate time.Time, snap *Snapshot) *scheme.DiscountScheme {
	p := snap.Product(lo.FromPtr(li.ProductID))
	if p == nil {
		return nil
	}
	return scheme.Match(snap.Schemes(), p, snap.CategoryName(p.CategoryID), invoiceDate)
}
