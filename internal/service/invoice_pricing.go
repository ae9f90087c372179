package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/tillcore/tillcore/internal/api/dto"
	"github.com/tillcore/tillcore/internal/domain/invoice"
	ierr "github.com/tillcore/tillcore/internal/errors"
	"github.com/tillcore/tillcore/internal/types"
)

// PricingService is the single entry point for mutating an open invoice.
// Every edit runs one deterministic top-to-bottom recompute pass
// (synchronizer → valuator → aggregator → balance); no component calls back
// into an earlier stage within a pass, so recompute cycles are impossible.
type PricingService interface {
	// NewInvoice opens an empty draft invoice for one form session, seeded
	// with the configured default tax percentage.
	NewInvoice(ctx context.Context, invoiceType types.InvoiceType, date time.Time) (*invoice.Invoice, error)

	// AddLine adds a product or free-text row and recomputes the invoice.
	// Like ApplyEdit it reports coercion flags and recompute validation
	// failures through FieldErrors rather than an error.
	AddLine(ctx context.Context, snap *Snapshot, inv *invoice.Invoice, req dto.AddLineItemRequest) (*invoice.LineItem, FieldErrors, error)

	// RemoveLine deletes a row and recomputes the invoice.
	RemoveLine(ctx context.Context, snap *Snapshot, inv *invoice.Invoice, lineID string) error

	// ApplyEdit applies one field edit and recomputes the invoice. The
	// returned FieldErrors carries coercion flags and line validation
	// failures; it blocks submission but never an edit.
	ApplyEdit(ctx context.Context, snap *Snapshot, inv *invoice.Invoice, req dto.FieldEditRequest) (FieldErrors, error)

	// Recalculate runs a full recompute pass over all lines and the
	// invoice-level figures, collecting validation failures.
	Recalculate(ctx context.Context, snap *Snapshot, inv *invoice.Invoice) FieldErrors
}

type pricingService struct {
	ServiceParams
}

// NewPricingService creates a new pricing service
func NewPricingService(params ServiceParams) PricingService {
	return &pricingService{ServiceParams: params}
}

func (s *pricingService) NewInvoice(ctx context.Context, invoiceType types.InvoiceType, date time.Time) (*invoice.Invoice, error) {
	if err := invoiceType.Validate(); err != nil {
		return nil, err
	}

	inv := invoice.New(invoiceType, date)
	// Seed the tax percentage; the amount derives from it on the first
	// recompute because the edit flag starts at none.
	inv.TaxPercent, _ = types.CoerceDecimal(s.Config.Pricing.DefaultTaxPercent)

	s.Logger.Debugw("opened invoice session",
		"invoice_id", inv.ID,
		"type", invoiceType,
		"default_tax_percent", inv.TaxPercent)

	return inv, nil
}

func (s *pricingService) AddLine(ctx context.Context, snap *Snapshot, inv *invoice.Invoice, req dto.AddLineItemRequest) (*invoice.LineItem, FieldErrors, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	fe := NewFieldErrors()
	index := len(inv.Items)

	li := invoice.NewLineItem()
	li.Description = req.Description

	quantity, ok := types.CoerceDecimal(req.Quantity)
	if !ok {
		fe.Addf(lineField(index, dto.FieldQuantity), "invalid number: %q", req.Quantity)
	}
	li.Quantity = quantity

	if inv.Type == types.InvoiceTypePurchase && req.FreeQuantity != "" {
		freeQuantity, ok := types.CoerceDecimal(req.FreeQuantity)
		if !ok {
			fe.Addf(lineField(index, dto.FieldFreeQuantity), "invalid number: %q", req.FreeQuantity)
		}
		li.FreeQuantity = freeQuantity
	}

	if req.ProductID != nil {
		p := snap.Product(*req.ProductID)
		if p == nil {
			return nil, nil, ierr.NewErrorf("product %s not found", *req.ProductID).
				WithHint("Product is not part of the session snapshot").
				Mark(ierr.ErrNotFound)
		}
		li.ProductID = lo.ToPtr(p.ID)
		if li.Description == "" {
			li.Description = p.Name
		}
		li.BuyingCost = p.BuyingCost
		if inv.Type == types.InvoiceTypePurchase {
			li.UnitPrice = p.BuyingCost
		} else {
			li.UnitPrice = p.SellingPrice
		}
	}

	// Explicit price overrides the product's context base price, and is the
	// only way to price a free-text line.
	if req.UnitPrice != nil {
		unitPrice, ok := types.CoerceDecimal(*req.UnitPrice)
		if !ok {
			fe.Addf(lineField(index, dto.FieldUnitPrice), "invalid number: %q", *req.UnitPrice)
		}
		li.UnitPrice = unitPrice
	}

	inv.AddLine(li)
	s.resetInvoiceEditFlags(inv)
	fe.Merge(s.Recalculate(ctx, snap, inv))

	s.Logger.Debugw("added invoice line",
		"invoice_id", inv.ID,
		"line_id", li.ID,
		"product_id", lo.FromPtr(li.ProductID),
		"quantity", li.Quantity,
		"field_errors", len(fe))

	return li, fe, nil
}

func (s *pricingService) RemoveLine(ctx context.Context, snap *Snapshot, inv *invoice.Invoice, lineID string) error {
	if !inv.RemoveLine(lineID) {
		return ierr.NewErrorf("line %s not found on invoice", lineID).
			Mark(ierr.ErrInvalidOperation)
	}
	s.resetInvoiceEditFlags(inv)
	s.Recalculate(ctx, snap, inv)
	return nil
}

func (s *pricingService) ApplyEdit(ctx context.Context, snap *Snapshot, inv *invoice.Invoice, req dto.FieldEditRequest) (FieldErrors, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fe := NewFieldErrors()
	value, ok := types.CoerceDecimal(req.Value)

	switch req.Scope {
	case dto.EditScopeLine:
		// Free quantity only exists on purchase forms.
		if req.Field == dto.FieldFreeQuantity && inv.Type == types.InvoiceTypeSale {
			return nil, ierr.NewError("free quantity applies to purchase invoices only").
				WithHint("Sales lines have no free quantity").
				Mark(ierr.ErrValidation)
		}
		li := inv.Line(req.LineID)
		if li == nil {
			return nil, ierr.NewErrorf("line %s not found on invoice", req.LineID).
				Mark(ierr.ErrInvalidOperation)
		}
		index := lo.IndexOf(lo.Map(inv.Items, func(l *invoice.LineItem, _ int) string { return l.ID }), li.ID)
		if !ok {
			fe.Addf(lineField(index, req.Field), "invalid number: %q", req.Value)
		}
		s.applyLineEdit(inv, li, req.Field, value)

	case dto.EditScopeInvoice:
		if !ok {
			fe.Addf(req.Field, "invalid number: %q", req.Value)
		}
		s.applyInvoiceEdit(inv, req.Field, value)
	}

	fe.Merge(s.Recalculate(ctx, snap, inv))
	return fe, nil
}

// applyLineEdit writes the edited value and maintains the last-edited flags.
// A base change (quantity or price) resets the line's discount flag so the
// stored percentage becomes sticky; any line edit also resets the
// invoice-level flags because the invoice subtotal is their base.
func (s *pricingService) applyLineEdit(inv *invoice.Invoice, li *invoice.LineItem, field string, value decimal.Decimal) {
	switch field {
	case dto.FieldQuantity:
		li.Quantity = value
		li.LastEditedDiscountField = types.EditedFieldNone
	case dto.FieldFreeQuantity:
		li.FreeQuantity = value
		li.LastEditedDiscountField = types.EditedFieldNone
	case dto.FieldUnitPrice:
		li.UnitPrice = value
		li.LastEditedDiscountField = types.EditedFieldNone
	case dto.FieldDiscountAmount:
		li.DiscountAmount = value
		li.LastEditedDiscountField = types.EditedFieldAmount
	case dto.FieldDiscountPercent:
		li.DiscountPercent = value
		li.LastEditedDiscountField = types.EditedFieldPercent
	}
	s.resetInvoiceEditFlags(inv)
}

func (s *pricingService) applyInvoiceEdit(inv *invoice.Invoice, field string, value decimal.Decimal) {
	switch field {
	case dto.FieldDiscountAmount:
		inv.DiscountAmount = value
		inv.LastEditedDiscountField = types.EditedFieldAmount
		inv.LastEditedTaxField = types.EditedFieldNone
	case dto.FieldDiscountPercent:
		inv.DiscountPercent = value
		inv.LastEditedDiscountField = types.EditedFieldPercent
		inv.LastEditedTaxField = types.EditedFieldNone
	case dto.FieldTaxAmount:
		inv.TaxAmount = value
		inv.LastEditedTaxField = types.EditedFieldAmount
	case dto.FieldTaxPercent:
		inv.TaxPercent = value
		inv.LastEditedTaxField = types.EditedFieldPercent
	case dto.FieldPaidAmount:
		inv.PaidAmount = value
	}
}

// resetInvoiceEditFlags marks the invoice-level pairs as not-edited-since-
// base-change, making their percentages sticky across subtotal changes.
func (s *pricingService) resetInvoiceEditFlags(inv *invoice.Invoice) {
	inv.LastEditedDiscountField = types.EditedFieldNone
	inv.LastEditedTaxField = types.EditedFieldNone
}

func (s *pricingService) Recalculate(ctx context.Context, snap *Snapshot, inv *invoice.Invoice) FieldErrors {
	fe := NewFieldErrors()

	// Stage 1+2: reconcile and value every line. Invalid lines are zeroed by
	// the valuator, so they contribute nothing to totals, and flagged here.
	subtotal := decimal.Zero
	lineDiscounts := decimal.Zero
	for i, li := range inv.Items {
		if err := ValueLine(li, inv.Type, inv.Date, snap); err != nil {
			fe.Add(lineField(i, validationField(err)), ierr.Message(err))
			continue
		}
		subtotal = subtotal.Add(li.LineTotal)
		lineDiscounts = lineDiscounts.Add(li.DiscountAmount).Add(li.SpecialDiscount)
	}
	inv.Subtotal = subtotal

	// Stage 3: invoice discount before tax, each pair reconciled against its
	// own base.
	discount := ReconcileDualField(inv.Subtotal, inv.DiscountAmount, inv.DiscountPercent, inv.LastEditedDiscountField)
	inv.DiscountAmount = discount.Amount
	inv.DiscountPercent = discount.Percent

	taxableAmount := types.ClampNonNegative(inv.Subtotal.Sub(inv.DiscountAmount))

	tax := ReconcileDualField(taxableAmount, inv.TaxAmount, inv.TaxPercent, inv.LastEditedTaxField)
	inv.TaxAmount = tax.Amount
	inv.TaxPercent = tax.Percent

	inv.Total = types.ClampNonNegative(taxableAmount.Add(inv.TaxAmount))
	inv.TotalDiscount = inv.DiscountAmount.Add(lineDiscounts)

	// Stage 4: balance.
	inv.Balance = CalculateBalance(inv.PaidAmount, inv.Total)

	s.Logger.Debugw("recalculated invoice",
		"invoice_id", inv.ID,
		"subtotal", inv.Subtotal,
		"discount", inv.DiscountAmount,
		"tax", inv.TaxAmount,
		"total", inv.Total,
		"balance", inv.Balance,
		"field_errors", len(fe))

	return fe
}
