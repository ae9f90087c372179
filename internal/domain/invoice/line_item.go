package invoice

import (
	"github.com/shopspring/decimal"
	ierr "github.com/tillcore/tillcore/internal/errors"
	"github.com/tillcore/tillcore/internal/types"
)

// LineItem is one product/quantity/price row within an invoice. The engine
// owns and mutates it on every edit; computed fields are overwritten by each
// recompute pass and must not be edited directly.
type LineItem struct {
	ID string `json:"id"`

	// ProductID is nil for free-text purchase lines.
	ProductID   *string `json:"product_id,omitempty"`
	Description string  `json:"description"`

	Quantity decimal.Decimal `json:"quantity"`

	// FreeQuantity only applies to purchases: free units are costed into the
	// line subtotal but carry no scheme discount.
	FreeQuantity decimal.Decimal `json:"free_quantity"`

	// UnitPrice is the context-dependent base price: selling price on sales,
	// buying cost on purchases.
	UnitPrice  decimal.Decimal `json:"unit_price"`
	BuyingCost decimal.Decimal `json:"buying_cost"`

	// Manual discount pair, reconciled against LineSubtotal.
	DiscountAmount          decimal.Decimal   `json:"discount_amount"`
	DiscountPercent         decimal.Decimal   `json:"discount_percent"`
	LastEditedDiscountField types.EditedField `json:"last_edited_discount_field"`

	// SpecialDiscount is the scheme contribution, derived and read-only to
	// the user. AppliedSchemeID records which scheme produced it.
	SpecialDiscount decimal.Decimal `json:"special_discount"`
	AppliedSchemeID *string         `json:"applied_scheme_id,omitempty"`

	// Computed by the line valuator.
	LineSubtotal    decimal.Decimal `json:"line_subtotal"`
	LineTotal       decimal.Decimal `json:"line_total"`
	TotalBuyingCost decimal.Decimal `json:"total_buying_cost"`
}

// NewLineItem creates an empty line with a fresh ID and no edit history.
func NewLineItem() *LineItem {
	return &LineItem{
		ID:                      types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM),
		LastEditedDiscountField: types.EditedFieldNone,
	}
}

// Validate checks the user-controlled fields of the line. Failures are
// recoverable: the line is excluded from totals and blocks submission, but
// never aborts a recompute pass.
func (li *LineItem) Validate(invoiceType types.InvoiceType) error {
	if li.ProductID == nil && li.Description == "" {
		return ierr.NewError("item required").
			WithHint("Select a product or enter a description").
			WithReportableDetails(map[string]any{
				"field":   "item",
				"line_id": li.ID,
			}).
			Mark(ierr.ErrValidation)
	}
	if invoiceType == types.InvoiceTypeSale && li.ProductID == nil {
		return ierr.NewError("item required").
			WithHint("Sales lines must reference a product").
			WithReportableDetails(map[string]any{
				"field":   "item",
				"line_id": li.ID,
			}).
			Mark(ierr.ErrValidation)
	}
	if !li.Quantity.IsPositive() {
		return ierr.NewError("quantity must be positive").
			WithReportableDetails(map[string]any{
				"field":    "quantity",
				"line_id":  li.ID,
				"quantity": li.Quantity.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if li.FreeQuantity.IsNegative() {
		return ierr.NewError("free quantity must be non-negative").
			WithReportableDetails(map[string]any{
				"field":         "free_quantity",
				"line_id":       li.ID,
				"free_quantity": li.FreeQuantity.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
