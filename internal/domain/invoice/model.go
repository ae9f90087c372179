package invoice

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillcore/tillcore/internal/types"
)

// Invoice is the engine-owned aggregate for one open entry form. It is
// created empty, mutated continuously while the form is open, and serialized
// into a SubmitPayload at the persistence boundary. The engine holds no
// durable state between sessions.
type Invoice struct {
	ID   string            `json:"id"`
	Type types.InvoiceType `json:"type"`
	Date time.Time         `json:"date"`

	// CustomerID / SupplierID are pass-through references, never computed over.
	CustomerID *string `json:"customer_id,omitempty"`
	SupplierID *string `json:"supplier_id,omitempty"`

	Items []*LineItem `json:"items"`

	// Invoice-level manual discount pair, reconciled against Subtotal.
	DiscountAmount          decimal.Decimal   `json:"discount_amount"`
	DiscountPercent         decimal.Decimal   `json:"discount_percent"`
	LastEditedDiscountField types.EditedField `json:"last_edited_discount_field"`

	// Tax pair, reconciled against the taxable amount (subtotal − discount).
	TaxAmount          decimal.Decimal   `json:"tax_amount"`
	TaxPercent         decimal.Decimal   `json:"tax_percent"`
	LastEditedTaxField types.EditedField `json:"last_edited_tax_field"`

	PaidAmount    decimal.Decimal     `json:"paid_amount"`
	PaymentMethod types.PaymentMethod `json:"payment_method"`
	Status        types.InvoiceStatus `json:"status"`

	// Computed by the aggregator on every recompute pass.
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	Total         decimal.Decimal `json:"total"`
	Balance       decimal.Decimal `json:"balance"`
}

// New creates an empty draft invoice for one form session.
func New(invoiceType types.InvoiceType, date time.Time) *Invoice {
	return &Invoice{
		ID:                      types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		Type:                    invoiceType,
		Date:                    date,
		Items:                   make([]*LineItem, 0),
		LastEditedDiscountField: types.EditedFieldNone,
		LastEditedTaxField:      types.EditedFieldNone,
		Status:                  types.InvoiceStatusDraft,
	}
}

// Line returns the line with the given ID, or nil.
func (inv *Invoice) Line(lineID string) *LineItem {
	for _, li := range inv.Items {
		if li.ID == lineID {
			return li
		}
	}
	return nil
}

// AddLine appends a line to the invoice.
func (inv *Invoice) AddLine(li *LineItem) {
	inv.Items = append(inv.Items, li)
}

// RemoveLine deletes a line by ID, preserving order of the rest. It reports
// whether a line was removed.
func (inv *Invoice) RemoveLine(lineID string) bool {
	for i, li := range inv.Items {
		if li.ID == lineID {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}
