package invoice

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/tillcore/tillcore/internal/types"
)

// SubmitPayload is the normalized invoice handed to the persistence boundary
// on submit. All monetary amounts are rounded to currency precision and
// percentages to display precision here, and only here; the live aggregate
// keeps full precision so repeated edits never compound rounding error.
type SubmitPayload struct {
	InvoiceID  string            `json:"invoice_id"`
	Type       types.InvoiceType `json:"type"`
	Date       time.Time         `json:"date"`
	CustomerID *string           `json:"customer_id,omitempty"`
	SupplierID *string           `json:"supplier_id,omitempty"`

	Lines []SubmitLine `json:"lines"`

	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TotalDiscount   decimal.Decimal `json:"total_discount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	Total           decimal.Decimal `json:"total"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Balance         decimal.Decimal `json:"balance"`

	PaymentMethod types.PaymentMethod `json:"payment_method"`
	Status        types.InvoiceStatus `json:"status"`
	Currency      string              `json:"currency"`
}

// SubmitLine is one reconciled line item in the payload.
type SubmitLine struct {
	LineID          string          `json:"line_id"`
	ProductID       *string         `json:"product_id,omitempty"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	FreeQuantity    decimal.Decimal `json:"free_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	SpecialDiscount decimal.Decimal `json:"special_discount"`
	AppliedSchemeID *string         `json:"applied_scheme_id,omitempty"`
	LineTotal       decimal.Decimal `json:"line_total"`
	TotalBuyingCost decimal.Decimal `json:"total_buying_cost"`
}

// BuildSubmitPayload serializes a fully recomputed invoice for persistence.
func BuildSubmitPayload(inv *Invoice, currency string) *SubmitPayload {
	round := func(d decimal.Decimal) decimal.Decimal {
		return types.RoundToCurrencyPrecision(d, currency)
	}

	lines := lo.Map(inv.Items, func(li *LineItem, _ int) SubmitLine {
		return SubmitLine{
			LineID:          li.ID,
			ProductID:       li.ProductID,
			Description:     li.Description,
			Quantity:        li.Quantity,
			FreeQuantity:    li.FreeQuantity,
			UnitPrice:       round(li.UnitPrice),
			DiscountAmount:  round(li.DiscountAmount),
			DiscountPercent: types.RoundPercent(li.DiscountPercent),
			SpecialDiscount: round(li.SpecialDiscount),
			AppliedSchemeID: li.AppliedSchemeID,
			LineTotal:       round(li.LineTotal),
			TotalBuyingCost: round(li.TotalBuyingCost),
		}
	})

	return &SubmitPayload{
		InvoiceID:       inv.ID,
		Type:            inv.Type,
		Date:            inv.Date,
		CustomerID:      inv.CustomerID,
		SupplierID:      inv.SupplierID,
		Lines:           lines,
		Subtotal:        round(inv.Subtotal),
		DiscountAmount:  round(inv.DiscountAmount),
		DiscountPercent: types.RoundPercent(inv.DiscountPercent),
		TotalDiscount:   round(inv.TotalDiscount),
		TaxAmount:       round(inv.TaxAmount),
		TaxPercent:      types.RoundPercent(inv.TaxPercent),
		Total:           round(inv.Total),
		PaidAmount:      round(inv.PaidAmount),
		Balance:         round(inv.Balance),
		PaymentMethod:   inv.PaymentMethod,
		Status:          types.InvoiceStatusSubmitted,
		Currency:        currency,
	}
}
