package dto

import (
	ierr "github.com/tillcore/tillcore/internal/errors"
	"github.com/tillcore/tillcore/internal/types"
	"github.com/tillcore/tillcore/internal/validator"
)

// Edit scopes for FieldEditRequest.
const (
	EditScopeLine    = "line"
	EditScopeInvoice = "invoice"
)

// Editable field identifiers. Numeric values arrive as raw strings and go
// through the central coercion utility, never through strconv at call sites.
const (
	FieldQuantity        = "quantity"
	FieldFreeQuantity    = "free_quantity"
	FieldUnitPrice       = "unit_price"
	FieldDiscountAmount  = "discount_amount"
	FieldDiscountPercent = "discount_percent"
	FieldTaxAmount       = "tax_amount"
	FieldTaxPercent      = "tax_percent"
	FieldPaidAmount      = "paid_amount"
)

// AddLineItemRequest adds a product or free-text row to the open invoice.
type AddLineItemRequest struct {
	// ProductID is optional on purchases (free-text lines are allowed) and
	// required on sales; the service enforces the per-context rule.
	ProductID   *string `json:"product_id,omitempty"`
	Description string  `json:"description,omitempty"`

	Quantity     string `json:"quantity" validate:"required"`
	FreeQuantity string `json:"free_quantity,omitempty"`

	// UnitPrice overrides the product's context base price when set.
	UnitPrice *string `json:"unit_price,omitempty"`
}

func (r *AddLineItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.ProductID == nil && r.Description == "" {
		return ierr.NewError("item required").
			WithHint("Provide a product reference or a description").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// FieldEditRequest is one user keystroke-commit against a single field.
// Every edit triggers exactly one top-to-bottom recompute pass.
type FieldEditRequest struct {
	Scope  string `json:"scope" validate:"required,oneof=line invoice"`
	LineID string `json:"line_id,omitempty" validate:"required_if=Scope line"`
	Field  string `json:"field" validate:"required,oneof=quantity free_quantity unit_price discount_amount discount_percent tax_amount tax_percent paid_amount"`
	Value  string `json:"value"`
}

func (r *FieldEditRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Scope == EditScopeInvoice {
		switch r.Field {
		case FieldDiscountAmount, FieldDiscountPercent, FieldTaxAmount, FieldTaxPercent, FieldPaidAmount:
		default:
			return ierr.NewErrorf("field %s is not editable at invoice scope", r.Field).
				Mark(ierr.ErrValidation)
		}
	}
	if r.Scope == EditScopeLine {
		switch r.Field {
		case FieldQuantity, FieldFreeQuantity, FieldUnitPrice, FieldDiscountAmount, FieldDiscountPercent:
		default:
			return ierr.NewErrorf("field %s is not editable at line scope", r.Field).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// SubmitInvoiceRequest finalizes the form and requests the persistence payload.
type SubmitInvoiceRequest struct {
	PaymentMethod types.PaymentMethod `json:"payment_method" validate:"required"`
	PaidAmount    string              `json:"paid_amount"`
}

func (r *SubmitInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.PaymentMethod.Validate()
}
