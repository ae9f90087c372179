package types

import (
	ierr "github.com/tillcore/tillcore/internal/errors"
)

// InvoiceType distinguishes the two entry-form contexts. Sales lines are
// priced from the selling price, never carry free quantity, and are subject
// to scheme discounts and the stock guard. Purchase lines are priced from
// the buying cost, may include free quantity in the costed amount, and may
// be free-text (no product reference).
type InvoiceType string

const (
	InvoiceTypeSale     InvoiceType = "sale"
	InvoiceTypePurchase InvoiceType = "purchase"
)

func (t InvoiceType) Validate() error {
	switch t {
	case InvoiceTypeSale, InvoiceTypePurchase:
		return nil
	}
	return ierr.NewErrorf("invalid invoice type: %s", t).
		WithHint("Invoice type must be sale or purchase").
		Mark(ierr.ErrValidation)
}

// InvoiceStatus tracks the lifecycle of the in-memory invoice aggregate.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSubmitted InvoiceStatus = "submitted"
)

// PaymentMethod is passed through to the persistence payload unmodified.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodMobile PaymentMethod = "mobile"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodCredit, PaymentMethodMobile:
		return nil
	}
	return ierr.NewErrorf("invalid payment method: %s", m).
		WithHint("Payment method must be one of cash, card, credit, mobile").
		Mark(ierr.ErrValidation)
}

// EditedField records which side of an (amount, percent) pair the user typed
// into most recently. It is the mechanism that breaks reconciliation cycles:
// the edited side wins, the other side is derived. EditedFieldNone means no
// edit has happened since the base last changed, in which case the stored
// percentage is treated as sticky and the amount is re-derived from it.
type EditedField string

const (
	EditedFieldNone    EditedField = "none"
	EditedFieldAmount  EditedField = "amount"
	EditedFieldPercent EditedField = "percent"
)
