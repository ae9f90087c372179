package types

import (
	ierr "github.com/tillcore/tillcore/internal/errors"
)

// SchemeScope says what a discount scheme's target string is matched against.
type SchemeScope string

const (
	SchemeScopeProduct  SchemeScope = "product"
	SchemeScopeCategory SchemeScope = "category"
)

func (s SchemeScope) Validate() error {
	switch s {
	case SchemeScopeProduct, SchemeScopeCategory:
		return nil
	}
	return ierr.NewErrorf("invalid scheme scope: %s", s).
		WithHint("Scheme scope must be product or category").
		Mark(ierr.ErrValidation)
}

// SchemeDiscountType is how a matched scheme's value is turned into money.
type SchemeDiscountType string

const (
	// SchemeDiscountPercentage discounts value% of the line subtotal.
	SchemeDiscountPercentage SchemeDiscountType = "percentage"

	// SchemeDiscountFixedPerUnit discounts value * quantity.
	SchemeDiscountFixedPerUnit SchemeDiscountType = "fixed_per_unit"
)

func (t SchemeDiscountType) Validate() error {
	switch t {
	case SchemeDiscountPercentage, SchemeDiscountFixedPerUnit:
		return nil
	}
	return ierr.NewErrorf("invalid scheme discount type: %s", t).
		WithHint("Scheme discount type must be percentage or fixed_per_unit").
		Mark(ierr.ErrValidation)
}
