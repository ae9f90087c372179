package scheme

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillcore/tillcore/internal/domain/product"
	ierr "github.com/tillcore/tillcore/internal/errors"
	"github.com/tillcore/tillcore/internal/types"
)

// DiscountScheme is an automatic discount rule matched against sales lines.
// It targets a product or a category by name and is bounded by an optional
// date window; both bounds are inclusive and a missing bound is unbounded.
type DiscountScheme struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`

	AppliesTo types.SchemeScope `json:"applies_to"`
	Target    string            `json:"target"`

	DiscountType types.SchemeDiscountType `json:"discount_type"`
	Value        decimal.Decimal          `json:"value"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (s *DiscountScheme) Validate() error {
	if err := s.AppliesTo.Validate(); err != nil {
		return err
	}
	if err := s.DiscountType.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.Target) == "" {
		return ierr.NewError("scheme target is required").
			WithHint("Set the product or category name the scheme matches").
			WithReportableDetails(map[string]any{"scheme_id": s.ID}).
			Mark(ierr.ErrValidation)
	}
	if s.Value.IsNegative() {
		return ierr.NewErrorf("scheme value must be non-negative: %s", s.Value.String()).
			WithHint("Scheme value must be zero or positive").
			WithReportableDetails(map[string]any{"scheme_id": s.ID}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsActiveOn reports whether the scheme applies on the given date. Bounds
// are inclusive; a nil bound leaves that side open.
func (s *DiscountScheme) IsActiveOn(date time.Time) bool {
	if !s.Active {
		return false
	}
	if s.StartDate != nil && date.Before(*s.StartDate) {
		return false
	}
	if s.EndDate != nil && date.After(*s.EndDate) {
		return false
	}
	return true
}

// MatchesProduct reports whether the scheme's target names the product or
// its category. Matching is case-insensitive on trimmed names.
func (s *DiscountScheme) MatchesProduct(p *product.Product, categoryName string) bool {
	target := strings.TrimSpace(s.Target)
	switch s.AppliesTo {
	case types.SchemeScopeProduct:
		return strings.EqualFold(target, strings.TrimSpace(p.Name))
	case types.SchemeScopeCategory:
		return strings.EqualFold(target, strings.TrimSpace(categoryName))
	}
	return false
}

// DiscountFor converts the scheme's value into a discount amount for one
// line, floored at zero.
func (s *DiscountScheme) DiscountFor(lineSubtotal, quantity decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch s.DiscountType {
	case types.SchemeDiscountPercentage:
		discount = lineSubtotal.Mul(s.Value).Div(decimal.NewFromInt(100))
	case types.SchemeDiscountFixedPerUnit:
		discount = s.Value.Mul(quantity)
	}
	return types.ClampNonNegative(discount)
}

// Match returns the first scheme in input order that is active on the date
// and matches the product, or nil. Input order decides ties; this mirrors
// how schemes are listed, it is not a documented ranking.
func Match(schemes []*DiscountScheme, p *product.Product, categoryName string, date time.Time) *DiscountScheme {
	for _, s := range schemes {
		if s.IsActiveOn(date) && s.MatchesProduct(p, categoryName) {
			return s
		}
	}
	return nil
}
