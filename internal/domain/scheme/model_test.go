package scheme

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tillcore/tillcore/internal/domain/product"
	"github.com/tillcore/tillcore/internal/types"
)

var (
	rice = &product.Product{
		ID:         "prod_rice",
		Name:       "Rice 5kg",
		CategoryID: "cat_groceries",
	}
	groceries = "Groceries"
)

func TestDiscountScheme_IsActiveOn(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun15 := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		scheme   DiscountScheme
		date     time.Time
		expected bool
	}{
		{
			name:     "Inside_Window",
			scheme:   DiscountScheme{Active: true, StartDate: lo.ToPtr(jan1), EndDate: lo.ToPtr(dec31)},
			date:     jun15,
			expected: true,
		},
		{
			name:     "Start_Bound_Inclusive",
			scheme:   DiscountScheme{Active: true, StartDate: lo.ToPtr(jan1), EndDate: lo.ToPtr(dec31)},
			date:     jan1,
			expected: true,
		},
		{
			name:     "End_Bound_Inclusive",
			scheme:   DiscountScheme{Active: true, StartDate: lo.ToPtr(jan1), EndDate: lo.ToPtr(dec31)},
			date:     dec31,
			expected: true,
		},
		{
			name:     "Expired",
			scheme:   DiscountScheme{Active: true, EndDate: lo.ToPtr(jan1)},
			date:     jun15,
			expected: false,
		},
		{
			name:     "Not_Yet_Started",
			scheme:   DiscountScheme{Active: true, StartDate: lo.ToPtr(dec31)},
			date:     jun15,
			expected: false,
		},
		{
			name:     "No_Bounds_Always_Active",
			scheme:   DiscountScheme{Active: true},
			date:     jun15,
			expected: true,
		},
		{
			name:     "Inactive_Flag_Wins",
			scheme:   DiscountScheme{Active: false},
			date:     jun15,
			expected: false,
		},
		{
			name:     "Open_End",
			scheme:   DiscountScheme{Active: true, StartDate: lo.ToPtr(jan1)},
			date:     jun15,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scheme.IsActiveOn(tt.date))
		})
	}
}

func TestDiscountScheme_MatchesProduct(t *testing.T) {
	tests := []struct {
		name     string
		scheme   DiscountScheme
		expected bool
	}{
		{
			name:     "Product_Scope_Exact",
			scheme:   DiscountScheme{AppliesTo: types.SchemeScopeProduct, Target: "Rice 5kg"},
			expected: true,
		},
		{
			name:     "Product_Scope_Case_Insensitive",
			scheme:   DiscountScheme{AppliesTo: types.SchemeScopeProduct, Target: "rice 5KG"},
			expected: true,
		},
		{
			name:     "Product_Scope_Trimmed",
			scheme:   DiscountScheme{AppliesTo: types.SchemeScopeProduct, Target: "  Rice 5kg  "},
			expected: true,
		},
		{
			name:     "Category_Scope_Case_Insensitive",
			scheme:   DiscountScheme{AppliesTo: types.SchemeScopeCategory, Target: " groceries "},
			expected: true,
		},
		{
			name:     "Wrong_Target",
			scheme:   DiscountScheme{AppliesTo: types.SchemeScopeProduct, Target: "Sugar 1kg"},
			expected: false,
		},
		{
			name:     "Category_Target_Does_Not_Match_Product_Name",
			scheme:   DiscountScheme{AppliesTo: types.SchemeScopeCategory, Target: "Rice 5kg"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scheme.MatchesProduct(rice, groceries))
		})
	}
}

func TestDiscountScheme_DiscountFor(t *testing.T) {
	tests := []struct {
		name         string
		scheme       DiscountScheme
		lineSubtotal string
		quantity     string
		expected     string
		description  string
	}{
		{
			name:         "Percentage",
			scheme:       DiscountScheme{DiscountType: types.SchemeDiscountPercentage, Value: decimal.NewFromInt(5)},
			lineSubtotal: "2000",
			quantity:     "4",
			expected:     "100",
			description:  "5% of 2000 = 100",
		},
		{
			name:         "Fixed_Per_Unit",
			scheme:       DiscountScheme{DiscountType: types.SchemeDiscountFixedPerUnit, Value: decimal.NewFromInt(15)},
			lineSubtotal: "2000",
			quantity:     "4",
			expected:     "60",
			description:  "15 per unit * 4 = 60",
		},
		{
			name:         "Zero_Value",
			scheme:       DiscountScheme{DiscountType: types.SchemeDiscountPercentage, Value: decimal.Zero},
			lineSubtotal: "2000",
			quantity:     "4",
			expected:     "0",
			description:  "zero value gives zero discount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount := tt.scheme.DiscountFor(
				decimal.RequireFromString(tt.lineSubtotal),
				decimal.RequireFromString(tt.quantity))
			assert.True(t, discount.Equal(decimal.RequireFromString(tt.expected)),
				"%s: got %s", tt.description, discount.String())
		})
	}
}

// TestMatch_FirstMatchWins documents the selection rule when multiple active
// schemes match the same line: input order decides, nothing else.
func TestMatch_FirstMatchWins(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	first := &DiscountScheme{
		ID: "sch_first", Active: true,
		AppliesTo: types.SchemeScopeProduct, Target: "Rice 5kg",
		DiscountType: types.SchemeDiscountPercentage, Value: decimal.NewFromInt(5),
	}
	second := &DiscountScheme{
		ID: "sch_second", Active: true,
		AppliesTo: types.SchemeScopeCategory, Target: "Groceries",
		DiscountType: types.SchemeDiscountPercentage, Value: decimal.NewFromInt(10),
	}

	matched := Match([]*DiscountScheme{first, second}, rice, groceries, date)
	assert.NotNil(t, matched)
	assert.Equal(t, "sch_first", matched.ID)

	// Reversed input order flips the winner.
	matched = Match([]*DiscountScheme{second, first}, rice, groceries, date)
	assert.NotNil(t, matched)
	assert.Equal(t, "sch_second", matched.ID)
}

func TestMatch_SkipsInactiveAndOutOfWindow(t *testing.T) {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	expired := &DiscountScheme{
		ID: "sch_expired", Active: true,
		AppliesTo: types.SchemeScopeProduct, Target: "Rice 5kg",
		EndDate: lo.ToPtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	inactive := &DiscountScheme{
		ID: "sch_inactive", Active: false,
		AppliesTo: types.SchemeScopeProduct, Target: "Rice 5kg",
	}
	unbounded := &DiscountScheme{
		ID: "sch_unbounded", Active: true,
		AppliesTo: types.SchemeScopeProduct, Target: "Rice 5kg",
	}

	matched := Match([]*DiscountScheme{expired, inactive, unbounded}, rice, groceries, date)
	assert.NotNil(t, matched)
	assert.Equal(t, "sch_unbounded", matched.ID)

	matched = Match([]*DiscountScheme{expired, inactive}, rice, groceries, date)
	assert.Nil(t, matched)
}

func TestDiscountScheme_Validate(t *testing.T) {
	valid := &DiscountScheme{
		ID: "sch_ok", AppliesTo: types.SchemeScopeProduct, Target: "Rice 5kg",
		DiscountType: types.SchemeDiscountPercentage, Value: decimal.NewFromInt(5),
	}
	assert.NoError(t, valid.Validate())

	negative := &DiscountScheme{
		ID: "sch_neg", AppliesTo: types.SchemeScopeProduct, Target: "Rice 5kg",
		DiscountType: types.SchemeDiscountPercentage, Value: decimal.NewFromInt(-5),
	}
	assert.Error(t, negative.Validate())

	blankTarget := &DiscountScheme{
		ID: "sch_blank", AppliesTo: types.SchemeScopeProduct, Target: "   ",
		DiscountType: types.SchemeDiscountPercentage, Value: decimal.NewFromInt(5),
	}
	assert.Error(t, blankTarget.Validate())
}
