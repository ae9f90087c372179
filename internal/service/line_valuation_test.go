package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tillcore/tillcore/internal/domain/invoice"
	"github.com/tillcore/tillcore/internal/domain/product"
	"github.com/tillcore/tillcore/internal/domain/scheme"
	ierr "github.com/tillcore/tillcore/internal/errors"
	"github.com/tillcore/tillcore/internal/types"
)

func valuationSnapshot() *Snapshot {
	return NewSnapshotFromData(
		[]*product.Product{
			{
				ID:             "prod_rice",
				Name:           "Rice 5kg",
				CategoryID:     "cat_groceries",
				SellingPrice:   decimal.NewFromInt(500),
				BuyingCost:     decimal.NewFromInt(420),
				AvailableStock: decimal.NewFromInt(50),
			},
			{
				ID:             "prod_sugar",
				Name:           "Sugar 1kg",
				CategoryID:     "cat_groceries",
				SellingPrice:   decimal.NewFromInt(1000),
				BuyingCost:     decimal.NewFromInt(800),
				AvailableStock: decimal.NewFromInt(10),
			},
		},
		[]*product.Category{
			{ID: "cat_groceries", Name: "Groceries"},
		},
		[]*scheme.DiscountScheme{
			{
				ID:           "sch_groceries",
				Active:       true,
				AppliesTo:    types.SchemeScopeCategory,
				Target:       "Groceries",
				DiscountType: types.SchemeDiscountPercentage,
				Value:        decimal.NewFromInt(5),
			},
		},
	)
}

func TestValueLine_ManualPercentDiscount(t *testing.T) {
	// Line of 1 * 1000 with a 10% manual discount nets 900.
	snap := NewSnapshotFromData(
		[]*product.Product{{ID: "prod_plain", Name: "Plain", SellingPrice: decimal.NewFromInt(1000)}},
		nil, nil)
	li := invoice.NewLineItem()
	li.ProductID = lo.ToPtr("prod_plain")
	li.Description = "Plain"
	li.Quantity = decimal.NewFromInt(1)
	li.UnitPrice = decimal.NewFromInt(1000)
	li.DiscountPercent = decimal.NewFromInt(10)
	li.LastEditedDiscountField = types.EditedFieldPercent

	err := ValueLine(li, types.InvoiceTypeSale, time.Now(), snap)
	assert.NoError(t, err)
	assert.True(t, li.LineSubtotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, li.DiscountAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, li.LineTotal.Equal(decimal.NewFromInt(900)))
}

func TestValueLine_CategorySchemeDiscount(t *testing.T) {
	// 4 * 500 with a 5% category scheme and no manual discount nets 1900.
	snap := valuationSnapshot()
	li := invoice.NewLineItem()
	li.ProductID = lo.ToPtr("prod_rice")
	li.Description = "Rice 5kg"
	li.Quantity = decimal.NewFromInt(4)
	li.UnitPrice = decimal.NewFromInt(500)
	li.BuyingCost = decimal.NewFromInt(420)

	err := ValueLine(li, types.InvoiceTypeSale, time.Now(), snap)
	assert.NoError(t, err)
	assert.True(t, li.LineSubtotal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, li.SpecialDiscount.Equal(decimal.NewFromInt(100)))
	assert.True(t, li.LineTotal.Equal(decimal.NewFromInt(1900)))
	assert.Equal(t, "sch_groceries", lo.FromPtr(li.AppliedSchemeID))
	assert.True(t, li.TotalBuyingCost.Equal(decimal.NewFromInt(1680)))
}

func TestValueLine_SchemeStacksWithManualDiscount(t *testing.T) {
	// No combined ceiling: manual and scheme discounts both subtract.
	snap := valuationSnapshot()
	li := invoice.NewLineItem()
	li.ProductID = lo.ToPtr("prod_rice")
	li.Quantity = decimal.NewFromInt(4)
	li.UnitPrice = decimal.NewFromInt(500)
	li.DiscountAmount = decimal.NewFromInt(300)
	li.LastEditedDiscountField = types.EditedFieldAmount

	err := ValueLine(li, types.InvoiceTypeSale, time.Now(), snap)
	assert.NoError(t, err)
	assert.True(t, li.LineTotal.Equal(decimal.NewFromInt(1600)),
		"2000 - 300 manual - 100 scheme = 1600, got %s", li.LineTotal.String())
}

func TestValueLine_PurchaseCostsFreeQuantity(t *testing.T) {
	snap := valuationSnapshot()
	li := invoice.NewLineItem()
	li.ProductID = lo.ToPtr("prod_rice")
	li.Quantity = decimal.NewFromInt(10)
	li.FreeQuantity = decimal.NewFromInt(2)
	li.UnitPrice = decimal.NewFromInt(420)
	li.BuyingCost = decimal.NewFromInt(420)

	err := ValueLine(li, types.InvoiceTypePurchase, time.Now(), snap)
	assert.NoError(t, err)
	// Free units are costed into the purchase subtotal.
	assert.True(t, li.LineSubtotal.Equal(decimal.NewFromInt(5040)),
		"(10+2)*420 = 5040, got %s", li.LineSubtotal.String())
	// Purchases never carry scheme discounts.
	assert.True(t, li.SpecialDiscount.IsZero())
	assert.Nil(t, li.AppliedSchemeID)
	// Buying cost total counts paid units only.
	assert.True(t, li.TotalBuyingCost.Equal(decimal.NewFromInt(4200)))
}

func TestValueLine_FreeTextPurchaseLine(t *testing.T) {
	snap := valuationSnapshot()
	li := invoice.NewLineItem()
	li.Description = "Crate deposit"
	li.Quantity = decimal.NewFromInt(3)
	li.UnitPrice = decimal.NewFromInt(50)

	err := ValueLine(li, types.InvoiceTypePurchase, time.Now(), snap)
	assert.NoError(t, err)
	assert.True(t, li.LineTotal.Equal(decimal.NewFromInt(150)))
}

func TestValueLine_ClampsNegativeTotal(t *testing.T) {
	// Manual discount larger than the subtotal clamps the total at zero.
	snap := valuationSnapshot()
	li := invoice.NewLineItem()
	li.ProductID = lo.ToPtr("prod_rice")
	li.Quantity = decimal.NewFromInt(1)
	li.UnitPrice = decimal.NewFromInt(500)
	li.DiscountAmount = decimal.NewFromInt(600)
	li.LastEditedDiscountField = types.EditedFieldAmount

	err := ValueLine(li, types.InvoiceTypeSale, time.Now(), snap)
	assert.NoError(t, err)
	assert.True(t, li.LineTotal.IsZero())
}

func TestValueLine_ValidationFailures(t *testing.T) {
	snap := valuationSnapshot()

	t.Run("Zero_Quantity", func(t *testing.T) {
		li := invoice.NewLineItem()
		li.ProductID = lo.ToPtr("prod_rice")
		li.Quantity = decimal.Zero
		li.UnitPrice = decimal.NewFromInt(500)

		err := ValueLine(li, types.InvoiceTypeSale, time.Now(), snap)
		assert.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
		assert.Equal(t, "quantity must be positive", ierr.Message(err))
		// Computed fields are zeroed so the line contributes nothing.
		assert.True(t, li.LineSubtotal.IsZero())
		assert.True(t, li.LineTotal.IsZero())
	})

	t.Run("Missing_Item", func(t *testing.T) {
		li := invoice.NewLineItem()
		li.Quantity = decimal.NewFromInt(1)

		err := ValueLine(li, types.InvoiceTypePurchase, time.Now(), snap)
		assert.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
		assert.Equal(t, "item required", ierr.Message(err))
	})

	t.Run("Sale_Requires_Product", func(t *testing.T) {
		li := invoice.NewLineItem()
		li.Description = "Free text"
		li.Quantity = decimal.NewFromInt(1)

		err := ValueLine(li, types.InvoiceTypeSale, time.Now(), snap)
		assert.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})
}

// TestValueLine_Idempotent verifies a second pass with unchanged inputs
// yields identical output.
func TestValueLine_Idempotent(t *testing.T) {
	snap := valuationSnapshot()
	li := invoice.NewLineItem()
	li.ProductID = lo.ToPtr("prod_rice")
	li.Quantity = decimal.NewFromInt(4)
	li.UnitPrice = decimal.NewFromInt(500)
	li.DiscountPercent = decimal.NewFromInt(10)
	li.LastEditedDiscountField = types.EditedFieldPercent

	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, ValueLine(li, types.InvoiceTypeSale, date, snap))
	first := *li
	assert.NoError(t, ValueLine(li, types.InvoiceTypeSale, date, snap))

	assert.True(t, first.LineSubtotal.Equal(li.LineSubtotal))
	assert.True(t, first.DiscountAmount.Equal(li.DiscountAmount))
	assert.True(t, first.DiscountPercent.Equal(li.DiscountPercent))
	assert.True(t, first.SpecialDiscount.Equal(li.SpecialDiscount))
	assert.True(t, first.LineTotal.Equal(li.LineTotal))
}
