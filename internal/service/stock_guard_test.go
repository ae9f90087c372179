package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tillcore/tillcore/internal/domain/invoice"
	"github.com/tillcore/tillcore/internal/domain/product"
	ierr "github.com/tillcore/tillcore/internal/errors"
)

func TestCheckStock(t *testing.T) {
	lamp := &product.Product{
		ID:             "prod_lamp",
		Name:           "Desk Lamp",
		AvailableStock: decimal.NewFromInt(6),
	}

	t.Run("Within_Stock", func(t *testing.T) {
		li := invoice.NewLineItem()
		li.ProductID = lo.ToPtr(lamp.ID)
		li.Quantity = decimal.NewFromInt(6)
		assert.NoError(t, CheckStock(li, lamp))
	})

	t.Run("Exceeds_Stock", func(t *testing.T) {
		li := invoice.NewLineItem()
		li.ProductID = lo.ToPtr(lamp.ID)
		li.Quantity = decimal.NewFromInt(10)

		err := CheckStock(li, lamp)
		assert.Error(t, err)
		assert.True(t, ierr.IsInsufficientStock(err))
		// The message names the available quantity so the form can show it.
		assert.Equal(t, "only 6 available in stock", ierr.Message(err))

		details := ierr.ReportableDetails(err)
		assert.Equal(t, "10", details["requested"])
		assert.Equal(t, "6", details["available_stock"])
	})

	t.Run("Unknown_Product", func(t *testing.T) {
		li := invoice.NewLineItem()
		li.ProductID = lo.ToPtr("prod_gone")
		li.Quantity = decimal.NewFromInt(1)

		err := CheckStock(li, nil)
		assert.Error(t, err)
		assert.True(t, ierr.IsNotFound(err))
	})

	t.Run("Never_Mutates_Stock", func(t *testing.T) {
		li := invoice.NewLineItem()
		li.ProductID = lo.ToPtr(lamp.ID)
		li.Quantity = decimal.NewFromInt(4)

		assert.NoError(t, CheckStock(li, lamp))
		assert.NoError(t, CheckStock(li, lamp))
		assert.True(t, lamp.AvailableStock.Equal(decimal.NewFromInt(6)))
	})
}
