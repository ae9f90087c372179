package product

import (
	"github.com/shopspring/decimal"
)

// Product is catalog reference data for the pricing engine. The engine reads
// it through a session snapshot and never writes it back; stock and price
// maintenance belong to the inventory layer.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`

	// UnitPrice is the catalog list price (MRP). It is pass-through reference
	// data, never computed over; pricing uses SellingPrice and BuyingCost.
	UnitPrice decimal.Decimal `json:"unit_price"`

	// SellingPrice is the default unit price on sales lines; BuyingCost is
	// the default on purchase lines and feeds the margin figure.
	SellingPrice decimal.Decimal `json:"selling_price"`
	BuyingCost   decimal.Decimal `json:"buying_cost"`

	// AvailableStock is a point-in-time figure checked by the submit-time
	// stock guard. It is not a reservation.
	AvailableStock decimal.Decimal `json:"available_stock"`
}

// Category groups products; scheme targets match against its name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
