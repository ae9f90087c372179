package service

import (
	"github.com/shopspring/decimal"
)

// CalculateBalance derives the terminal balance from the paid amount and the
// grand total. Negative means the customer still owes ("balance due");
// positive is change to hand back. Both signs are valid terminal states, so
// no clamping is applied.
func CalculateBalance(paidAmount, total decimal.Decimal) decimal.Decimal {
	return paidAmount.Sub(total)
}
