package service

import (
	"github.com/shopspring/decimal"
	"github.com/tillcore/tillcore/internal/types"
)

var hundred = decimal.NewFromInt(100)

// DualField is a reconciled (amount, percent) pair over a shared base value.
type DualField struct {
	Amount  decimal.Decimal
	Percent decimal.Decimal
}

// ReconcileDualField keeps an amount and a percentage representation of the
// same figure consistent as either side is edited. The edited side wins and
// the other is derived; switching focus to the other field overwrites the
// previous edit source. With no edit since the base last changed
// (EditedFieldNone) the stored percentage is sticky: the amount is re-derived
// from it against the new base, so e.g. a 10% line discount stays 10% when
// the quantity changes.
//
// Clamps: percentages live in [0, 100]; amounts are floored at zero. An
// amount exceeding the base keeps its typed value (downstream totals clamp
// at zero) but its derived percentage caps at 100.
func ReconcileDualField(base, amount, percent decimal.Decimal, edited types.EditedField) DualField {
	base = types.ClampNonNegative(base)

	switch edited {
	case types.EditedFieldPercent:
		percent = types.ClampPercent(percent)
		return DualField{
			Amount:  base.Mul(percent).Div(hundred),
			Percent: percent,
		}

	case types.EditedFieldAmount:
		amount = types.ClampNonNegative(amount)
		if base.IsZero() {
			return DualField{Amount: amount, Percent: decimal.Zero}
		}
		return DualField{
			Amount:  amount,
			Percent: types.ClampPercent(amount.Div(base).Mul(hundred)),
		}

	default:
		// No user edit since the base changed: re-derive the amount from the
		// last-known percentage.
		percent = types.ClampPercent(percent)
		return DualField{
			Amount:  base.Mul(percent).Div(hundred),
			Percent: percent,
		}
	}
}
