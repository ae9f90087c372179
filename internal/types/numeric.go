package types

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Centralized numeric coercion. Every entry point that accepts user-typed
// numbers goes through these helpers so the engine's non-negativity and
// finiteness invariants hold uniformly instead of being re-implemented at
// each call site.

var percentCap = decimal.NewFromInt(100)

// CoerceDecimal parses user input into a decimal. Unparseable or empty input
// coerces to zero with ok=false so the caller can flag the field; it is never
// an error that stops a recompute pass.
func CoerceDecimal(raw string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CoerceFloat converts a float into a decimal, mapping NaN and ±Inf to zero.
func CoerceFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// ClampNonNegative floors a value at zero.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ClampPercent clamps a percentage into [0, 100].
func ClampPercent(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(percentCap) {
		return percentCap
	}
	return d
}
