package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the configuration does not specify one.
const DefaultCurrency = "usd"

// currencyPrecisions lists currencies whose minor unit is not 2 decimals.
var currencyPrecisions = map[string]int32{
	"jpy": 0,
	"krw": 0,
	"vnd": 0,
	"bhd": 3,
	"kwd": 3,
	"omr": 3,
}

// GetCurrencyPrecision returns the number of decimal places for a currency.
func GetCurrencyPrecision(currency string) int32 {
	if p, ok := currencyPrecisions[strings.ToLower(strings.TrimSpace(currency))]; ok {
		return p
	}
	return 2
}

// RoundToCurrencyPrecision rounds a monetary amount to its currency precision.
// Rounding happens only at the serialization boundary; intermediate pricing
// math keeps full decimal precision to avoid compounding rounding error
// across repeated edits.
func RoundToCurrencyPrecision(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Round(GetCurrencyPrecision(currency))
}

// PercentDisplayPrecision is the number of decimals percentages are rounded
// to at the display/serialization boundary.
const PercentDisplayPrecision int32 = 1

// RoundPercent rounds a percentage for display/serialization.
func RoundPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Round(PercentDisplayPrecision)
}
