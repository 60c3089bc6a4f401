// Package pricing formats monetary amounts the way the shop displays them:
// two decimals, comma as decimal separator, trailing euro glyph.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount as e.g. "119,90 €". Rounding to two decimals
// happens here and only here; upstream totals stay exact.
func Format(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1) + " €"
}
