// Package checkout turns a grouped cart into the hand-off contract consumed
// by the reservation page: a human-readable summary carried in a `cart`
// query parameter. The receiving side treats the text as opaque prefill.
package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/maxpc/boutique/internal/domain/cart"
	"github.com/maxpc/boutique/internal/domain/pricing"
)

const (
	// CartParam is the query parameter carrying the encoded summary.
	CartParam = "cart"
	// DefaultService is filled into an empty service field on prefill.
	DefaultService = "installation"

	summaryHeader     = "Sélection boutique :"
	summaryTotal      = "Total estimé : "
	summaryDisclaimer = "Installation / configuration : à confirmer lors de la réservation."
)

// BuildSummary produces the fixed-format multi-line text for a grouped cart:
// header, one "- {qty} x {name} ({unit price})" line per group, a total
// line, and the install/config disclaimer.
func BuildSummary(lines []cart.Line, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString(summaryHeader)
	for _, line := range lines {
		b.WriteString("\n- ")
		b.WriteString(strconv.Itoa(line.Qty))
		b.WriteString(" x ")
		b.WriteString(line.Product.Name)
		b.WriteString(" (")
		b.WriteString(pricing.Format(line.Product.Price))
		b.WriteString(")")
	}
	b.WriteString("\n")
	b.WriteString(summaryTotal)
	b.WriteString(pricing.Format(total))
	b.WriteString("\n")
	b.WriteString(summaryDisclaimer)
	return b.String()
}

// ReservationURL attaches the percent-encoded summary to the reservation
// page URL as the cart parameter.
func ReservationURL(base, summary string) string {
	return base + "?" + CartParam + "=" + url.QueryEscape(summary)
}

// Form is the reservation-page state the prefill step may touch.
type Form struct {
	Description string
	Service     string
}

// Prefill implements the receiving side of the contract: when the cart
// parameter is present and not the literal string "undefined", its text
// replaces the description and an empty service field defaults to
// DefaultService. It reports whether a prefill was applied.
func Prefill(q url.Values, form *Form) bool {
	text := q.Get(CartParam)
	if text == "" || text == "undefined" {
		return false
	}

	form.Description = text
	if form.Service == "" {
		form.Service = DefaultService
	}
	return true
}
