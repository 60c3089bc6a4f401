package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpc/boutique/internal/domain/cart"
	"github.com/maxpc/boutique/internal/domain/product"
)

func line(name, price string, qty int) cart.Line {
	p := decimal.RequireFromString(price)
	return cart.Line{
		Product:   product.Product{Name: name, Price: p},
		Qty:       qty,
		LineTotal: p.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestBuildSummary(t *testing.T) {
	lines := []cart.Line{line("SSD", "119.90", 2)}
	got := BuildSummary(lines, decimal.RequireFromString("239.80"))

	want := strings.Join([]string{
		"Sélection boutique :",
		"- 2 x SSD (119,90 €)",
		"Total estimé : 239,80 €",
		"Installation / configuration : à confirmer lors de la réservation.",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestBuildSummary_MultipleLines(t *testing.T) {
	lines := []cart.Line{
		line("SSD NVMe 1TB PCIe 4.0", "119.90", 1),
		line("Installation Windows + pilotes", "79.00", 1),
	}
	got := BuildSummary(lines, decimal.RequireFromString("198.90"))

	assert.Contains(t, got, "- 1 x SSD NVMe 1TB PCIe 4.0 (119,90 €)")
	assert.Contains(t, got, "- 1 x Installation Windows + pilotes (79,00 €)")
	assert.Contains(t, got, "Total estimé : 198,90 €")
	assert.True(t, strings.HasPrefix(got, "Sélection boutique :"))
}

func TestReservationURL_RoundTrip(t *testing.T) {
	summary := BuildSummary([]cart.Line{line("SSD", "119.90", 2)}, decimal.RequireFromString("239.80"))
	raw := ReservationURL("reservation.html", summary)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "reservation.html", u.Path)

	// The receiving page must get the exact summary back after decoding.
	assert.Equal(t, summary, u.Query().Get(CartParam))
}

func TestPrefill(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		form        Form
		wantApplied bool
		wantDesc    string
		wantService string
	}{
		{
			name:        "cart text fills description and defaults service",
			query:       "cart=2+x+SSD",
			wantApplied: true,
			wantDesc:    "2 x SSD",
			wantService: DefaultService,
		},
		{
			name:        "existing service is kept",
			query:       "cart=2+x+SSD",
			form:        Form{Service: "depannage"},
			wantApplied: true,
			wantDesc:    "2 x SSD",
			wantService: "depannage",
		},
		{
			name:        "missing parameter leaves the form alone",
			query:       "",
			form:        Form{Description: "hello"},
			wantApplied: false,
			wantDesc:    "hello",
		},
		{
			name:        "literal undefined is ignored",
			query:       "cart=undefined",
			wantApplied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			form := tt.form
			applied := Prefill(q, &form)

			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantDesc, form.Description)
			assert.Equal(t, tt.wantService, form.Service)
		})
	}
}
