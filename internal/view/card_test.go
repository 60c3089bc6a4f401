package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpc/boutique/internal/domain/product"
)

func catalog() []product.Product {
	return []product.Product{
		{ID: 1, Name: "SSD", Category: "pieces", Price: decimal.RequireFromString("119.90"), Meta: "Rapide"},
		{ID: 4, Name: "Nettoyage", Category: "services", Price: decimal.RequireFromString("59.00")},
		{ID: 9, Name: "Routeur", Category: "pieces", Price: decimal.RequireFromString("139.00")},
		{
			ID: 10, Name: "Tour i5", Category: "pcs", Price: decimal.RequireFromString("549.00"),
			Condition: "Reconditionné A", Badge: "Reconditionné", Status: product.StatusSold,
			Image: "https://example.com/tour.jpg",
		},
	}
}

func TestRender_All(t *testing.T) {
	for _, filter := range []string{FilterAll, ""} {
		cards := Render(catalog(), filter)
		require.Len(t, cards, 4, "filter %q", filter)
	}
}

func TestRender_FilterKeepsOrder(t *testing.T) {
	cards := Render(catalog(), "pieces")

	require.Len(t, cards, 2)
	assert.Equal(t, int64(1), cards[0].ID)
	assert.Equal(t, int64(9), cards[1].ID)
}

func TestRender_UnknownCategory(t *testing.T) {
	assert.Empty(t, Render(catalog(), "imprimantes"))
}

func TestNewCard(t *testing.T) {
	cards := Render(catalog(), FilterAll)

	ssd := cards[0]
	assert.Equal(t, "119,90 €", ssd.Price)
	assert.Equal(t, []string{"Rapide", "pieces"}, ssd.Chips)
	assert.False(t, ssd.Disabled)
	assert.False(t, ssd.HasImage)

	// A product with no optional fields still renders.
	cleaning := cards[1]
	assert.Equal(t, []string{"services"}, cleaning.Chips)
	assert.Empty(t, cleaning.Badge)

	sold := cards[3]
	assert.True(t, sold.Disabled, "sold product disables both controls")
	assert.True(t, sold.HasImage)
	assert.Equal(t, []string{"pcs", "Reconditionné A", product.StatusSold}, sold.Chips)
}

func TestMarkEditable(t *testing.T) {
	cards := Render(catalog(), FilterAll)
	MarkEditable(cards)
	for _, c := range cards {
		assert.True(t, c.Editable)
	}
}
