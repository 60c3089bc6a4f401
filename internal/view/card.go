// Package view projects the product list into display card view models.
// The projection is pure; the HTTP layer does the actual painting.
package view

import (
	"github.com/maxpc/boutique/internal/domain/pricing"
	"github.com/maxpc/boutique/internal/domain/product"
)

// FilterAll is the reserved category tag that disables filtering.
const FilterAll = "all"

// InstallNote is the static hint rendered under every card's actions.
const InstallNote = "Installation possible en atelier ou sur site"

// Card is the display model for one product.
type Card struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"desc"`
	Image       string   `json:"image,omitempty"`
	HasImage    bool     `json:"hasImage"`
	Badge       string   `json:"badge,omitempty"`
	Status      string   `json:"status,omitempty"`
	Chips       []string `json:"chips"`
	// Disabled applies to both the view-details and add-to-cart controls.
	Disabled bool `json:"disabled"`
	// Editable is set when an operator has edit mode on; the card itself
	// does not change behaviour, it only tolerates the annotation.
	Editable bool `json:"editable,omitempty"`
}

// Render projects the (optionally filtered) product list into cards, one
// per product, in original relative order. filter is an exact category
// match; FilterAll or an empty string renders everything.
func Render(products []product.Product, filter string) []Card {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		if filter != "" && filter != FilterAll && p.Category != filter {
			continue
		}
		cards = append(cards, NewCard(p))
	}
	return cards
}

// NewCard builds the card for a single product. Absent optional fields
// simply produce fewer chips; nothing here can fail.
func NewCard(p product.Product) Card {
	chips := make([]string, 0, 4)
	if p.Meta != "" {
		chips = append(chips, p.Meta)
	}
	chips = append(chips, p.Category)
	if p.Condition != "" {
		chips = append(chips, p.Condition)
	}
	if p.Status != "" {
		chips = append(chips, p.Status)
	}

	return Card{
		ID:          p.ID,
		Name:        p.Name,
		Price:       pricing.Format(p.Price),
		Description: p.Description,
		Image:       p.Image,
		HasImage:    p.Image != "",
		Badge:       p.Badge,
		Status:      p.Status,
		Chips:       chips,
		Disabled:    p.IsSold(),
	}
}

// MarkEditable annotates every card for edit mode.
func MarkEditable(cards []Card) {
	for i := range cards {
		cards[i].Editable = true
	}
}
