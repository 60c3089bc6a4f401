package product

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// StatusSold marks a product that can no longer be bought. Cards for sold
// products render with their controls disabled and the cart rejects them.
const StatusSold = "Vendu"

// SpecSeparator splits a delimited specification string into list entries.
const SpecSeparator = "|"

var (
	// ErrNotFound is returned when a requested product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrSold is returned when an operation targets a sold product.
	ErrSold = errors.New("product is sold")
)

// Product is one catalog item: a part, a workshop service, a bundle or a
// refurbished machine. Only ID, Name, Category and Price are mandatory;
// everything else may be empty.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Price       decimal.Decimal
	Description string
	Meta        string
	Badge       string
	Condition   string
	Status      string
	Image       string
	Specs       []string
}

// IsSold reports whether the product carries the sold sentinel status.
func (p Product) IsSold() bool {
	return p.Status == StatusSold
}

// SplitSpecs normalizes a delimited specification string into a clean list:
// entries are split on SpecSeparator, trimmed, and empty parts dropped.
func SplitSpecs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, SpecSeparator)
	specs := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			specs = append(specs, s)
		}
	}
	if len(specs) == 0 {
		return nil
	}
	return specs
}

// Repository defines read operations for the product catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
}

// Writer defines the admin-only mutations. Every write replaces the whole
// catalog snapshot on the caller's side via a reload.
type Writer interface {
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int64) error
}
