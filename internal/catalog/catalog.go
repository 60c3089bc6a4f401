// Package catalog loads the product list through a resolution chain:
// remote store, then static JSON file, then built-in defaults. Every step
// swallows its own error, so a load can never fail and the shop is never
// empty even when the backend and the file are both unreachable.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/maxpc/boutique/internal/domain/product"
)

// Source is one step of the resolution chain.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Load returns the full catalog. A source that is reachable but has
	// nothing useful should return an error so the chain falls through.
	Load(ctx context.Context) ([]product.Product, error)
}

// Loader runs the resolution chain in order.
type Loader struct {
	sources []Source
	lg      *zap.Logger
}

// NewLoader creates a Loader over the given sources, tried in order. The
// built-in defaults terminate the chain and are not a Source.
func NewLoader(lg *zap.Logger, sources ...Source) *Loader {
	return &Loader{sources: sources, lg: lg}
}

// Load walks the chain and returns the first successful catalog, falling
// back to the built-in defaults when every source fails. Duplicate IDs
// within a snapshot are dropped, keeping the first occurrence.
func (l *Loader) Load(ctx context.Context) []product.Product {
	for _, src := range l.sources {
		products, err := src.Load(ctx)
		if err != nil {
			l.lg.Warn("catalog source unavailable, falling through",
				zap.String("source", src.Name()),
				zap.Error(err),
			)
			continue
		}

		l.lg.Info("catalog loaded",
			zap.String("source", src.Name()),
			zap.Int("products", len(products)),
		)
		return dedupe(l.lg, products)
	}

	l.lg.Info("all catalog sources failed, using built-in defaults")
	return Defaults()
}

// dedupe enforces the unique-ID invariant across one snapshot.
func dedupe(lg *zap.Logger, products []product.Product) []product.Product {
	seen := make(map[int64]struct{}, len(products))
	out := products[:0]
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			lg.Warn("duplicate product id in catalog, keeping first", zap.Int64("id", p.ID))
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
