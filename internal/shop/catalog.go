// Package shop holds the per-deployment catalog snapshot and the
// per-visitor session state: cart, detail view, operator privileges.
package shop

import (
	"context"
	"sync"

	"github.com/maxpc/boutique/internal/catalog"
	"github.com/maxpc/boutique/internal/domain/product"
)

// Catalog caches the loaded product list and serves lookups from memory.
// Reload swaps the snapshot atomically so readers never observe a partial
// list.
type Catalog struct {
	loader *catalog.Loader

	mu       sync.RWMutex
	products []product.Product
	byID     map[int64]product.Product
}

// NewCatalog wraps a loader. The snapshot is empty until Reload runs.
func NewCatalog(loader *catalog.Loader) *Catalog {
	return &Catalog{
		loader: loader,
		byID:   make(map[int64]product.Product),
	}
}

// Reload re-runs the source chain and replaces the snapshot.
func (c *Catalog) Reload(ctx context.Context) {
	products := c.loader.Load(ctx)

	byID := make(map[int64]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c.mu.Lock()
	c.products = products
	c.byID = byID
	c.mu.Unlock()
}

// Products returns the current snapshot. Callers must not mutate it.
func (c *Catalog) Products() []product.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products
}

// Find returns the product with the given id from the snapshot.
func (c *Catalog) Find(id int64) (product.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[id]
	if !ok {
		return product.Product{}, product.ErrNotFound
	}
	return p, nil
}
