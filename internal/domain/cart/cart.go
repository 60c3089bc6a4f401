// Package cart implements the session-scoped shopping cart: an ordered
// multiset of product snapshots. Quantity is never stored; it is derived by
// grouping entries with the same product ID.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/maxpc/boutique/internal/domain/product"
)

// Line is one grouped cart row: a representative product snapshot, the
// number of entries sharing its ID, and qty × unit price.
type Line struct {
	Product   product.Product
	Qty       int
	LineTotal decimal.Decimal
}

// Snapshot is the derived view of the cart at one point in time. Lines keep
// the order in which their product first entered the cart. Total is the
// exact sum of all entry prices; no rounding is applied here.
type Snapshot struct {
	Lines []Line
	Total decimal.Decimal
}

// Store owns the cart sequence for the lifetime of a session. Entries are
// product values captured at add time, so later catalog edits never change
// a line that is already in the cart.
type Store struct {
	mu    sync.Mutex
	items []product.Product
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add appends a snapshot of p to the cart. Sold products are rejected and
// leave the cart unchanged.
func (s *Store) Add(p product.Product) error {
	if p.IsSold() {
		return product.ErrSold
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, p)
	return nil
}

// RemoveOne removes the first entry whose product ID matches id, so a
// multi-quantity line is decremented by one rather than dropped. It reports
// whether an entry was removed.
func (s *Store) RemoveOne(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Len returns the number of entries (not grouped lines) in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Snapshot groups entries by product ID in first-seen order and computes
// line totals plus the grand total.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[int64]int, len(s.items))
	lines := make([]Line, 0, len(s.items))
	total := decimal.Zero

	for _, item := range s.items {
		total = total.Add(item.Price)
		if i, ok := index[item.ID]; ok {
			lines[i].Qty++
			lines[i].LineTotal = lines[i].LineTotal.Add(item.Price)
			continue
		}
		index[item.ID] = len(lines)
		lines = append(lines, Line{Product: item, Qty: 1, LineTotal: item.Price})
	}

	return Snapshot{Lines: lines, Total: total}
}
