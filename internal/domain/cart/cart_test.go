package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpc/boutique/internal/domain/product"
)

func testProduct(id int64, name, price string) product.Product {
	return product.Product{
		ID:       id,
		Name:     name,
		Category: "pieces",
		Price:    decimal.RequireFromString(price),
	}
}

func TestStore_AddAndSnapshot(t *testing.T) {
	s := NewStore()
	ssd := testProduct(1, "SSD", "119.90")
	ram := testProduct(2, "RAM", "149.00")

	require.NoError(t, s.Add(ssd))
	require.NoError(t, s.Add(ram))
	require.NoError(t, s.Add(ssd))

	snap := s.Snapshot()
	require.Len(t, snap.Lines, 2)

	// First-seen order is preserved.
	assert.Equal(t, int64(1), snap.Lines[0].Product.ID)
	assert.Equal(t, 2, snap.Lines[0].Qty)
	assert.True(t, snap.Lines[0].LineTotal.Equal(decimal.RequireFromString("239.80")))

	assert.Equal(t, int64(2), snap.Lines[1].Product.ID)
	assert.Equal(t, 1, snap.Lines[1].Qty)

	assert.True(t, snap.Total.Equal(decimal.RequireFromString("388.80")))
}

func TestStore_AddSoldRejected(t *testing.T) {
	s := NewStore()
	sold := testProduct(3, "GPU", "599.00")
	sold.Status = product.StatusSold

	err := s.Add(sold)
	require.ErrorIs(t, err, product.ErrSold)
	assert.Zero(t, s.Len())
}

func TestStore_RemoveOne(t *testing.T) {
	s := NewStore()
	a := testProduct(1, "A", "10.00")
	b := testProduct(2, "B", "20.00")

	// Cart [A, A, B]: removing A yields [A, B], not [B].
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	assert.True(t, s.RemoveOne(1))

	snap := s.Snapshot()
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, 1, snap.Lines[0].Qty)
	assert.Equal(t, int64(1), snap.Lines[0].Product.ID)
	assert.Equal(t, int64(2), snap.Lines[1].Product.ID)

	assert.False(t, s.RemoveOne(99), "unknown id removes nothing")
	assert.Equal(t, 2, s.Len())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(testProduct(1, "A", "10.00")))
	s.Clear()

	snap := s.Snapshot()
	assert.Empty(t, snap.Lines)
	assert.True(t, snap.Total.IsZero())
}

// The grand total must always equal the sum of unit prices of the entries
// currently in the cart, whatever the sequence of operations.
func TestStore_TotalInvariant(t *testing.T) {
	s := NewStore()
	a := testProduct(1, "A", "119.90")
	b := testProduct(2, "B", "59.00")
	c := testProduct(3, "C", "0.00")

	ops := []func(){
		func() { _ = s.Add(a) },
		func() { _ = s.Add(b) },
		func() { _ = s.Add(a) },
		func() { s.RemoveOne(2) },
		func() { _ = s.Add(c) },
		func() { s.RemoveOne(1) },
		func() { _ = s.Add(b) },
		func() { s.Clear() },
		func() { _ = s.Add(a) },
		func() { _ = s.Add(a) },
	}

	for i, op := range ops {
		op()

		snap := s.Snapshot()
		sum := decimal.Zero
		for _, line := range snap.Lines {
			sum = sum.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
			assert.True(t, line.LineTotal.Equal(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Qty)))))
		}
		assert.True(t, snap.Total.Equal(sum), "op %d: total %s != sum %s", i, snap.Total, sum)
	}
}

// Entries are snapshots: mutating the caller's product after Add must not
// change what is already in the cart.
func TestStore_SnapshotSemantics(t *testing.T) {
	s := NewStore()
	p := testProduct(1, "SSD", "119.90")
	require.NoError(t, s.Add(p))

	p.Name = "renamed"
	p.Price = decimal.RequireFromString("999.99")

	snap := s.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "SSD", snap.Lines[0].Product.Name)
	assert.True(t, snap.Lines[0].Product.Price.Equal(decimal.RequireFromString("119.90")))
}
