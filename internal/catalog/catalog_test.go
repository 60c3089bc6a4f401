package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/maxpc/boutique/internal/domain/product"
)

type fakeSource struct {
	name     string
	products []product.Product
	err      error
	calls    int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Load(_ context.Context) ([]product.Product, error) {
	f.calls++
	return f.products, f.err
}

func TestLoader_FirstSourceWins(t *testing.T) {
	first := &fakeSource{name: "store", products: []product.Product{{ID: 1, Name: "SSD"}}}
	second := &fakeSource{name: "file", products: []product.Product{{ID: 2}}}

	l := NewLoader(zaptest.NewLogger(t), first, second)
	got := l.Load(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "SSD", got[0].Name)
	assert.Zero(t, second.calls, "later sources must not be touched")
}

func TestLoader_FallsThroughOnError(t *testing.T) {
	first := &fakeSource{name: "store", err: errors.New("connection refused")}
	second := &fakeSource{name: "file", products: []product.Product{{ID: 7, Name: "Pack"}}}

	l := NewLoader(zaptest.NewLogger(t), first, second)
	got := l.Load(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
}

func TestLoader_AllFailReturnsDefaults(t *testing.T) {
	first := &fakeSource{name: "store", err: errors.New("down")}
	second := &fakeSource{name: "file", err: errors.New("missing")}

	l := NewLoader(zaptest.NewLogger(t), first, second)
	got := l.Load(context.Background())

	assert.Equal(t, Defaults(), got)
}

func TestLoader_NoSources(t *testing.T) {
	l := NewLoader(zaptest.NewLogger(t))
	assert.Equal(t, Defaults(), l.Load(context.Background()))
}

func TestLoader_DropsDuplicateIDs(t *testing.T) {
	src := &fakeSource{name: "file", products: []product.Product{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "other"},
		{ID: 1, Name: "duplicate"},
	}}

	l := NewLoader(zaptest.NewLogger(t), src)
	got := l.Load(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "other", got[1].Name)
}

func TestDefaults(t *testing.T) {
	products := Defaults()
	require.Len(t, products, 10)

	seen := make(map[int64]struct{})
	for _, p := range products {
		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate id %d", p.ID)
		seen[p.ID] = struct{}{}

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.False(t, p.Price.IsNegative())
	}

	// The refurbished tower ships with a structured spec list.
	assert.Equal(t, "pcs", products[9].Category)
	assert.Len(t, products[9].Specs, 5)
}

type fakeRepo struct {
	products []product.Product
	err      error
}

func (f *fakeRepo) List(_ context.Context) ([]product.Product, error) {
	return f.products, f.err
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*product.Product, error) {
	return nil, product.ErrNotFound
}

func TestStoreSource_EmptyCatalogFallsThrough(t *testing.T) {
	src := NewStoreSource(&fakeRepo{}, time.Second)
	_, err := src.Load(context.Background())
	require.Error(t, err)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shop-products.json")

	payload := `[
		{"id": 1, "name": "SSD", "category": "pieces", "price": 119.9, "desc": "rapide"},
		{"id": 2, "name": "Tour", "category": "pcs", "price": 549,
		 "specs": "i5 | GTX 1660 | 16GB"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	src := NewFileSource(path)
	products, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("119.9")))
	assert.Equal(t, []string{"i5", "GTX 1660", "16GB"}, products[1].Specs)
}

func TestFileSource_NotAnArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shop-products.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"oops": true}`), 0o644))

	_, err := NewFileSource(path).Load(context.Background())
	require.Error(t, err)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	require.Error(t, err)
}
