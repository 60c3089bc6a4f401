package catalog

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/go-faster/errors"

	"github.com/maxpc/boutique/internal/domain/product"
)

// StoreSource reads the catalog from the remote product store. Calls run
// under a timeout so an unreachable backend cannot leave the load pending
// indefinitely.
type StoreSource struct {
	repo    product.Repository
	timeout time.Duration
}

// NewStoreSource wraps a product repository as the first chain step.
func NewStoreSource(repo product.Repository, timeout time.Duration) *StoreSource {
	return &StoreSource{repo: repo, timeout: timeout}
}

func (s *StoreSource) Name() string { return "store" }

// Load fetches all rows ordered by id. An empty result is treated as
// unavailable so the chain falls through to the next source.
func (s *StoreSource) Load(ctx context.Context) ([]product.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	if len(products) == 0 {
		return nil, errors.New("store returned an empty catalog")
	}
	return products, nil
}

// FileSource reads the catalog from a static JSON document: an array of
// product rows, with both specification shapes accepted.
type FileSource struct {
	path string
}

// NewFileSource creates the static-file chain step.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Name() string { return "file" }

func (f *FileSource) Load(_ context.Context) ([]product.Product, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrap(err, "read products file")
	}

	var rows []product.Raw
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "products file must be a JSON array")
	}

	products := make([]product.Product, len(rows))
	for i, row := range rows {
		products[i] = row.Product()
	}
	return products, nil
}
