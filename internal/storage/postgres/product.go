package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/maxpc/boutique/internal/domain/product"
)

const (
	listProductsSQL = `SELECT id, name, category, price, description, meta, badge, condition, status, image, specs
		FROM products ORDER BY id`

	getProductByIDSQL = `SELECT id, name, category, price, description, meta, badge, condition, status, image, specs
		FROM products WHERE id = $1`

	updateProductSQL = `UPDATE products
		SET name = $2, category = $3, price = $4, description = $5, meta = $6,
			badge = $7, condition = $8, status = $9, image = $10, specs = $11,
			updated_at = now()
		WHERE id = $1`

	deleteProductSQL = `DELETE FROM products WHERE id = $1`

	insertProductSQL = `INSERT INTO products
		(id, name, category, price, description, meta, badge, condition, status, image, specs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING`
)

var (
	_ product.Repository = (*ProductRepository)(nil)
	_ product.Writer     = (*ProductRepository)(nil)
)

// ProductRepository implements product.Repository and product.Writer backed
// by PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a ProductRepository that uses the given pool.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// List returns all products ordered by ID.
func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	rows, err := r.pool.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "listing products")
	}
	return pgx.CollectRows(rows, scanProduct)
}

// GetByID returns a single product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	rows, err := r.pool.Query(ctx, getProductByIDSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "getting product %d", id)
	}

	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, errors.Wrapf(err, "getting product %d", id)
	}
	return &p, nil
}

// Update overwrites the stored row for p.ID.
func (r *ProductRepository) Update(ctx context.Context, p product.Product) error {
	tag, err := r.pool.Exec(ctx, updateProductSQL,
		p.ID, p.Name, p.Category, p.Price, p.Description, p.Meta,
		p.Badge, p.Condition, p.Status, p.Image, p.Specs,
	)
	if err != nil {
		return errors.Wrapf(err, "updating product %d", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Delete removes a product row.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, deleteProductSQL, id)
	if err != nil {
		return errors.Wrapf(err, "deleting product %d", id)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Insert adds a product row, skipping IDs that already exist. Used by the
// seeding tool.
func (r *ProductRepository) Insert(ctx context.Context, p product.Product) error {
	_, err := r.pool.Exec(ctx, insertProductSQL,
		p.ID, p.Name, p.Category, p.Price, p.Description, p.Meta,
		p.Badge, p.Condition, p.Status, p.Image, p.Specs,
	)
	if err != nil {
		return errors.Wrapf(err, "inserting product %d", p.ID)
	}
	return nil
}

func scanProduct(row pgx.CollectableRow) (product.Product, error) {
	var (
		p     product.Product
		price decimal.Decimal
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &price, &p.Description, &p.Meta,
		&p.Badge, &p.Condition, &p.Status, &p.Image, &p.Specs,
	)
	p.Price = price
	return p, err
}
