package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxpc/boutique/internal/domain/content"
)

const (
	listContentSQL = `SELECT key, value, updated_at FROM site_content ORDER BY key`

	upsertContentSQL = `INSERT INTO site_content (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

var _ content.Repository = (*ContentRepository)(nil)

// ContentRepository implements content.Repository backed by PostgreSQL.
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository returns a ContentRepository that uses the given pool.
func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

// List returns all site content entries ordered by key.
func (r *ContentRepository) List(ctx context.Context) ([]content.Entry, error) {
	rows, err := r.pool.Query(ctx, listContentSQL)
	if err != nil {
		return nil, errors.Wrap(err, "listing site content")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.Entry, error) {
		var e content.Entry
		err := row.Scan(&e.Key, &e.Value, &e.UpdatedAt)
		return e, err
	})
}

// Upsert inserts or replaces the value for key.
func (r *ContentRepository) Upsert(ctx context.Context, key, value string) error {
	if _, err := r.pool.Exec(ctx, upsertContentSQL, key, value); err != nil {
		return errors.Wrapf(err, "upserting site content %q", key)
	}
	return nil
}
