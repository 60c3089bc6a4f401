package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxpc/boutique/internal/domain/admin"
)

const isAdminMemberSQL = `SELECT EXISTS (SELECT 1 FROM admin_users WHERE user_id = $1)`

var _ admin.Directory = (*AdminDirectory)(nil)

// AdminDirectory implements admin.Directory backed by PostgreSQL.
type AdminDirectory struct {
	pool *pgxpool.Pool
}

// NewAdminDirectory returns an AdminDirectory that uses the given pool.
func NewAdminDirectory(pool *pgxpool.Pool) *AdminDirectory {
	return &AdminDirectory{pool: pool}
}

// IsMember reports whether userID has a row in admin_users.
func (d *AdminDirectory) IsMember(ctx context.Context, userID string) (bool, error) {
	var member bool
	if err := d.pool.QueryRow(ctx, isAdminMemberSQL, userID).Scan(&member); err != nil {
		return false, errors.Wrap(err, "checking admin membership")
	}
	return member, nil
}

const insertAdminUserSQL = `INSERT INTO admin_users (user_id, email)
	VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`

// AddMember records an operator account. Used by the seeding tool.
func (d *AdminDirectory) AddMember(ctx context.Context, userID, email string) error {
	if _, err := d.pool.Exec(ctx, insertAdminUserSQL, userID, email); err != nil {
		return errors.Wrap(err, "adding admin member")
	}
	return nil
}
