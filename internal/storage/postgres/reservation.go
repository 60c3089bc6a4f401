package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxpc/boutique/internal/domain/reservation"
)

const (
	createReservationSQL = `INSERT INTO reservations
		(id, user_id, service, reservation_date, reservation_time,
		 customer_name, customer_email, customer_phone, description,
		 confirmation_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	getReservationSQL = `SELECT id, user_id, service, reservation_date, reservation_time,
		customer_name, customer_email, customer_phone, description,
		confirmation_number, status, created_at, updated_at
		FROM reservations WHERE id = $1`

	listReservationsByUserSQL = `SELECT id, user_id, service, reservation_date, reservation_time,
		customer_name, customer_email, customer_phone, description,
		confirmation_number, status, created_at, updated_at
		FROM reservations WHERE user_id = $1
		ORDER BY reservation_date DESC, reservation_time DESC`

	updateReservationSQL = `UPDATE reservations
		SET service = $2, reservation_date = $3, reservation_time = $4,
			customer_name = $5, customer_email = $6, customer_phone = $7,
			description = $8, status = $9, updated_at = $10
		WHERE id = $1`
)

var _ reservation.Repository = (*ReservationRepository)(nil)

// ReservationRepository implements reservation.Repository backed by
// PostgreSQL.
type ReservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository returns a ReservationRepository that uses the
// given pool.
func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Create persists a new reservation.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.pool.Exec(ctx, createReservationSQL,
		res.ID, res.UserID, res.Service, res.Date, res.TimeSlot,
		res.CustomerName, res.CustomerEmail, res.CustomerPhone, res.Description,
		res.ConfirmationNumber, res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "creating reservation %s", res.ID)
	}
	return nil
}

// GetByID returns a single reservation.
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	rows, err := r.pool.Query(ctx, getReservationSQL, id)
	if err != nil {
		return nil, errors.Wrapf(err, "getting reservation %s", id)
	}

	res, err := pgx.CollectExactlyOneRow(rows, scanReservation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reservation.ErrNotFound
		}
		return nil, errors.Wrapf(err, "getting reservation %s", id)
	}
	return &res, nil
}

// ListByUser returns the user's reservations, most recent date first.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]reservation.Reservation, error) {
	rows, err := r.pool.Query(ctx, listReservationsByUserSQL, userID)
	if err != nil {
		return nil, errors.Wrap(err, "listing reservations")
	}
	return pgx.CollectRows(rows, scanReservation)
}

// Update overwrites the mutable fields of an existing reservation.
func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.pool.Exec(ctx, updateReservationSQL,
		res.ID, res.Service, res.Date, res.TimeSlot,
		res.CustomerName, res.CustomerEmail, res.CustomerPhone,
		res.Description, res.Status, res.UpdatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "updating reservation %s", res.ID)
	}
	if tag.RowsAffected() == 0 {
		return reservation.ErrNotFound
	}
	return nil
}

func scanReservation(row pgx.CollectableRow) (reservation.Reservation, error) {
	var res reservation.Reservation
	err := row.Scan(
		&res.ID, &res.UserID, &res.Service, &res.Date, &res.TimeSlot,
		&res.CustomerName, &res.CustomerEmail, &res.CustomerPhone, &res.Description,
		&res.ConfirmationNumber, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	return res, err
}
