// Package reservation covers the booking records created from the
// reservation page, including the cart hand-off prefill target.
package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// Reservation statuses.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ErrNotFound is returned when a requested reservation does not exist.
var ErrNotFound = errors.New("reservation not found")

// Reservation is one booked workshop slot. Date and TimeSlot stay as the
// ISO strings the form submits ("2026-08-29", "14:00").
type Reservation struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Service            string    `json:"service"`
	Date               string    `json:"reservation_date"`
	TimeSlot           string    `json:"reservation_time"`
	CustomerName       string    `json:"customer_name"`
	CustomerEmail      string    `json:"customer_email"`
	CustomerPhone      string    `json:"customer_phone"`
	Description        string    `json:"description"`
	ConfirmationNumber string    `json:"confirmation_number"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Repository defines persistence operations for reservations.
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	// ListByUser returns the user's reservations, most recent date first.
	ListByUser(ctx context.Context, userID string) ([]Reservation, error)
	Update(ctx context.Context, r *Reservation) error
}

// NewConfirmationNumber builds the human-facing booking reference:
// RES-<unix millis>-<9 uppercase token chars>.
func NewConfirmationNumber(now time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:9]
	return fmt.Sprintf("RES-%d-%s", now.UnixMilli(), token)
}

// Service applies the creation and cancellation rules on top of a
// Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a reservation Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateRequest holds the reservation form input.
type CreateRequest struct {
	UserID        string
	Service       string
	Date          string
	TimeSlot      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Description   string
}

// Create persists a confirmed reservation with a fresh confirmation number.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	now := s.now()
	r := &Reservation{
		ID:                 uuid.New().String(),
		UserID:             req.UserID,
		Service:            req.Service,
		Date:               req.Date,
		TimeSlot:           req.TimeSlot,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		Description:        req.Description,
		ConfirmationNumber: NewConfirmationNumber(now),
		Status:             StatusConfirmed,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, errors.Wrap(err, "create reservation")
	}
	return r, nil
}

// Get returns one reservation by id.
func (s *Service) Get(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByUser returns the user's reservations, most recent date first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Reservation, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update applies field changes to an existing reservation.
func (s *Service) Update(ctx context.Context, r *Reservation) error {
	r.UpdatedAt = s.now()
	return s.repo.Update(ctx, r)
}

// Cancel flips a reservation to the cancelled status.
func (s *Service) Cancel(ctx context.Context, id string) (*Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Status = StatusCancelled
	r.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, errors.Wrap(err, "update reservation")
	}
	return r, nil
}
