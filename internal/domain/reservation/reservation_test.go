package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	byID map[string]*Reservation
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[string]*Reservation)}
}

func (m *memoryRepo) Create(_ context.Context, r *Reservation) error {
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Reservation, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memoryRepo) ListByUser(_ context.Context, userID string) ([]Reservation, error) {
	var out []Reservation
	for _, r := range m.byID {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryRepo) Update(_ context.Context, r *Reservation) error {
	if _, ok := m.byID[r.ID]; !ok {
		return ErrNotFound
	}
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func TestNewConfirmationNumber(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got := NewConfirmationNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^RES-\d{13}-[A-Z0-9]{9}$`), got)
	assert.Contains(t, got, "RES-1749988800000-")

	// Tokens must differ between calls.
	assert.NotEqual(t, got, NewConfirmationNumber(now))
}

func TestService_Create(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

	r, err := svc.Create(context.Background(), CreateRequest{
		UserID:        "u-1",
		Service:       "installation",
		Date:          "2025-06-20",
		TimeSlot:      "14:00",
		CustomerName:  "Jean Dupont",
		CustomerEmail: "jean@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, StatusConfirmed, r.Status)
	assert.Regexp(t, `^RES-\d{13}-[A-Z0-9]{9}$`, r.ConfirmationNumber)

	stored, err := svc.Get(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, "installation", stored.Service)
	assert.Equal(t, "2025-06-20", stored.Date)
}

func TestService_Cancel(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	r, err := svc.Create(context.Background(), CreateRequest{UserID: "u-1", Service: "reparation"})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	stored, err := svc.Get(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
