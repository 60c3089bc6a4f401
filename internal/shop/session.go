package shop

import (
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/maxpc/boutique/internal/domain/admin"
	"github.com/maxpc/boutique/internal/domain/cart"
	"github.com/maxpc/boutique/internal/domain/pricing"
	"github.com/maxpc/boutique/internal/domain/product"
)

// ErrNoDetail is returned when a detail action runs without an open view.
var ErrNoDetail = errors.New("no detail view open")

// DetailFocusAdd names the control the detail view initially focuses.
const DetailFocusAdd = "add"

// DetailView is the projection shown in the product detail pane.
type DetailView struct {
	ProductID   int64    `json:"product_id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	HasImage    bool     `json:"has_image"`
	Chips       []string `json:"chips,omitempty"`
	Specs       []string `json:"specs,omitempty"`
	Focus       string   `json:"focus"`
}

func newDetailView(p product.Product) DetailView {
	var chips []string
	for _, c := range []string{p.Meta, p.Badge, p.Category, p.Condition, p.Status} {
		if c != "" {
			chips = append(chips, c)
		}
	}
	return DetailView{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       pricing.Format(p.Price),
		Description: p.Description,
		Image:       p.Image,
		HasImage:    p.Image != "",
		Chips:       chips,
		Specs:       p.Specs,
		Focus:       DetailFocusAdd,
	}
}

type detailState struct {
	open        bool
	product     product.Product
	view        DetailView
	returnFocus string
}

// Session is one visitor's server-side state. All methods are safe for
// concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     *cart.Store
	detail   detailState
	operator *admin.Operator
	// HMAC of the bearer token issued at login, never the token itself.
	operatorTokenHash string
	editMode          bool
	lastSeen          time.Time
}

// NewSession creates an empty session.
func NewSession(id string) *Session {
	return &Session{
		ID:       id,
		cart:     cart.NewStore(),
		lastSeen: time.Now(),
	}
}

// Cart returns the session's cart store.
func (s *Session) Cart() *cart.Store {
	return s.cart
}

// Touch refreshes the idle timer.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns the time of the last request on this session.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// OpenDetail shows p in the detail view and remembers focusRef, the control
// to restore focus to on close. Opening while already open replaces the
// current view. Sold products do not open.
func (s *Session) OpenDetail(p product.Product, focusRef string) (DetailView, error) {
	if p.IsSold() {
		return DetailView{}, product.ErrSold
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.detail = detailState{
		open:        true,
		product:     p,
		view:        newDetailView(p),
		returnFocus: focusRef,
	}
	return s.detail.view, nil
}

// Detail returns the open view, if any.
func (s *Session) Detail() (DetailView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detail.view, s.detail.open
}

// CloseDetail dismisses the view and returns the focus ref captured at open
// time. ok is false when nothing was open.
func (s *Session) CloseDetail() (returnFocus string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.detail.open {
		return "", false
	}
	returnFocus = s.detail.returnFocus
	s.detail = detailState{}
	return returnFocus, true
}

// AddFromDetail adds the product captured at open time to the cart, then
// closes the view. It returns the focus ref to restore.
func (s *Session) AddFromDetail() (returnFocus string, err error) {
	s.mu.Lock()
	if !s.detail.open {
		s.mu.Unlock()
		return "", ErrNoDetail
	}
	p := s.detail.product
	returnFocus = s.detail.returnFocus
	s.detail = detailState{}
	s.mu.Unlock()

	if err := s.cart.Add(p); err != nil {
		return "", err
	}
	return returnFocus, nil
}

// SetOperator records a signed-in operator and the HMAC of their token.
func (s *Session) SetOperator(op admin.Operator, tokenHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operator = &op
	s.operatorTokenHash = tokenHash
	s.editMode = false
}

// Operator returns the signed-in operator and their token HMAC.
func (s *Session) Operator() (admin.Operator, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.operator == nil {
		return admin.Operator{}, "", false
	}
	return *s.operator, s.operatorTokenHash, true
}

// ClearOperator signs the operator out and leaves edit mode.
func (s *Session) ClearOperator() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operator = nil
	s.operatorTokenHash = ""
	s.editMode = false
}

// SetEditMode toggles the inline editing overlay for this operator.
func (s *Session) SetEditMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = on
}

// EditMode reports whether inline editing is active.
func (s *Session) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}
