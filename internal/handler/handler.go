// Package handler implements the HTTP API: catalog, cart and detail view,
// checkout hand-off, site content, reservations, contact relay and the
// operator endpoints.
package handler

import (
	"net/http"

	"github.com/maxpc/boutique/internal/contact"
	"github.com/maxpc/boutique/internal/domain/admin"
	"github.com/maxpc/boutique/internal/domain/content"
	"github.com/maxpc/boutique/internal/domain/product"
	"github.com/maxpc/boutique/internal/domain/reservation"
	"github.com/maxpc/boutique/internal/shop"
)

// Config holds non-dependency handler settings.
type Config struct {
	// ReservationBaseURL is the page the checkout hand-off links to.
	ReservationBaseURL string
	// OperatorPepper keys the HMAC over operator session tokens.
	OperatorPepper []byte
}

// Handler carries the wired dependencies for all API routes. Optional
// dependencies may be nil; their routes answer 503.
type Handler struct {
	cfg      Config
	catalog  *shop.Catalog
	sessions *shop.Manager

	writer       product.Writer
	contents     content.Repository
	reservations *reservation.Service
	relay        contact.Relay

	auth     admin.Authenticator
	policy   *admin.Policy
	throttle *admin.LoginThrottle
}

// NewHandler constructs a Handler. writer, contents, reservations, relay and
// auth may be nil when the matching backend is not configured.
func NewHandler(
	cfg Config,
	catalog *shop.Catalog,
	sessions *shop.Manager,
	writer product.Writer,
	contents content.Repository,
	reservations *reservation.Service,
	relay contact.Relay,
	auth admin.Authenticator,
	policy *admin.Policy,
) *Handler {
	return &Handler{
		cfg:          cfg,
		catalog:      catalog,
		sessions:     sessions,
		writer:       writer,
		contents:     contents,
		reservations: reservations,
		relay:        relay,
		auth:         auth,
		policy:       policy,
		throttle:     admin.NewLoginThrottle(),
	}
}

// Routes registers all API routes on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.HandleFunc("GET /api/products/{id}", h.getProduct)

	mux.HandleFunc("GET /api/cart", h.getCart)
	mux.HandleFunc("POST /api/cart/items", h.addCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.removeCartItem)
	mux.HandleFunc("DELETE /api/cart", h.clearCart)

	mux.HandleFunc("POST /api/cart/detail", h.openDetail)
	mux.HandleFunc("DELETE /api/cart/detail", h.closeDetail)
	mux.HandleFunc("POST /api/cart/detail/add", h.addFromDetail)

	mux.HandleFunc("GET /api/content", h.listContent)
	mux.HandleFunc("POST /api/contact", h.sendContact)

	mux.HandleFunc("POST /api/reservations", h.createReservation)
	mux.HandleFunc("GET /api/reservations", h.listReservations)
	mux.HandleFunc("GET /api/reservations/prefill", h.prefillReservation)
	mux.HandleFunc("GET /api/reservations/{id}", h.getReservation)
	mux.HandleFunc("PUT /api/reservations/{id}", h.updateReservation)
	mux.HandleFunc("DELETE /api/reservations/{id}", h.cancelReservation)

	mux.HandleFunc("POST /api/admin/login", h.adminLogin)
	mux.HandleFunc("POST /api/admin/logout", h.adminLogout)
	mux.HandleFunc("POST /api/admin/edit-mode", h.setEditMode)
	mux.HandleFunc("PUT /api/admin/products/{id}", h.updateProduct)
	mux.HandleFunc("DELETE /api/admin/products/{id}", h.deleteProduct)
	mux.HandleFunc("PUT /api/admin/content/{key}", h.upsertContent)
}

// session resolves the visitor session from the X-Session-ID header, minting
// one when absent, and echoes the ID on the response.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *shop.Session {
	sess := h.sessions.Get(r.Header.Get("X-Session-ID"))
	w.Header().Set("X-Session-ID", sess.ID)
	return sess
}
