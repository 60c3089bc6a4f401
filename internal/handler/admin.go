package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/maxpc/boutique/internal/domain/admin"
	"github.com/maxpc/boutique/internal/domain/product"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if h.auth == nil || h.policy == nil {
		writeError(w, http.StatusServiceUnavailable, "operator login is not configured")
		return
	}

	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	key := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.throttle.Allow(key) {
		writeError(w, http.StatusTooManyRequests, "too many attempts, retry in a minute")
		return
	}

	op, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrUnauthorized) {
			h.throttle.Fail(key)
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeServerError(w, r, err)
		return
	}

	isAdmin, err := h.policy.IsAdmin(r.Context(), op)
	if err != nil {
		zctx.From(r.Context()).Warn("admin directory lookup failed",
			zap.String("email", op.Email), zap.Error(err))
	}
	if !isAdmin {
		h.throttle.Fail(key)
		writeError(w, http.StatusForbidden, "account is not an operator")
		return
	}

	h.throttle.Reset(key)

	token := uuid.New().String()
	sess.SetOperator(op, h.hashToken(token))

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("token")
		e.Str(token)
		e.FieldStart("email")
		e.Str(op.Email)
		e.ObjEnd()
	})
}

func (h *Handler) adminLogout(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if !h.requireOperator(w, r, sess) {
		return
	}

	sess.ClearOperator()
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("status")
		e.Str("signed out")
		e.ObjEnd()
	})
}

type editModeRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) setEditMode(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if !h.requireOperator(w, r, sess) {
		return
	}

	var req editModeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess.SetEditMode(req.Enabled)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("editMode")
		e.Bool(req.Enabled)
		e.ObjEnd()
	})
}

// updateProductRequest carries a partial product payload; nil fields keep
// the stored value.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"desc"`
	Meta        *string  `json:"meta"`
	Badge       *string  `json:"badge"`
	Condition   *string  `json:"condition"`
	Status      *string  `json:"status"`
	Image       *string  `json:"image"`
	Specs       *string  `json:"specs"`
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if !h.requireOperator(w, r, sess) {
		return
	}
	if h.writer == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog is read-only")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	current, err := h.catalog.Find(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	var req updateProductRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Category != nil {
		current.Category = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			writeError(w, http.StatusBadRequest, "price must not be negative")
			return
		}
		current.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Meta != nil {
		current.Meta = *req.Meta
	}
	if req.Badge != nil {
		current.Badge = *req.Badge
	}
	if req.Condition != nil {
		current.Condition = *req.Condition
	}
	if req.Status != nil {
		current.Status = *req.Status
	}
	if req.Image != nil {
		current.Image = *req.Image
	}
	if req.Specs != nil {
		current.Specs = product.SplitSpecs(*req.Specs)
	}

	if err := h.writer.Update(r.Context(), current); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeServerError(w, r, err)
		return
	}

	// The write is only acknowledged once the served catalog reflects it.
	h.catalog.Reload(r.Context())

	updated, err := h.catalog.Find(id)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeProduct(e, updated)
	})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if !h.requireOperator(w, r, sess) {
		return
	}
	if h.writer == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog is read-only")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.writer.Delete(r.Context(), id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeServerError(w, r, err)
		return
	}

	h.catalog.Reload(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func encodeProduct(e *jx.Encoder, p product.Product) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(p.ID)
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("category")
	e.Str(p.Category)
	e.FieldStart("price")
	e.Str(p.Price.StringFixed(2))
	e.FieldStart("desc")
	e.Str(p.Description)
	if p.Meta != "" {
		e.FieldStart("meta")
		e.Str(p.Meta)
	}
	if p.Badge != "" {
		e.FieldStart("badge")
		e.Str(p.Badge)
	}
	if p.Condition != "" {
		e.FieldStart("condition")
		e.Str(p.Condition)
	}
	if p.Status != "" {
		e.FieldStart("status")
		e.Str(p.Status)
	}
	if p.Image != "" {
		e.FieldStart("image")
		e.Str(p.Image)
	}
	if len(p.Specs) > 0 {
		e.FieldStart("specs")
		encodeStrings(e, p.Specs)
	}
	e.ObjEnd()
}
