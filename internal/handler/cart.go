package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/maxpc/boutique/internal/domain/cart"
	"github.com/maxpc/boutique/internal/domain/checkout"
	"github.com/maxpc/boutique/internal/domain/pricing"
	"github.com/maxpc/boutique/internal/domain/product"
	"github.com/maxpc/boutique/internal/shop"
)

func encodeCartLine(e *jx.Encoder, line cart.Line) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(line.Product.ID)
	e.FieldStart("name")
	e.Str(line.Product.Name)
	e.FieldStart("qty")
	e.Int(line.Qty)
	e.FieldStart("price")
	e.Str(pricing.Format(line.Product.Price))
	e.FieldStart("lineTotal")
	e.Str(pricing.Format(line.LineTotal))
	e.ObjEnd()
}

func (h *Handler) encodeCartSnapshot(e *jx.Encoder, snap cart.Snapshot) {
	e.ObjStart()
	e.FieldStart("lines")
	e.ArrStart()
	for _, line := range snap.Lines {
		encodeCartLine(e, line)
	}
	e.ArrEnd()
	e.FieldStart("total")
	e.Str(pricing.Format(snap.Total))

	// Checkout hand-off: present only when there is something to hand off.
	if len(snap.Lines) > 0 {
		summary := checkout.BuildSummary(snap.Lines, snap.Total)
		e.FieldStart("summary")
		e.Str(summary)
		e.FieldStart("reservationUrl")
		e.Str(checkout.ReservationURL(h.cfg.ReservationBaseURL, summary))
	}
	e.ObjEnd()
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		h.encodeCartSnapshot(e, sess.Cart().Snapshot())
	})
}

type cartItemRequest struct {
	ID int64 `json:"id"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	var req cartItemRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.catalog.Find(req.ID)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err := sess.Cart().Add(p); err != nil {
		if errors.Is(err, product.ErrSold) {
			writeError(w, http.StatusConflict, "product already sold")
			return
		}
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		h.encodeCartSnapshot(e, sess.Cart().Snapshot())
	})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	if !sess.Cart().RemoveOne(id) {
		writeError(w, http.StatusNotFound, "not in cart")
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		h.encodeCartSnapshot(e, sess.Cart().Snapshot())
	})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.Cart().Clear()
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		h.encodeCartSnapshot(e, sess.Cart().Snapshot())
	})
}

func encodeDetailView(e *jx.Encoder, v shop.DetailView) {
	e.ObjStart()
	e.FieldStart("productId")
	e.Int64(v.ProductID)
	e.FieldStart("name")
	e.Str(v.Name)
	e.FieldStart("price")
	e.Str(v.Price)
	if v.Description != "" {
		e.FieldStart("desc")
		e.Str(v.Description)
	}
	if v.Image != "" {
		e.FieldStart("image")
		e.Str(v.Image)
	}
	e.FieldStart("hasImage")
	e.Bool(v.HasImage)
	e.FieldStart("chips")
	encodeStrings(e, v.Chips)
	if len(v.Specs) > 0 {
		e.FieldStart("specs")
		encodeStrings(e, v.Specs)
	}
	e.FieldStart("focus")
	e.Str(v.Focus)
	e.ObjEnd()
}

type openDetailRequest struct {
	ID    int64  `json:"id"`
	Focus string `json:"focus"`
}

func (h *Handler) openDetail(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	var req openDetailRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.catalog.Find(req.ID)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	detail, err := sess.OpenDetail(p, req.Focus)
	if err != nil {
		if errors.Is(err, product.ErrSold) {
			writeError(w, http.StatusConflict, "product already sold")
			return
		}
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeDetailView(e, detail)
	})
}

func (h *Handler) closeDetail(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	focus, ok := sess.CloseDetail()
	if !ok {
		writeError(w, http.StatusNotFound, "no detail view open")
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("restoreFocus")
		e.Str(focus)
		e.ObjEnd()
	})
}

func (h *Handler) addFromDetail(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	focus, err := sess.AddFromDetail()
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrNoDetail):
			writeError(w, http.StatusNotFound, "no detail view open")
		case errors.Is(err, product.ErrSold):
			writeError(w, http.StatusConflict, "product already sold")
		default:
			writeServerError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("restoreFocus")
		e.Str(focus)
		e.FieldStart("cart")
		h.encodeCartSnapshot(e, sess.Cart().Snapshot())
		e.ObjEnd()
	})
}
