package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/maxpc/boutique/internal/domain/product"
	"github.com/maxpc/boutique/internal/view"
)

func encodeCard(e *jx.Encoder, c view.Card) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int64(c.ID)
	e.FieldStart("name")
	e.Str(c.Name)
	e.FieldStart("price")
	e.Str(c.Price)
	e.FieldStart("desc")
	e.Str(c.Description)
	if c.Image != "" {
		e.FieldStart("image")
		e.Str(c.Image)
	}
	e.FieldStart("hasImage")
	e.Bool(c.HasImage)
	if c.Badge != "" {
		e.FieldStart("badge")
		e.Str(c.Badge)
	}
	if c.Status != "" {
		e.FieldStart("status")
		e.Str(c.Status)
	}
	e.FieldStart("chips")
	encodeStrings(e, c.Chips)
	e.FieldStart("disabled")
	e.Bool(c.Disabled)
	if c.Editable {
		e.FieldStart("editable")
		e.Bool(true)
	}
	e.ObjEnd()
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	cards := view.Render(h.catalog.Products(), r.URL.Query().Get("category"))
	if sess.EditMode() {
		view.MarkEditable(cards)
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("products")
		e.ArrStart()
		for _, c := range cards {
			encodeCard(e, c)
		}
		e.ArrEnd()
		e.FieldStart("note")
		e.Str(view.InstallNote)
		e.ObjEnd()
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.catalog.Find(id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeServerError(w, r, err)
		return
	}

	card := view.NewCard(p)
	if sess.EditMode() {
		card.Editable = true
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeCard(e, card)
	})
}
