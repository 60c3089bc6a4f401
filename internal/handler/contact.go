package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/maxpc/boutique/internal/contact"
)

func (h *Handler) sendContact(w http.ResponseWriter, r *http.Request) {
	if h.relay == nil {
		writeError(w, http.StatusServiceUnavailable, "contact relay is not configured")
		return
	}

	var msg contact.Message
	if err := readJSON(r, &msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := msg.Validate(); err != nil {
		if errors.Is(err, contact.ErrInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServerError(w, r, err)
		return
	}

	if err := h.relay.Send(r.Context(), msg); err != nil {
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("status")
		e.Str("sent")
		e.ObjEnd()
	})
}
