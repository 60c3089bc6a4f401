package handler

import (
	"net/http"
	"strings"

	"github.com/go-faster/jx"
)

func (h *Handler) listContent(w http.ResponseWriter, r *http.Request) {
	if h.contents == nil {
		writeError(w, http.StatusServiceUnavailable, "site content is not configured")
		return
	}

	entries, err := h.contents.List(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		for _, entry := range entries {
			e.FieldStart(entry.Key)
			e.Str(entry.Value)
		}
		e.ObjEnd()
	})
}

type upsertContentRequest struct {
	Value string `json:"value"`
}

func (h *Handler) upsertContent(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if !h.requireOperator(w, r, sess) {
		return
	}
	if h.contents == nil {
		writeError(w, http.StatusServiceUnavailable, "site content is not configured")
		return
	}

	key := strings.TrimSpace(r.PathValue("key"))
	if key == "" {
		writeError(w, http.StatusBadRequest, "content key is required")
		return
	}

	var req upsertContentRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contents.Upsert(r.Context(), key, req.Value); err != nil {
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("key")
		e.Str(key)
		e.FieldStart("value")
		e.Str(req.Value)
		e.ObjEnd()
	})
}
