package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/maxpc/boutique/internal/domain/checkout"
	"github.com/maxpc/boutique/internal/domain/reservation"
)

func encodeReservation(e *jx.Encoder, r reservation.Reservation) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(r.ID)
	e.FieldStart("userId")
	e.Str(r.UserID)
	e.FieldStart("service")
	e.Str(r.Service)
	e.FieldStart("date")
	e.Str(r.Date)
	e.FieldStart("time")
	e.Str(r.TimeSlot)
	e.FieldStart("customerName")
	e.Str(r.CustomerName)
	e.FieldStart("customerEmail")
	e.Str(r.CustomerEmail)
	e.FieldStart("customerPhone")
	e.Str(r.CustomerPhone)
	e.FieldStart("description")
	e.Str(r.Description)
	e.FieldStart("confirmationNumber")
	e.Str(r.ConfirmationNumber)
	e.FieldStart("status")
	e.Str(r.Status)
	e.ObjEnd()
}

type createReservationRequest struct {
	UserID        string `json:"userId"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Description   string `json:"description"`
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	if h.reservations == nil {
		writeError(w, http.StatusServiceUnavailable, "reservations are not configured")
		return
	}

	var req createReservationRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Service == "" || req.Date == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "service, date and time are required")
		return
	}

	res, err := h.reservations.Create(r.Context(), reservation.CreateRequest{
		UserID:        req.UserID,
		Service:       req.Service,
		Date:          req.Date,
		TimeSlot:      req.Time,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Description:   req.Description,
	})
	if err != nil {
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		encodeReservation(e, *res)
	})
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	if h.reservations == nil {
		writeError(w, http.StatusServiceUnavailable, "reservations are not configured")
		return
	}

	userID := r.URL.Query().Get("user")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user query parameter is required")
		return
	}

	list, err := h.reservations.ListByUser(r.Context(), userID)
	if err != nil {
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("reservations")
		e.ArrStart()
		for _, res := range list {
			encodeReservation(e, res)
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}

// prefillReservation applies the checkout hand-off contract to the incoming
// query and returns the resulting form state.
func (h *Handler) prefillReservation(w http.ResponseWriter, r *http.Request) {
	form := checkout.Form{Service: r.URL.Query().Get("service")}
	applied := checkout.Prefill(r.URL.Query(), &form)

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("applied")
		e.Bool(applied)
		e.FieldStart("description")
		e.Str(form.Description)
		e.FieldStart("service")
		e.Str(form.Service)
		e.ObjEnd()
	})
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	if h.reservations == nil {
		writeError(w, http.StatusServiceUnavailable, "reservations are not configured")
		return
	}

	res, err := h.reservations.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, reservation.ErrNotFound) {
			writeError(w, http.StatusNotFound, "reservation not found")
			return
		}
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeReservation(e, *res)
	})
}

type updateReservationRequest struct {
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Description   string `json:"description"`
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	if h.reservations == nil {
		writeError(w, http.StatusServiceUnavailable, "reservations are not configured")
		return
	}

	res, err := h.reservations.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, reservation.ErrNotFound) {
			writeError(w, http.StatusNotFound, "reservation not found")
			return
		}
		writeServerError(w, r, err)
		return
	}

	var req updateReservationRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Service != "" {
		res.Service = req.Service
	}
	if req.Date != "" {
		res.Date = req.Date
	}
	if req.Time != "" {
		res.TimeSlot = req.Time
	}
	if req.CustomerName != "" {
		res.CustomerName = req.CustomerName
	}
	if req.CustomerEmail != "" {
		res.CustomerEmail = req.CustomerEmail
	}
	if req.CustomerPhone != "" {
		res.CustomerPhone = req.CustomerPhone
	}
	if req.Description != "" {
		res.Description = req.Description
	}

	if err := h.reservations.Update(r.Context(), res); err != nil {
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeReservation(e, *res)
	})
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	if h.reservations == nil {
		writeError(w, http.StatusServiceUnavailable, "reservations are not configured")
		return
	}

	res, err := h.reservations.Cancel(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, reservation.ErrNotFound) {
			writeError(w, http.StatusNotFound, "reservation not found")
			return
		}
		writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		encodeReservation(e, *res)
	})
}
