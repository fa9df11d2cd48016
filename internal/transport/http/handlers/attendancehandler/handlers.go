package attendancehandler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Post("/checkin", h.handleCheckIn)
		r.Post("/checkout", h.handleCheckOut)
		r.Get("/", h.handleList)
	})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	rec, err := h.Service.CheckIn(r.Context(), user.UserID, shared.ClientIP(r))
	switch {
	case errors.Is(err, attendance.ErrAddressNotAllowed):
		api.Fail(w, http.StatusForbidden, "address_not_allowed", "check in from an office address", requestID)
		return
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		api.Rejected(w, "already_checked_in", "already checked in today", requestID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "checkin_failed", "check-in failed", requestID)
		return
	}
	api.Created(w, rec, requestID)
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	rec, err := h.Service.CheckOut(r.Context(), user.UserID)
	switch {
	case errors.Is(err, attendance.ErrNoOpenRecord):
		api.Rejected(w, "no_open_record", "no open attendance record today", requestID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "checkout_failed", "check-out failed", requestID)
		return
	}
	api.Success(w, rec, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	now := h.Service.Clock.Now()
	year := shared.YearParam(r, now)
	month := now.Month()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "month must be 1..12", requestID)
			return
		}
		month = time.Month(parsed)
	}

	listed, err := h.Service.ListMonth(r.Context(), user.UserID, year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_failed", "failed to list attendance", requestID)
		return
	}
	api.Success(w, listed, requestID)
}
