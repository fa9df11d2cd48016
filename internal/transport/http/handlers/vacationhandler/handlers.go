package vacationhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/users"
	"hrdesk/internal/domain/vacation"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *vacation.Service
	Users   *users.Service
}

func NewHandler(service *vacation.Service, usersSvc *users.Service) *Handler {
	return &Handler{Service: service, Users: usersSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/vacations", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Post("/", h.handleSubmit)
		r.Get("/", h.handleListYear)
		r.Get("/balance", h.handleBalance)
		r.Get("/ledger.pdf", h.handleLedgerPDF)
		r.Get("/{vacationID}", h.handleGet)
		r.Put("/{vacationID}", h.handleUpdate)
		r.Delete("/{vacationID}", h.handleDelete)
		r.With(middleware.RequireAdmin).Post("/{vacationID}/approval", h.handleSetApproval)
	})

	r.Route("/admin/vacations", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/pending", h.handlePending)
		r.Post("/", h.handleAdminCreate)
		r.Put("/{vacationID}", h.handleAdminUpdate)
	})

	r.With(middleware.RequireAdmin).Put("/admin/employees/{employeeID}/allowance", h.handleSetTotalDays)
}

type submitRequest struct {
	Category vacation.Category `json:"category"`
	vacation.IntervalInput
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload submitRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	created, err := h.Service.Submit(r.Context(), user.UserID, payload.Category, payload.IntervalInput)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleListYear(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	year := shared.YearParam(r, h.Service.Clock.Now())

	listed, err := h.Service.ListYear(r.Context(), user.UserID, year)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, listed, requestID)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	year := shared.YearParam(r, h.Service.Clock.Now())

	bal, err := h.Service.GetBalance(r.Context(), user.UserID, year)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, bal, requestID)
}

func (h *Handler) handleLedgerPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	year := shared.YearParam(r, h.Service.Clock.Now())

	bal, err := h.Service.GetBalance(r.Context(), user.UserID, year)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	records, err := h.Service.ListYear(r.Context(), user.UserID, year)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="vacation-ledger-%d.pdf"`, year))
	if err := vacation.WriteLedgerPDF(w, user.Name, year, bal, records); err != nil {
		api.Fail(w, http.StatusInternalServerError, "ledger_failed", "failed to render ledger", requestID)
	}
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	req, err := h.Service.Get(r.Context(), chi.URLParam(r, "vacationID"))
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	if req.EmployeeID != user.UserID && !user.Admin {
		api.Fail(w, http.StatusForbidden, "forbidden", "not your request", requestID)
		return
	}
	api.Success(w, req, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "vacationID")

	if !h.ownRecord(w, r, id, user, requestID) {
		return
	}

	var payload submitRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, payload.Category, payload.IntervalInput)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	id := chi.URLParam(r, "vacationID")

	if !h.ownRecord(w, r, id, user, requestID) {
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"id": id}, requestID)
}

type approvalRequest struct {
	Approval vacation.Approval `json:"approval"`
}

func (h *Handler) handleSetApproval(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if !payload.Approval.Valid() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "unknown approval state", requestID)
		return
	}

	updated, err := h.Service.SetApproval(r.Context(), chi.URLParam(r, "vacationID"), payload.Approval)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	queue, err := h.Service.PendingDayOffs(r.Context())
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, queue, requestID)
}

type adminCreateRequest struct {
	EmployeeID string            `json:"employeeId"`
	Category   vacation.Category `json:"category"`
	vacation.IntervalInput
}

func (h *Handler) handleAdminCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload adminCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if payload.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employeeId is required", requestID)
		return
	}
	if _, err := h.Users.Get(r.Context(), payload.EmployeeID); errors.Is(err, users.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}

	created, err := h.Service.AdminCreate(r.Context(), payload.EmployeeID, payload.Category, payload.IntervalInput)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleAdminUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload submitRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	updated, err := h.Service.AdminUpdate(r.Context(), chi.URLParam(r, "vacationID"), payload.Category, payload.IntervalInput)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, updated, requestID)
}

type totalDaysRequest struct {
	TotalDays float64 `json:"totalDays"`
}

func (h *Handler) handleSetTotalDays(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload totalDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	bal, err := h.Service.SetTotalDays(r.Context(), chi.URLParam(r, "employeeID"), payload.TotalDays)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "failed to set allowance", requestID)
		return
	}
	api.Success(w, bal, requestID)
}

// ownRecord loads the record and checks the caller may touch it. Admins may
// touch everything.
func (h *Handler) ownRecord(w http.ResponseWriter, r *http.Request, id string, user middleware.UserContext, requestID string) bool {
	req, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err, requestID)
		return false
	}
	if req.EmployeeID != user.UserID && !user.Admin {
		api.Fail(w, http.StatusForbidden, "forbidden", "not your request", requestID)
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, vacation.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "vacation not found", requestID)
	case vacation.IsValidationError(err):
		api.Rejected(w, "rule_violation", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "vacation_failed", "request failed", requestID)
	}
}
