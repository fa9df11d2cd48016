package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/users"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type Handler struct {
	Users *users.Service
}

func NewHandler(usersSvc *users.Service) *Handler {
	return &Handler{Users: usersSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.With(middleware.RequireUser).Get("/auth/me", h.handleMe)

	r.Route("/admin/users", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", h.handleListUsers)
		r.Post("/", h.handleCreateUser)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	user, token, err := h.Users.Authenticate(r.Context(), payload.Email, payload.Password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		return
	}

	api.Success(w, map[string]any{"token": token, "user": user}, requestID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	account, err := h.Users.Get(r.Context(), user.UserID)
	if errors.Is(err, users.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "account not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "account_failed", "failed to load account", requestID)
		return
	}
	api.Success(w, account, requestID)
}

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if payload.Email == "" || payload.Name == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email, name and password are required", requestID)
		return
	}

	created, err := h.Users.Register(r.Context(), payload.Email, payload.Name, payload.Password, payload.Admin)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "user_create_failed", "failed to create user", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	listed, err := h.Users.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "users_failed", "failed to list users", requestID)
		return
	}
	api.Success(w, listed, requestID)
}
