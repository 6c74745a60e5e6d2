package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/auth"
	"ems/internal/transport/http/api"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/register", h.handleRegister)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Username) == "" || payload.Password == "" {
		api.WriteMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	response, err := h.Service.Login(r.Context(), payload.Username, payload.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		api.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("login failed", "err", err)
		api.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if msg := validateRegister(payload); msg != "" {
		api.WriteMessage(w, http.StatusBadRequest, msg)
		return
	}

	err := h.Service.Register(r.Context(), payload.Username, payload.Email, payload.Password)
	switch {
	case errors.Is(err, auth.ErrDuplicateUsername):
		api.WriteMessage(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, auth.ErrDuplicateEmail):
		api.WriteMessage(w, http.StatusBadRequest, "Email already exists")
	case err != nil:
		slog.Error("registration failed", "err", err)
		api.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		api.WriteMessage(w, http.StatusOK, "User registered successfully")
	}
}

func validateRegister(payload registerRequest) string {
	if strings.TrimSpace(payload.Username) == "" {
		return "Username is required"
	}
	if len(payload.Username) > 50 {
		return "Username cannot exceed 50 characters"
	}
	if strings.TrimSpace(payload.Email) == "" || !strings.Contains(payload.Email, "@") {
		return "A valid email is required"
	}
	if len(payload.Password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}
