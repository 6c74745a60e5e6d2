package directoryhandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/directory"
	"ems/internal/domain/result"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleListDepartments)
		r.Get("/{id}", h.handleGetDepartment)
	})
	r.Route("/designations", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleListDesignations)
		r.Get("/{id}", h.handleGetDesignation)
	})
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	res := h.Service.ListDepartments(r.Context())
	if !res.Success {
		api.WriteJSON(w, http.StatusBadRequest, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	res := h.Service.GetDepartment(r.Context(), id)
	if !res.Success {
		api.WriteJSON(w, http.StatusNotFound, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListDesignations(w http.ResponseWriter, r *http.Request) {
	res := h.Service.ListDesignations(r.Context())
	if !res.Success {
		api.WriteJSON(w, http.StatusBadRequest, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGetDesignation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	res := h.Service.GetDesignation(r.Context(), id)
	if !res.Success {
		api.WriteJSON(w, http.StatusNotFound, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[struct{}]("Invalid id"))
		return 0, false
	}
	return id, true
}
