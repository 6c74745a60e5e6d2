package reportshandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/model"
	"ems/internal/domain/reports"
	"ems/internal/domain/result"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuth).Get("/dashboard", h.handleDashboard)
	r.With(middleware.RequireRole(model.RoleAdmin, model.RoleHR)).Get("/reports/employees.pdf", h.handleRosterPDF)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	res := h.Service.Dashboard(r.Context())
	if !res.Success {
		api.WriteJSON(w, http.StatusBadRequest, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleRosterPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.Service.EmployeeRosterPDF(r.Context())
	if err != nil {
		slog.Error("roster pdf failed", "err", err)
		api.WriteJSON(w, http.StatusInternalServerError, result.Fail[struct{}]("Error generating report"))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
