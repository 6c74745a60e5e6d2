package employeehandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/employee"
	"ems/internal/domain/model"
	"ems/internal/domain/result"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequireAuth).Get("/", h.handleList)
		r.With(middleware.RequireRole(model.RoleAdmin, model.RoleHR)).Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.With(middleware.RequireAuth).Get("/", h.handleGet)
			r.With(middleware.RequireRole(model.RoleAdmin, model.RoleHR)).Put("/", h.handleUpdate)
			r.With(middleware.RequireRole(model.RoleAdmin)).Delete("/", h.handleDelete)
			r.With(middleware.RequireRole(model.RoleAdmin, model.RoleHR, model.RoleManager)).Get("/salaries", h.handleListSalaries)
			r.With(middleware.RequireRole(model.RoleAdmin, model.RoleHR)).Post("/salaries", h.handleAssignSalary)
		})
	})
}

type employeeRequest struct {
	ID                 int64   `json:"id"`
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	Email              string  `json:"email"`
	PhoneNumber        *string `json:"phoneNumber"`
	DateOfBirth        string  `json:"dateOfBirth"`
	JoiningDate        string  `json:"joiningDate"`
	Gender             string  `json:"gender"`
	Address            *string `json:"address"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	Country            *string `json:"country"`
	PostalCode         *string `json:"postalCode"`
	DepartmentID       int64   `json:"departmentId"`
	DesignationID      int64   `json:"designationId"`
	ReportingManagerID *int64  `json:"reportingManagerId"`
}

type salaryRequest struct {
	BasicSalary        float64  `json:"basicSalary"`
	HouseRentAllowance *float64 `json:"houseRentAllowance"`
	TransportAllowance *float64 `json:"transportAllowance"`
	MedicalAllowance   *float64 `json:"medicalAllowance"`
	OtherAllowances    *float64 `json:"otherAllowances"`
	TaxDeduction       *float64 `json:"taxDeduction"`
	OtherDeductions    *float64 `json:"otherDeductions"`
	EffectiveFrom      string   `json:"effectiveFrom"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	p := shared.ParsePagination(r, 10)
	res := h.Service.List(r.Context(), p.PageNumber, p.PageSize, p.SearchTerm)
	if !res.Success {
		api.WriteJSON(w, http.StatusBadRequest, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	res := h.Service.Get(r.Context(), id)
	if !res.Success {
		api.WriteJSON(w, http.StatusNotFound, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[employee.DTO]("Invalid request payload"))
		return
	}

	in, issues := payload.toInput()
	if len(issues) > 0 {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[employee.DTO]("Validation failed", issues...))
		return
	}

	res := h.Service.Create(r.Context(), in, actor(r))
	if !res.Success {
		api.WriteJSON(w, http.StatusBadRequest, res)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/v1/employees/%d", res.Data.ID))
	api.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[employee.DTO]("Invalid request payload"))
		return
	}
	if payload.ID != id {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[employee.DTO]("ID mismatch"))
		return
	}

	in, issues := payload.toInput()
	if len(issues) > 0 {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[employee.DTO]("Validation failed", issues...))
		return
	}

	res := h.Service.Update(r.Context(), employee.UpdateInput{ID: id, CreateInput: in}, actor(r))
	if !res.Success {
		api.WriteJSON(w, http.StatusBadRequest, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	res := h.Service.Delete(r.Context(), id)
	if !res.Success {
		api.WriteJSON(w, http.StatusBadRequest, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListSalaries(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	res := h.Service.Salaries(r.Context(), id)
	if !res.Success {
		status := http.StatusBadRequest
		if res.Message != nil && *res.Message == employee.ErrNotFound.Error() {
			status = http.StatusNotFound
		}
		api.WriteJSON(w, status, res)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleAssignSalary(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var payload salaryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[model.Salary]("Invalid request payload"))
		return
	}

	v := shared.NewValidator()
	if payload.BasicSalary <= 0 {
		v.Add("basicSalary", "must be greater than zero")
	}
	effectiveFrom, _ := v.Date("effectiveFrom", payload.EffectiveFrom)
	if v.HasIssues() {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[model.Salary]("Validation failed", v.Issues()...))
		return
	}

	res := h.Service.AssignSalary(r.Context(), id, employee.SalaryInput{
		BasicSalary:        payload.BasicSalary,
		HouseRentAllowance: payload.HouseRentAllowance,
		TransportAllowance: payload.TransportAllowance,
		MedicalAllowance:   payload.MedicalAllowance,
		OtherAllowances:    payload.OtherAllowances,
		TaxDeduction:       payload.TaxDeduction,
		OtherDeductions:    payload.OtherDeductions,
		EffectiveFrom:      effectiveFrom,
	}, actor(r))
	if !res.Success {
		status := http.StatusBadRequest
		if res.Message != nil && *res.Message == employee.ErrNotFound.Error() {
			status = http.StatusNotFound
		}
		api.WriteJSON(w, status, res)
		return
	}
	api.WriteJSON(w, http.StatusCreated, res)
}

// toInput validates the payload and converts it into a service input. The
// issue list is empty exactly when the input is usable.
func (p employeeRequest) toInput() (employee.CreateInput, []string) {
	v := shared.NewValidator()
	v.Required("firstName", p.FirstName, "first name is required")
	v.MaxLen("firstName", p.FirstName, 50, "first name cannot exceed 50 characters")
	v.Required("lastName", p.LastName, "last name is required")
	v.MaxLen("lastName", p.LastName, 50, "last name cannot exceed 50 characters")
	v.Required("email", p.Email, "email is required")
	v.Email("email", p.Email)
	v.Required("gender", p.Gender, "gender is required")
	v.Positive("departmentId", p.DepartmentID, "department is required")
	v.Positive("designationId", p.DesignationID, "designation is required")

	dateOfBirth, dobOK := v.Date("dateOfBirth", p.DateOfBirth)
	if dobOK {
		v.Before("dateOfBirth", dateOfBirth, time.Now().AddDate(-18, 0, 0), "employee must be at least 18 years old")
	}
	joiningDate, _ := v.Date("joiningDate", p.JoiningDate)

	if v.HasIssues() {
		return employee.CreateInput{}, v.Issues()
	}
	return employee.CreateInput{
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Email:              p.Email,
		PhoneNumber:        p.PhoneNumber,
		DateOfBirth:        dateOfBirth,
		JoiningDate:        joiningDate,
		Gender:             p.Gender,
		Address:            p.Address,
		City:               p.City,
		State:              p.State,
		Country:            p.Country,
		PostalCode:         p.PostalCode,
		DepartmentID:       p.DepartmentID,
		DesignationID:      p.DesignationID,
		ReportingManagerID: p.ReportingManagerID,
	}, nil
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil || id < 1 {
		api.WriteJSON(w, http.StatusBadRequest, result.Fail[struct{}]("Invalid employee id"))
		return 0, false
	}
	return id, true
}

func actor(r *http.Request) string {
	if user, ok := middleware.GetUser(r.Context()); ok {
		return user.Username
	}
	return "System"
}
