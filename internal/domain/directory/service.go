// Package directory serves the read-only department and designation
// projections consumed by list screens and employee forms.
package directory

import (
	"context"
	"errors"
	"log/slog"

	"ems/internal/domain/model"
	"ems/internal/domain/result"
	"ems/internal/storage"
)

type DepartmentDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Description   *string `json:"description,omitempty"`
	ManagerID     *int64  `json:"managerId,omitempty"`
	ManagerName   *string `json:"managerName,omitempty"`
	EmployeeCount int64   `json:"employeeCount"`
	IsActive      bool    `json:"isActive"`
}

type DesignationDTO struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Code          string  `json:"code"`
	Description   *string `json:"description,omitempty"`
	Level         int     `json:"level"`
	EmployeeCount int64   `json:"employeeCount"`
	IsActive      bool    `json:"isActive"`
}

type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListDepartments(ctx context.Context) result.Result[[]DepartmentDTO] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[[]DepartmentDTO]("Error retrieving departments")
	}
	defer uow.Rollback(ctx)

	departments, err := uow.Departments().GetAll(ctx)
	if err != nil {
		slog.Error("department list failed", "err", err)
		return result.Fail[[]DepartmentDTO]("Error retrieving departments")
	}

	out := make([]DepartmentDTO, 0, len(departments))
	for _, d := range departments {
		dto, err := s.departmentDTO(ctx, uow, d)
		if err != nil {
			slog.Error("department projection failed", "id", d.ID, "err", err)
			return result.Fail[[]DepartmentDTO]("Error retrieving departments")
		}
		out = append(out, dto)
	}
	return result.Ok(out, "")
}

func (s *Service) GetDepartment(ctx context.Context, id int64) result.Result[DepartmentDTO] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[DepartmentDTO]("Error retrieving department")
	}
	defer uow.Rollback(ctx)

	department, err := uow.Departments().GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return result.Fail[DepartmentDTO]("Department not found")
	}
	if err != nil {
		slog.Error("department lookup failed", "id", id, "err", err)
		return result.Fail[DepartmentDTO]("Error retrieving department")
	}

	dto, err := s.departmentDTO(ctx, uow, department)
	if err != nil {
		slog.Error("department projection failed", "id", id, "err", err)
		return result.Fail[DepartmentDTO]("Error retrieving department")
	}
	return result.Ok(dto, "")
}

func (s *Service) ListDesignations(ctx context.Context) result.Result[[]DesignationDTO] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[[]DesignationDTO]("Error retrieving designations")
	}
	defer uow.Rollback(ctx)

	designations, err := uow.Designations().GetAll(ctx)
	if err != nil {
		slog.Error("designation list failed", "err", err)
		return result.Fail[[]DesignationDTO]("Error retrieving designations")
	}

	out := make([]DesignationDTO, 0, len(designations))
	for _, d := range designations {
		count, err := uow.Employees().Count(ctx, storage.Eq("designation_id", d.ID))
		if err != nil {
			slog.Error("designation count failed", "id", d.ID, "err", err)
			return result.Fail[[]DesignationDTO]("Error retrieving designations")
		}
		out = append(out, designationDTO(d, count))
	}
	return result.Ok(out, "")
}

func (s *Service) GetDesignation(ctx context.Context, id int64) result.Result[DesignationDTO] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[DesignationDTO]("Error retrieving designation")
	}
	defer uow.Rollback(ctx)

	designation, err := uow.Designations().GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return result.Fail[DesignationDTO]("Designation not found")
	}
	if err != nil {
		slog.Error("designation lookup failed", "id", id, "err", err)
		return result.Fail[DesignationDTO]("Error retrieving designation")
	}

	count, err := uow.Employees().Count(ctx, storage.Eq("designation_id", id))
	if err != nil {
		slog.Error("designation count failed", "id", id, "err", err)
		return result.Fail[DesignationDTO]("Error retrieving designation")
	}
	return result.Ok(designationDTO(designation, count), "")
}

func (s *Service) departmentDTO(ctx context.Context, uow *storage.UnitOfWork, d model.Department) (DepartmentDTO, error) {
	count, err := uow.Employees().Count(ctx, storage.Eq("department_id", d.ID))
	if err != nil {
		return DepartmentDTO{}, err
	}

	dto := DepartmentDTO{
		ID:            d.ID,
		Name:          d.Name,
		Code:          d.Code,
		Description:   d.Description,
		ManagerID:     d.ManagerID,
		EmployeeCount: count,
		IsActive:      d.IsActive,
	}
	if d.ManagerID != nil {
		manager, err := uow.Employees().GetByID(ctx, *d.ManagerID)
		if err == nil {
			name := manager.FirstName + " " + manager.LastName
			dto.ManagerName = &name
		} else if !errors.Is(err, storage.ErrNotFound) {
			return DepartmentDTO{}, err
		}
	}
	return dto, nil
}

func designationDTO(d model.Designation, employeeCount int64) DesignationDTO {
	return DesignationDTO{
		ID:            d.ID,
		Title:         d.Title,
		Code:          d.Code,
		Description:   d.Description,
		Level:         d.Level,
		EmployeeCount: employeeCount,
		IsActive:      d.IsActive,
	}
}
