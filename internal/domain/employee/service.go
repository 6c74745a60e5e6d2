package employee

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ems/internal/domain/model"
	"ems/internal/domain/result"
	"ems/internal/storage"
)

// Service orchestrates employee CRUD: validation-adjacent uniqueness checks,
// code generation, DTO projection, pagination and search. Each operation
// runs inside one unit of work and commits at most once.
type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// List returns one page of employees. The search term, when present, is
// matched in the store as a case-insensitive substring over first name,
// last name, email and employee code; the total count is taken before
// slicing.
func (s *Service) List(ctx context.Context, pageNumber, pageSize int, searchTerm string) result.Result[result.PaginatedList[DTO]] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return s.listFailure(err)
	}
	defer uow.Rollback(ctx)

	employees, err := uow.Employees().GetAllWithDetails(ctx, strings.TrimSpace(searchTerm))
	if err != nil {
		return s.listFailure(err)
	}

	totalCount := len(employees)
	pageNumber, pageSize = clampPage(pageNumber, pageSize)

	items := make([]DTO, 0, pageSize)
	for _, e := range pageSlice(employees, pageNumber, pageSize) {
		items = append(items, toDTO(e))
	}

	page := result.NewPaginatedList(items, pageNumber, pageSize, totalCount)
	slog.Info("employees listed", "count", len(items), "page", pageNumber, "totalPages", page.TotalPages)
	return result.Ok(page, "")
}

// Get returns one employee projection or a not-found failure.
func (s *Service) Get(ctx context.Context, id int64) result.Result[DTO] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[DTO]("Error retrieving employee")
	}
	defer uow.Rollback(ctx)

	details, err := uow.Employees().GetByIDWithDetails(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Warn("employee not found", "id", id)
		return result.Fail[DTO](ErrNotFound.Error())
	}
	if err != nil {
		slog.Error("employee lookup failed", "id", id, "err", err)
		return result.Fail[DTO]("Error retrieving employee")
	}
	return result.Ok(toDTO(details), "")
}

// Create persists a new employee. The email must be free among non-deleted
// employees; the code comes from the unfiltered row count so a soft-deleted
// employee still advances the sequence.
func (s *Service) Create(ctx context.Context, in CreateInput, actor string) result.Result[DTO] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[DTO]("Error creating employee")
	}
	defer uow.Rollback(ctx)

	taken, err := uow.Employees().Exists(ctx, storage.EqFold("email", in.Email))
	if err != nil {
		slog.Error("employee email check failed", "err", err)
		return result.Fail[DTO]("Error creating employee")
	}
	if taken {
		return result.Fail[DTO](ErrDuplicateEmail.Error())
	}

	if msg := s.checkReferences(ctx, uow, in, 0); msg != "" {
		return result.Fail[DTO](msg)
	}

	total, err := uow.Employees().CountAll(ctx)
	if err != nil {
		slog.Error("employee count failed", "err", err)
		return result.Fail[DTO]("Error creating employee")
	}

	emp := model.Employee{
		Base: model.Base{
			CreatedAt: time.Now().UTC(),
			CreatedBy: actor,
			IsActive:  true,
		},
		EmployeeCode: nextCode(total),
	}
	in.apply(&emp)

	if err := uow.Employees().Add(ctx, &emp); err != nil {
		slog.Error("employee insert failed", "err", err)
		return createFailure(err)
	}

	details, err := uow.Employees().GetByIDWithDetails(ctx, emp.ID)
	if err != nil {
		slog.Error("created employee readback failed", "id", emp.ID, "err", err)
		return result.Fail[DTO]("Error creating employee")
	}

	if _, err := uow.Complete(ctx); err != nil {
		slog.Error("employee create commit failed", "err", err)
		return createFailure(err)
	}

	slog.Info("employee created", "code", emp.EmployeeCode, "createdBy", actor)
	return result.Ok(toDTO(details), "Employee created successfully")
}

// Update overwrites the mutable fields of an existing employee.
func (s *Service) Update(ctx context.Context, in UpdateInput, actor string) result.Result[DTO] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[DTO]("Error updating employee")
	}
	defer uow.Rollback(ctx)

	emp, err := uow.Employees().GetByID(ctx, in.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return result.Fail[DTO](ErrNotFound.Error())
	}
	if err != nil {
		slog.Error("employee lookup failed", "id", in.ID, "err", err)
		return result.Fail[DTO]("Error updating employee")
	}

	taken, err := uow.Employees().Exists(ctx, storage.EqFold("email", in.Email), storage.NotEq("id", in.ID))
	if err != nil {
		slog.Error("employee email check failed", "err", err)
		return result.Fail[DTO]("Error updating employee")
	}
	if taken {
		return result.Fail[DTO](ErrDuplicateEmail.Error())
	}

	if msg := s.checkReferences(ctx, uow, in.CreateInput, in.ID); msg != "" {
		return result.Fail[DTO](msg)
	}

	in.CreateInput.apply(&emp)
	now := time.Now().UTC()
	emp.UpdatedAt = &now
	emp.UpdatedBy = &actor

	if err := uow.Employees().Update(ctx, &emp); err != nil {
		slog.Error("employee update failed", "id", in.ID, "err", err)
		return result.Fail[DTO]("Error updating employee")
	}

	details, err := uow.Employees().GetByIDWithDetails(ctx, emp.ID)
	if err != nil {
		slog.Error("updated employee readback failed", "id", emp.ID, "err", err)
		return result.Fail[DTO]("Error updating employee")
	}

	if _, err := uow.Complete(ctx); err != nil {
		slog.Error("employee update commit failed", "err", err)
		if storage.UniqueConstraint(err) == emailIndex {
			return result.Fail[DTO](ErrDuplicateEmail.Error())
		}
		return result.Fail[DTO]("Error updating employee")
	}

	slog.Info("employee updated", "id", in.ID, "updatedBy", actor)
	return result.Ok(toDTO(details), "Employee updated successfully")
}

// Delete flags the employee deleted and inactive. The row stays behind for
// the code sequence and is excluded from every default read from here on.
func (s *Service) Delete(ctx context.Context, id int64) result.Result[bool] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[bool]("Error deleting employee")
	}
	defer uow.Rollback(ctx)

	emp, err := uow.Employees().GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return result.Fail[bool](ErrNotFound.Error())
	}
	if err != nil {
		slog.Error("employee lookup failed", "id", id, "err", err)
		return result.Fail[bool]("Error deleting employee")
	}

	now := time.Now().UTC()
	emp.IsDeleted = true
	emp.IsActive = false
	emp.UpdatedAt = &now

	if err := uow.Employees().Update(ctx, &emp); err != nil {
		slog.Error("employee delete failed", "id", id, "err", err)
		return result.Fail[bool]("Error deleting employee")
	}
	if _, err := uow.Complete(ctx); err != nil {
		slog.Error("employee delete commit failed", "err", err)
		return result.Fail[bool]("Error deleting employee")
	}

	slog.Info("employee deleted", "id", id)
	return result.Ok(true, "Employee deleted successfully")
}

// Salaries returns the salary history of one employee, newest first.
func (s *Service) Salaries(ctx context.Context, employeeID int64) result.Result[[]model.Salary] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[[]model.Salary]("Error retrieving salaries")
	}
	defer uow.Rollback(ctx)

	if _, err := uow.Employees().GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return result.Fail[[]model.Salary](ErrNotFound.Error())
		}
		slog.Error("employee lookup failed", "id", employeeID, "err", err)
		return result.Fail[[]model.Salary]("Error retrieving salaries")
	}

	salaries, err := uow.Salaries().Find(ctx, storage.Eq("employee_id", employeeID))
	if err != nil {
		slog.Error("salary list failed", "employeeId", employeeID, "err", err)
		return result.Fail[[]model.Salary]("Error retrieving salaries")
	}
	for i, j := 0, len(salaries)-1; i < j; i, j = i+1, j-1 {
		salaries[i], salaries[j] = salaries[j], salaries[i]
	}
	return result.Ok(salaries, "")
}

// AssignSalary records a new current salary. The previous current row is
// closed in the same unit of work, so at most one salary per employee is
// current at any commit point.
func (s *Service) AssignSalary(ctx context.Context, employeeID int64, in SalaryInput, actor string) result.Result[model.Salary] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[model.Salary]("Error assigning salary")
	}
	defer uow.Rollback(ctx)

	if _, err := uow.Employees().GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return result.Fail[model.Salary](ErrNotFound.Error())
		}
		slog.Error("employee lookup failed", "id", employeeID, "err", err)
		return result.Fail[model.Salary]("Error assigning salary")
	}

	current, err := uow.Salaries().Find(ctx, storage.Eq("employee_id", employeeID), storage.Eq("is_current", true))
	if err != nil {
		slog.Error("current salary lookup failed", "employeeId", employeeID, "err", err)
		return result.Fail[model.Salary]("Error assigning salary")
	}

	now := time.Now().UTC()
	for i := range current {
		current[i].IsCurrent = false
		current[i].EffectiveTo = &in.EffectiveFrom
		current[i].UpdatedAt = &now
		current[i].UpdatedBy = &actor
		if err := uow.Salaries().Update(ctx, &current[i]); err != nil {
			slog.Error("closing current salary failed", "salaryId", current[i].ID, "err", err)
			return result.Fail[model.Salary]("Error assigning salary")
		}
	}

	salary := model.Salary{
		Base: model.Base{
			CreatedAt: now,
			CreatedBy: actor,
			IsActive:  true,
		},
		EmployeeID:         employeeID,
		BasicSalary:        in.BasicSalary,
		HouseRentAllowance: in.HouseRentAllowance,
		TransportAllowance: in.TransportAllowance,
		MedicalAllowance:   in.MedicalAllowance,
		OtherAllowances:    in.OtherAllowances,
		TaxDeduction:       in.TaxDeduction,
		OtherDeductions:    in.OtherDeductions,
		EffectiveFrom:      in.EffectiveFrom,
		IsCurrent:          true,
	}
	computeSalary(&salary)

	if err := uow.Salaries().Add(ctx, &salary); err != nil {
		slog.Error("salary insert failed", "employeeId", employeeID, "err", err)
		return result.Fail[model.Salary]("Error assigning salary")
	}
	if _, err := uow.Complete(ctx); err != nil {
		slog.Error("salary assign commit failed", "err", err)
		return result.Fail[model.Salary]("Error assigning salary")
	}

	slog.Info("salary assigned", "employeeId", employeeID, "net", salary.NetSalary, "assignedBy", actor)
	return result.Ok(salary, "Salary assigned successfully")
}

// checkReferences verifies department, designation and manager targets. For
// updates it also refuses manager chains that loop back to the employee.
func (s *Service) checkReferences(ctx context.Context, uow *storage.UnitOfWork, in CreateInput, selfID int64) string {
	if ok, err := uow.Departments().Exists(ctx, storage.Eq("id", in.DepartmentID)); err != nil || !ok {
		return "Department not found"
	}
	if ok, err := uow.Designations().Exists(ctx, storage.Eq("id", in.DesignationID)); err != nil || !ok {
		return "Designation not found"
	}
	if in.ReportingManagerID == nil {
		return ""
	}
	cycle, err := managerChainReaches(ctx, uow, *in.ReportingManagerID, selfID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "Reporting manager not found"
		}
		return "Error resolving reporting manager"
	}
	if cycle {
		return ErrManagerCycle.Error()
	}
	return ""
}

// managerChainReaches walks the manager chain starting at managerID and
// reports whether it reaches selfID. A repeated node means the chain already
// loops; refuse the assignment in that case too.
func managerChainReaches(ctx context.Context, uow *storage.UnitOfWork, managerID, selfID int64) (bool, error) {
	seen := make(map[int64]bool)
	current := managerID
	for {
		if selfID != 0 && current == selfID {
			return true, nil
		}
		if seen[current] {
			return true, nil
		}
		seen[current] = true
		mgr, err := uow.Employees().GetByID(ctx, current)
		if err != nil {
			return false, err
		}
		if mgr.ReportingManagerID == nil {
			return false, nil
		}
		current = *mgr.ReportingManagerID
	}
}

// Unique index names from the employees table; violations are mapped back
// to domain errors by constraint so a raced code collision is not reported
// as a duplicate email.
const (
	emailIndex = "ux_employees_email"
	codeIndex  = "ux_employees_code"
)

func createFailure(err error) result.Result[DTO] {
	switch storage.UniqueConstraint(err) {
	case emailIndex:
		return result.Fail[DTO](ErrDuplicateEmail.Error())
	case codeIndex:
		slog.Warn("employee code collision, concurrent creates raced the sequence", "err", err)
	}
	return result.Fail[DTO]("Error creating employee")
}

func (s *Service) listFailure(err error) result.Result[result.PaginatedList[DTO]] {
	slog.Error("employee list failed", "err", err)
	return result.Fail[result.PaginatedList[DTO]]("Error retrieving employees")
}
