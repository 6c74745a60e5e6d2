package storage

import (
	"context"

	"github.com/jackc/pgx/v5"

	"ems/internal/domain/model"
)

const employeeDetailsSelect = `
    SELECT e.*,
           d.name AS department_name,
           g.title AS designation_title,
           m.first_name AS manager_first_name,
           m.last_name AS manager_last_name,
           s.net_salary AS current_salary
    FROM employees e
    JOIN departments d ON e.department_id = d.id
    JOIN designations g ON e.designation_id = g.id
    LEFT JOIN employees m ON e.reporting_manager_id = m.id
    LEFT JOIN salaries s ON s.employee_id = e.id AND s.is_current AND NOT s.is_deleted
  `

// EmployeeRepository narrows the generic repository with the eager-join
// reads the employee service needs.
type EmployeeRepository struct {
	*Repository[model.Employee]
}

func newEmployeeRepository(db DB, affected *int64) *EmployeeRepository {
	return &EmployeeRepository{Repository: newRepository(db, employeeTable(), affected)}
}

// searchClause renders the case-insensitive substring match over first
// name, last name, email and employee code. Empty terms match everything.
func searchClause(term string) (string, []any) {
	if term == "" {
		return "", nil
	}
	pattern := "%" + escapeLike(term) + "%"
	return " AND (e.first_name ILIKE $1 OR e.last_name ILIKE $1 OR e.email ILIKE $1 OR e.employee_code ILIKE $1)",
		[]any{pattern}
}

// GetAllWithDetails returns every non-deleted employee joined with its
// department, designation, manager and current salary, optionally narrowed
// by a search term.
func (r *EmployeeRepository) GetAllWithDetails(ctx context.Context, search string) ([]model.EmployeeDetails, error) {
	clause, args := searchClause(search)
	rows, err := r.db.Query(ctx, employeeDetailsSelect+" WHERE NOT e.is_deleted"+clause+" ORDER BY e.id", args...)
	if err != nil {
		return nil, wrapErr("select employee details", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.EmployeeDetails])
	if err != nil {
		return nil, wrapErr("scan employee details", err)
	}
	return out, nil
}

// GetByIDWithDetails returns one employee with details, or ErrNotFound.
func (r *EmployeeRepository) GetByIDWithDetails(ctx context.Context, id int64) (model.EmployeeDetails, error) {
	var zero model.EmployeeDetails
	rows, err := r.db.Query(ctx, employeeDetailsSelect+" WHERE e.id = $1 AND NOT e.is_deleted", id)
	if err != nil {
		return zero, wrapErr("get employee details", err)
	}
	ent, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.EmployeeDetails])
	if err != nil {
		return zero, wrapErr("get employee details", err)
	}
	return ent, nil
}

// RecentJoiners returns the latest non-deleted employees by joining date.
func (r *EmployeeRepository) RecentJoiners(ctx context.Context, limit int) ([]model.EmployeeDetails, error) {
	rows, err := r.db.Query(ctx, employeeDetailsSelect+" WHERE NOT e.is_deleted ORDER BY e.joining_date DESC, e.id DESC LIMIT $1", limit)
	if err != nil {
		return nil, wrapErr("select recent joiners", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.EmployeeDetails])
	if err != nil {
		return nil, wrapErr("scan recent joiners", err)
	}
	return out, nil
}
