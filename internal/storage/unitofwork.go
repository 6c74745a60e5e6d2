package storage

import (
	"context"

	"github.com/jackc/pgx/v5"

	"ems/internal/domain/model"
)

// UnitOfWork groups the repositories of one request over a single
// transaction. Repositories are built on first use and live for the unit of
// work. Complete is the only commit point; Rollback releases the session and
// is safe after Complete, so callers defer it unconditionally.
type UnitOfWork struct {
	tx       pgx.Tx
	affected int64
	done     bool

	employees    *EmployeeRepository
	departments  *Repository[model.Department]
	designations *Repository[model.Designation]
	salaries     *Repository[model.Salary]
	users        *Repository[model.User]
}

func (u *UnitOfWork) Employees() *EmployeeRepository {
	if u.employees == nil {
		u.employees = newEmployeeRepository(u.tx, &u.affected)
	}
	return u.employees
}

func (u *UnitOfWork) Departments() *Repository[model.Department] {
	if u.departments == nil {
		u.departments = newRepository(u.tx, departmentTable(), &u.affected)
	}
	return u.departments
}

func (u *UnitOfWork) Designations() *Repository[model.Designation] {
	if u.designations == nil {
		u.designations = newRepository(u.tx, designationTable(), &u.affected)
	}
	return u.designations
}

func (u *UnitOfWork) Salaries() *Repository[model.Salary] {
	if u.salaries == nil {
		u.salaries = newRepository(u.tx, salaryTable(), &u.affected)
	}
	return u.salaries
}

func (u *UnitOfWork) Users() *Repository[model.User] {
	if u.users == nil {
		u.users = newRepository(u.tx, userTable(), &u.affected)
	}
	return u.users
}

// Complete commits all staged changes atomically and returns the number of
// affected rows. On failure nothing staged is durably applied.
func (u *UnitOfWork) Complete(ctx context.Context) (int64, error) {
	if err := u.tx.Commit(ctx); err != nil {
		return 0, wrapErr("commit", err)
	}
	u.done = true
	return u.affected, nil
}

// Rollback discards staged changes unless the unit of work completed.
func (u *UnitOfWork) Rollback(ctx context.Context) {
	if u.done {
		return
	}
	_ = u.tx.Rollback(ctx)
}
