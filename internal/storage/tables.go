package storage

import "ems/internal/domain/model"

var auditColumns = []string{"created_at", "created_by", "updated_at", "updated_by", "is_active", "is_deleted"}

func auditValues(b *model.Base) []any {
	return []any{b.CreatedAt, b.CreatedBy, b.UpdatedAt, b.UpdatedBy, b.IsActive, b.IsDeleted}
}

func employeeTable() Table[model.Employee] {
	return Table[model.Employee]{
		Name: "employees",
		Columns: append([]string{
			"employee_code", "first_name", "last_name", "email", "phone_number",
			"date_of_birth", "joining_date", "gender", "address", "city", "state",
			"country", "postal_code", "department_id", "designation_id", "reporting_manager_id",
		}, auditColumns...),
		Values: func(e *model.Employee) []any {
			return append([]any{
				e.EmployeeCode, e.FirstName, e.LastName, e.Email, e.PhoneNumber,
				e.DateOfBirth, e.JoiningDate, e.Gender, e.Address, e.City, e.State,
				e.Country, e.PostalCode, e.DepartmentID, e.DesignationID, e.ReportingManagerID,
			}, auditValues(&e.Base)...)
		},
		ID:    func(e *model.Employee) int64 { return e.ID },
		SetID: func(e *model.Employee, id int64) { e.ID = id },
	}
}

func departmentTable() Table[model.Department] {
	return Table[model.Department]{
		Name:    "departments",
		Columns: append([]string{"name", "code", "description", "manager_id"}, auditColumns...),
		Values: func(d *model.Department) []any {
			return append([]any{d.Name, d.Code, d.Description, d.ManagerID}, auditValues(&d.Base)...)
		},
		ID:    func(d *model.Department) int64 { return d.ID },
		SetID: func(d *model.Department, id int64) { d.ID = id },
	}
}

func designationTable() Table[model.Designation] {
	return Table[model.Designation]{
		Name:    "designations",
		Columns: append([]string{"title", "code", "description", "level"}, auditColumns...),
		Values: func(d *model.Designation) []any {
			return append([]any{d.Title, d.Code, d.Description, d.Level}, auditValues(&d.Base)...)
		},
		ID:    func(d *model.Designation) int64 { return d.ID },
		SetID: func(d *model.Designation, id int64) { d.ID = id },
	}
}

func salaryTable() Table[model.Salary] {
	return Table[model.Salary]{
		Name: "salaries",
		Columns: append([]string{
			"employee_id", "basic_salary", "house_rent_allowance", "transport_allowance",
			"medical_allowance", "other_allowances", "gross_salary", "tax_deduction",
			"other_deductions", "net_salary", "effective_from", "effective_to", "is_current",
		}, auditColumns...),
		Values: func(s *model.Salary) []any {
			return append([]any{
				s.EmployeeID, s.BasicSalary, s.HouseRentAllowance, s.TransportAllowance,
				s.MedicalAllowance, s.OtherAllowances, s.GrossSalary, s.TaxDeduction,
				s.OtherDeductions, s.NetSalary, s.EffectiveFrom, s.EffectiveTo, s.IsCurrent,
			}, auditValues(&s.Base)...)
		},
		ID:    func(s *model.Salary) int64 { return s.ID },
		SetID: func(s *model.Salary, id int64) { s.ID = id },
	}
}

func userTable() Table[model.User] {
	return Table[model.User]{
		Name: "users",
		Columns: append([]string{
			"username", "password_hash", "email", "role", "employee_id", "last_login_at",
		}, auditColumns...),
		Values: func(u *model.User) []any {
			return append([]any{
				u.Username, u.PasswordHash, u.Email, u.Role, u.EmployeeID, u.LastLoginAt,
			}, auditValues(&u.Base)...)
		},
		ID:    func(u *model.User) int64 { return u.ID },
		SetID: func(u *model.User, id int64) { u.ID = id },
	}
}
