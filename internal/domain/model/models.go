package model

import "time"

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
	RoleHR      = "HR"
)

// Base carries the audit columns shared by every table. Reads exclude rows
// with IsDeleted set; deletion through the service layer flips the flags
// instead of removing the row.
type Base struct {
	ID        int64      `db:"id" json:"id"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	CreatedBy string     `db:"created_by" json:"createdBy"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	UpdatedBy *string    `db:"updated_by" json:"updatedBy,omitempty"`
	IsActive  bool       `db:"is_active" json:"isActive"`
	IsDeleted bool       `db:"is_deleted" json:"isDeleted"`
}

type Employee struct {
	Base
	EmployeeCode       string     `db:"employee_code" json:"employeeCode"`
	FirstName          string     `db:"first_name" json:"firstName"`
	LastName           string     `db:"last_name" json:"lastName"`
	Email              string     `db:"email" json:"email"`
	PhoneNumber        *string    `db:"phone_number" json:"phoneNumber,omitempty"`
	DateOfBirth        time.Time  `db:"date_of_birth" json:"dateOfBirth"`
	JoiningDate        time.Time  `db:"joining_date" json:"joiningDate"`
	Gender             string     `db:"gender" json:"gender"`
	Address            *string    `db:"address" json:"address,omitempty"`
	City               *string    `db:"city" json:"city,omitempty"`
	State              *string    `db:"state" json:"state,omitempty"`
	Country            *string    `db:"country" json:"country,omitempty"`
	PostalCode         *string    `db:"postal_code" json:"postalCode,omitempty"`
	DepartmentID       int64      `db:"department_id" json:"departmentId"`
	DesignationID      int64      `db:"designation_id" json:"designationId"`
	ReportingManagerID *int64     `db:"reporting_manager_id" json:"reportingManagerId,omitempty"`
}

// EmployeeDetails is the eager-join row shape: an employee plus the display
// fields of its department, designation, manager and current salary.
type EmployeeDetails struct {
	Employee
	DepartmentName   string   `db:"department_name" json:"departmentName"`
	DesignationTitle string   `db:"designation_title" json:"designationTitle"`
	ManagerFirstName *string  `db:"manager_first_name" json:"-"`
	ManagerLastName  *string  `db:"manager_last_name" json:"-"`
	CurrentSalary    *float64 `db:"current_salary" json:"currentSalary,omitempty"`
}

func (e EmployeeDetails) ManagerName() *string {
	if e.ManagerFirstName == nil || e.ManagerLastName == nil {
		return nil
	}
	name := *e.ManagerFirstName + " " + *e.ManagerLastName
	return &name
}

type Department struct {
	Base
	Name        string  `db:"name" json:"name"`
	Code        string  `db:"code" json:"code"`
	Description *string `db:"description" json:"description,omitempty"`
	ManagerID   *int64  `db:"manager_id" json:"managerId,omitempty"`
}

type Designation struct {
	Base
	Title       string  `db:"title" json:"title"`
	Code        string  `db:"code" json:"code"`
	Description *string `db:"description" json:"description,omitempty"`
	Level       int     `db:"level" json:"level"`
}

type Salary struct {
	Base
	EmployeeID         int64      `db:"employee_id" json:"employeeId"`
	BasicSalary        float64    `db:"basic_salary" json:"basicSalary"`
	HouseRentAllowance *float64   `db:"house_rent_allowance" json:"houseRentAllowance,omitempty"`
	TransportAllowance *float64   `db:"transport_allowance" json:"transportAllowance,omitempty"`
	MedicalAllowance   *float64   `db:"medical_allowance" json:"medicalAllowance,omitempty"`
	OtherAllowances    *float64   `db:"other_allowances" json:"otherAllowances,omitempty"`
	GrossSalary        float64    `db:"gross_salary" json:"grossSalary"`
	TaxDeduction       *float64   `db:"tax_deduction" json:"taxDeduction,omitempty"`
	OtherDeductions    *float64   `db:"other_deductions" json:"otherDeductions,omitempty"`
	NetSalary          float64    `db:"net_salary" json:"netSalary"`
	EffectiveFrom      time.Time  `db:"effective_from" json:"effectiveFrom"`
	EffectiveTo        *time.Time `db:"effective_to" json:"effectiveTo,omitempty"`
	IsCurrent          bool       `db:"is_current" json:"isCurrent"`
}

type User struct {
	Base
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Email        string     `db:"email" json:"email"`
	Role         string     `db:"role" json:"role"`
	EmployeeID   *int64     `db:"employee_id" json:"employeeId,omitempty"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser, RoleHR:
		return true
	}
	return false
}
