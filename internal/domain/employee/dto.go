package employee

import (
	"time"

	"ems/internal/domain/model"
)

// DTO is the flat employee projection served over the API.
type DTO struct {
	ID                   int64      `json:"id"`
	EmployeeCode         string     `json:"employeeCode"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	FullName             string     `json:"fullName"`
	Email                string     `json:"email"`
	PhoneNumber          *string    `json:"phoneNumber,omitempty"`
	DateOfBirth          time.Time  `json:"dateOfBirth"`
	JoiningDate          time.Time  `json:"joiningDate"`
	Gender               string     `json:"gender"`
	Address              *string    `json:"address,omitempty"`
	City                 *string    `json:"city,omitempty"`
	State                *string    `json:"state,omitempty"`
	Country              *string    `json:"country,omitempty"`
	PostalCode           *string    `json:"postalCode,omitempty"`
	DepartmentID         int64      `json:"departmentId"`
	DepartmentName       string     `json:"departmentName"`
	DesignationID        int64      `json:"designationId"`
	DesignationTitle     string     `json:"designationTitle"`
	ReportingManagerID   *int64     `json:"reportingManagerId,omitempty"`
	ReportingManagerName *string    `json:"reportingManagerName,omitempty"`
	CurrentSalary        *float64   `json:"currentSalary,omitempty"`
	IsActive             bool       `json:"isActive"`
}

// CreateInput carries the mutable fields of a new employee.
type CreateInput struct {
	FirstName          string
	LastName           string
	Email              string
	PhoneNumber        *string
	DateOfBirth        time.Time
	JoiningDate        time.Time
	Gender             string
	Address            *string
	City               *string
	State              *string
	Country            *string
	PostalCode         *string
	DepartmentID       int64
	DesignationID      int64
	ReportingManagerID *int64
}

// UpdateInput is CreateInput plus the target id; the code is never mutated.
type UpdateInput struct {
	ID int64
	CreateInput
}

// SalaryInput carries a new salary assignment. Gross and net are derived.
type SalaryInput struct {
	BasicSalary        float64
	HouseRentAllowance *float64
	TransportAllowance *float64
	MedicalAllowance   *float64
	OtherAllowances    *float64
	TaxDeduction       *float64
	OtherDeductions    *float64
	EffectiveFrom      time.Time
}

func toDTO(e model.EmployeeDetails) DTO {
	return DTO{
		ID:                   e.ID,
		EmployeeCode:         e.EmployeeCode,
		FirstName:            e.FirstName,
		LastName:             e.LastName,
		FullName:             e.FirstName + " " + e.LastName,
		Email:                e.Email,
		PhoneNumber:          e.PhoneNumber,
		DateOfBirth:          e.DateOfBirth,
		JoiningDate:          e.JoiningDate,
		Gender:               e.Gender,
		Address:              e.Address,
		City:                 e.City,
		State:                e.State,
		Country:              e.Country,
		PostalCode:           e.PostalCode,
		DepartmentID:         e.DepartmentID,
		DepartmentName:       e.DepartmentName,
		DesignationID:        e.DesignationID,
		DesignationTitle:     e.DesignationTitle,
		ReportingManagerID:   e.ReportingManagerID,
		ReportingManagerName: e.ManagerName(),
		CurrentSalary:        e.CurrentSalary,
		IsActive:             e.IsActive,
	}
}

func (in CreateInput) apply(e *model.Employee) {
	e.FirstName = in.FirstName
	e.LastName = in.LastName
	e.Email = in.Email
	e.PhoneNumber = in.PhoneNumber
	e.DateOfBirth = in.DateOfBirth
	e.JoiningDate = in.JoiningDate
	e.Gender = in.Gender
	e.Address = in.Address
	e.City = in.City
	e.State = in.State
	e.Country = in.Country
	e.PostalCode = in.PostalCode
	e.DepartmentID = in.DepartmentID
	e.DesignationID = in.DesignationID
	e.ReportingManagerID = in.ReportingManagerID
}
