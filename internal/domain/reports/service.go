// Package reports builds the dashboard summary and the printable employee
// roster.
package reports

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"ems/internal/domain/model"
	"ems/internal/domain/result"
	"ems/internal/storage"
)

type DashboardSummary struct {
	TotalEmployees    int64          `json:"totalEmployees"`
	TotalDepartments  int64          `json:"totalDepartments"`
	TotalDesignations int64          `json:"totalDesignations"`
	RecentJoiners     []RecentJoiner `json:"recentJoiners"`
}

type RecentJoiner struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"fullName"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	JoiningDate time.Time `json:"joiningDate"`
}

type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// Dashboard returns the counts and recent joiners shown on the console
// landing page.
func (s *Service) Dashboard(ctx context.Context) result.Result[DashboardSummary] {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return result.Fail[DashboardSummary]("Error building dashboard")
	}
	defer uow.Rollback(ctx)

	summary := DashboardSummary{RecentJoiners: []RecentJoiner{}}
	if summary.TotalEmployees, err = uow.Employees().Count(ctx); err != nil {
		slog.Error("dashboard employee count failed", "err", err)
		return result.Fail[DashboardSummary]("Error building dashboard")
	}
	if summary.TotalDepartments, err = uow.Departments().Count(ctx); err != nil {
		slog.Error("dashboard department count failed", "err", err)
		return result.Fail[DashboardSummary]("Error building dashboard")
	}
	if summary.TotalDesignations, err = uow.Designations().Count(ctx); err != nil {
		slog.Error("dashboard designation count failed", "err", err)
		return result.Fail[DashboardSummary]("Error building dashboard")
	}

	joiners, err := uow.Employees().RecentJoiners(ctx, 5)
	if err != nil {
		slog.Error("dashboard recent joiners failed", "err", err)
		return result.Fail[DashboardSummary]("Error building dashboard")
	}
	for _, e := range joiners {
		summary.RecentJoiners = append(summary.RecentJoiners, RecentJoiner{
			ID:          e.ID,
			FullName:    e.FirstName + " " + e.LastName,
			Department:  e.DepartmentName,
			Designation: e.DesignationTitle,
			JoiningDate: e.JoiningDate,
		})
	}
	return result.Ok(summary, "")
}

// EmployeeRosterPDF renders the non-deleted employees as a printable table.
func (s *Service) EmployeeRosterPDF(ctx context.Context) ([]byte, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	employees, err := uow.Employees().GetAllWithDetails(ctx, "")
	if err != nil {
		return nil, err
	}
	return renderRoster(employees, time.Now().UTC())
}

func renderRoster(employees []model.EmployeeDetails, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Employee Roster", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Employee Roster")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "Generated "+generatedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	headers := []string{"Code", "Name", "Email", "Department", "Designation", "Joined"}
	widths := []float64{25, 55, 70, 45, 45, 25}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, e := range employees {
		cells := []string{
			e.EmployeeCode,
			e.FirstName + " " + e.LastName,
			e.Email,
			e.DepartmentName,
			e.DesignationTitle,
			e.JoiningDate.Format("2006-01-02"),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.Ln(4)
	pdf.Cell(0, 5, fmt.Sprintf("%d employees", len(employees)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
