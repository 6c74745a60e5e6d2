package reports

import (
	"bytes"
	"testing"
	"time"

	"ems/internal/domain/model"
)

func TestRenderRosterProducesPDF(t *testing.T) {
	employees := []model.EmployeeDetails{
		{
			Employee: model.Employee{
				EmployeeCode: "EMP000001",
				FirstName:    "Amelia",
				LastName:     "Stone",
				Email:        "amelia.stone@example.com",
				JoiningDate:  time.Date(2022, time.January, 3, 0, 0, 0, 0, time.UTC),
			},
			DepartmentName:   "Engineering",
			DesignationTitle: "Senior Associate",
		},
	}

	raw, err := renderRoster(employees, time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatalf("expected PDF magic bytes, got %q", raw[:8])
	}
}

func TestRenderRosterEmpty(t *testing.T) {
	raw, err := renderRoster(nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected non-empty output")
	}
}
