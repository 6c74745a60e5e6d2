package shared

import (
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		url  string
		want Pagination
	}{
		{"/employees", Pagination{PageNumber: 1, PageSize: 10}},
		{"/employees?pageNumber=3&pageSize=25", Pagination{PageNumber: 3, PageSize: 25}},
		{"/employees?pageNumber=junk&pageSize=junk", Pagination{PageNumber: 1, PageSize: 10}},
		{"/employees?searchTerm=stone", Pagination{PageNumber: 1, PageSize: 10, SearchTerm: "stone"}},
		{"/employees?pageNumber=-2&pageSize=0", Pagination{PageNumber: -2, PageSize: 0}},
	}
	for _, tc := range cases {
		got := ParsePagination(httptest.NewRequest("GET", tc.url, nil), 10)
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.url, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Fatalf("unexpected date: %v", d)
	}

	d, err = ParseDate("2024-02-29T10:30:00Z")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if d.Hour() != 10 {
		t.Fatalf("unexpected time: %v", d)
	}

	if _, err := ParseDate("29/02/2024"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidatorCollectsAndSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("lastName", "", "last name is required")
	v.Required("firstName", "", "first name is required")
	v.Required("gender", "Female", "gender is required")

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	want := []string{"firstName: first name is required", "lastName: last name is required"}
	if !reflect.DeepEqual(v.Issues(), want) {
		t.Fatalf("unexpected issues: %v", v.Issues())
	}
}

func TestValidatorEmail(t *testing.T) {
	v := NewValidator()
	v.Email("email", "not-an-email")
	if !v.HasIssues() {
		t.Fatal("expected invalid email issue")
	}

	v = NewValidator()
	v.Email("email", "amelia.stone@example.com")
	v.Email("email", "")
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %v", v.Issues())
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	if _, ok := v.Date("joiningDate", "2023-06-01"); !ok {
		t.Fatal("expected valid date")
	}
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %v", v.Issues())
	}

	if _, ok := v.Date("dateOfBirth", ""); ok {
		t.Fatal("expected missing date to fail")
	}
	if !v.HasIssues() {
		t.Fatal("expected issue for missing date")
	}
}

func TestValidatorBefore(t *testing.T) {
	v := NewValidator()
	limit := time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)
	v.Before("dateOfBirth", time.Date(2010, time.May, 2, 0, 0, 0, 0, time.UTC), limit, "employee must be at least 18 years old")
	if !v.HasIssues() {
		t.Fatal("expected issue for date past the limit")
	}

	v = NewValidator()
	v.Before("dateOfBirth", time.Date(1990, time.May, 2, 0, 0, 0, 0, time.UTC), limit, "employee must be at least 18 years old")
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %v", v.Issues())
	}
}
