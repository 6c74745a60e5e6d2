package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ems/internal/app/server"
	"ems/internal/platform/config"
	"ems/internal/platform/db"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message *string         `json:"message"`
	Errors  []string        `json:"errors"`
}

type employeeView struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	Email        string `json:"email"`
	IsActive     bool   `json:"isActive"`
}

type employeePage struct {
	Items      []employeeView `json:"items"`
	PageNumber int            `json:"pageNumber"`
	PageSize   int            `json:"pageSize"`
	TotalCount int            `json:"totalCount"`
	TotalPages int            `json:"totalPages"`
}

type salaryView struct {
	ID          int64   `json:"id"`
	BasicSalary float64 `json:"basicSalary"`
	GrossSalary float64 `json:"grossSalary"`
	NetSalary   float64 `json:"netSalary"`
	IsCurrent   bool    `json:"isCurrent"`
}

const adminPassword = "ChangeMe123"

func startTestServer(t *testing.T) (*httptest.Server, *pgxpool.Pool) {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:       dbURL,
		JWTSecret:         "test-secret",
		JWTIssuer:         "ems",
		JWTAudience:       "ems-clients",
		TokenTTL:          time.Hour,
		Environment:       "test",
		SeedAdminUsername: "admin",
		SeedAdminEmail:    "admin@test.local",
		SeedAdminPassword: adminPassword,
		MigrationsDir:     "../../../../migrations",
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	if err := db.Seed(ctx, pool, cfg); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	ts := httptest.NewServer(server.NewRouter(cfg, pool))
	t.Cleanup(ts.Close)
	return ts, pool
}

func TestRegistrationAndLoginJourney(t *testing.T) {
	ts, _ := startTestServer(t)
	client := ts.Client()

	username := fmt.Sprintf("alice-%d", time.Now().UnixNano())
	email := username + "@example.com"

	status, raw := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/auth/register", "", map[string]any{
		"username": username,
		"email":    email,
		"password": "Secret1",
	})
	if status != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", status, raw)
	}

	status, raw = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/auth/register", "", map[string]any{
		"username": username,
		"email":    "other-" + email,
		"password": "Secret1",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate username: expected 400, got %d: %s", status, raw)
	}
	if msg := flatMessage(t, raw); msg != "Username already exists" {
		t.Fatalf("unexpected message: %q", msg)
	}

	status, raw = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/auth/register", "", map[string]any{
		"username": username + "-2",
		"email":    email,
		"password": "Secret1",
	})
	if status != http.StatusBadRequest || flatMessage(t, raw) != "Email already exists" {
		t.Fatalf("duplicate email: expected 400, got %d: %s", status, raw)
	}

	status, raw = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/auth/login", "", map[string]any{
		"username": username,
		"password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d: %s", status, raw)
	}

	token, role := login(t, client, ts.URL, username, "Secret1")
	if role != "User" {
		t.Fatalf("expected registered user to carry role User, got %q", role)
	}

	// A User can read but not write employees.
	status, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/employees", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list as User: expected 200, got %d", status)
	}
	status, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees", token, map[string]any{})
	if status != http.StatusForbidden {
		t.Fatalf("create as User: expected 403, got %d", status)
	}
	status, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/employees", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("anonymous list: expected 401, got %d", status)
	}
}

func TestEmployeeLifecycleJourney(t *testing.T) {
	ts, pool := startTestServer(t)
	client := ts.Client()
	ctx := context.Background()

	token, _ := login(t, client, ts.URL, "admin", adminPassword)
	deptID, desigID := lookupReferences(t, pool)

	var baseline int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&baseline); err != nil {
		t.Fatalf("baseline count failed: %v", err)
	}

	marker := fmt.Sprintf("jrn%d", time.Now().UnixNano())
	first := createEmployee(t, client, ts.URL, token, employeePayload(marker+"-1@example.com", deptID, desigID))
	second := createEmployee(t, client, ts.URL, token, employeePayload(marker+"-2@example.com", deptID, desigID))
	third := createEmployee(t, client, ts.URL, token, employeePayload(marker+"-3@example.com", deptID, desigID))

	for i, e := range []employeeView{first, second, third} {
		want := fmt.Sprintf("EMP%06d", baseline+int64(i)+1)
		if e.EmployeeCode != want {
			t.Fatalf("expected code %s, got %s", want, e.EmployeeCode)
		}
	}

	// A duplicate email is rejected and nothing is persisted.
	status, raw := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees", token, employeePayload(first.Email, deptID, desigID))
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate email: expected 400, got %d: %s", status, raw)
	}
	env := decodeEnvelope(t, raw)
	if env.Success || env.Message == nil || *env.Message != "email already exists" {
		t.Fatalf("unexpected duplicate email envelope: %s", raw)
	}
	var sameEmail int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM employees WHERE email = $1", first.Email).Scan(&sameEmail); err != nil {
		t.Fatalf("email count failed: %v", err)
	}
	if sameEmail != 1 {
		t.Fatalf("expected duplicate create to persist nothing, found %d rows", sameEmail)
	}

	// Logical delete flips the flags, hides the row from reads and keeps it
	// counted for code generation.
	status, _ = doJSON(t, client, http.MethodDelete, fmt.Sprintf("%s/api/v1/employees/%d", ts.URL, first.ID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", status)
	}
	status, _ = doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/api/v1/employees/%d", ts.URL, first.ID), token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("get deleted: expected 404, got %d", status)
	}
	var isDeleted, isActive bool
	if err := pool.QueryRow(ctx, "SELECT is_deleted, is_active FROM employees WHERE id = $1", first.ID).Scan(&isDeleted, &isActive); err != nil {
		t.Fatalf("flag check failed: %v", err)
	}
	if !isDeleted || isActive {
		t.Fatalf("expected deleted=true active=false, got deleted=%v active=%v", isDeleted, isActive)
	}

	fourth := createEmployee(t, client, ts.URL, token, employeePayload(marker+"-4@example.com", deptID, desigID))
	if want := fmt.Sprintf("EMP%06d", baseline+4); fourth.EmployeeCode != want {
		t.Fatalf("expected code %s after soft delete, got %s", want, fourth.EmployeeCode)
	}

	// Search matches the three live marker employees; totals are computed
	// before pagination and the deleted row never appears.
	firstPage := listEmployees(t, client, ts.URL, token, marker, 1, 2)
	if firstPage.TotalCount != 3 || firstPage.TotalPages != 2 || len(firstPage.Items) != 2 {
		t.Fatalf("unexpected first page: %+v", firstPage)
	}
	secondPage := listEmployees(t, client, ts.URL, token, marker, 2, 2)
	if len(secondPage.Items) != 1 {
		t.Fatalf("unexpected second page: %+v", secondPage)
	}
	for _, e := range append(firstPage.Items, secondPage.Items...) {
		if e.ID == first.ID {
			t.Fatal("deleted employee surfaced in search results")
		}
	}
}

func TestSalaryAssignmentJourney(t *testing.T) {
	ts, pool := startTestServer(t)
	client := ts.Client()

	token, _ := login(t, client, ts.URL, "admin", adminPassword)
	deptID, desigID := lookupReferences(t, pool)

	email := fmt.Sprintf("pay%d@example.com", time.Now().UnixNano())
	emp := createEmployee(t, client, ts.URL, token, employeePayload(email, deptID, desigID))

	status, raw := doJSON(t, client, http.MethodPost, fmt.Sprintf("%s/api/v1/employees/%d/salaries", ts.URL, emp.ID), token, map[string]any{
		"basicSalary":        2000,
		"houseRentAllowance": 500,
		"taxDeduction":       300,
		"effectiveFrom":      "2024-01-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("assign salary: expected 201, got %d: %s", status, raw)
	}
	var assigned salaryView
	mustDecodeData(t, raw, &assigned)
	if assigned.GrossSalary != 2500 || assigned.NetSalary != 2200 || !assigned.IsCurrent {
		t.Fatalf("unexpected salary: %+v", assigned)
	}

	status, raw = doJSON(t, client, http.MethodPost, fmt.Sprintf("%s/api/v1/employees/%d/salaries", ts.URL, emp.ID), token, map[string]any{
		"basicSalary":   3000,
		"effectiveFrom": "2025-01-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("second salary: expected 201, got %d: %s", status, raw)
	}

	status, raw = doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/api/v1/employees/%d/salaries", ts.URL, emp.ID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("list salaries: expected 200, got %d: %s", status, raw)
	}
	var history []salaryView
	mustDecodeData(t, raw, &history)
	if len(history) != 2 {
		t.Fatalf("expected 2 salary rows, got %d", len(history))
	}
	if history[0].BasicSalary != 3000 || !history[0].IsCurrent {
		t.Fatalf("expected newest salary current, got %+v", history[0])
	}
	if history[1].IsCurrent {
		t.Fatalf("expected previous salary closed, got %+v", history[1])
	}

	status, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/employees/99999999/salaries", token, nil)
	if status != http.StatusNotFound {
		t.Fatalf("salaries of unknown employee: expected 404, got %d", status)
	}
}

func lookupReferences(t *testing.T, pool *pgxpool.Pool) (int64, int64) {
	t.Helper()
	ctx := context.Background()
	var deptID, desigID int64
	if err := pool.QueryRow(ctx, "SELECT id FROM departments WHERE code = 'ENG'").Scan(&deptID); err != nil {
		t.Fatalf("seeded department missing: %v", err)
	}
	if err := pool.QueryRow(ctx, "SELECT id FROM designations WHERE code = 'SA'").Scan(&desigID); err != nil {
		t.Fatalf("seeded designation missing: %v", err)
	}
	return deptID, desigID
}

func employeePayload(email string, deptID, desigID int64) map[string]any {
	return map[string]any{
		"firstName":     "Journey",
		"lastName":      "Tester",
		"email":         email,
		"dateOfBirth":   "1990-04-12",
		"joiningDate":   "2022-01-03",
		"gender":        "Female",
		"departmentId":  deptID,
		"designationId": desigID,
	}
}

func createEmployee(t *testing.T, client *http.Client, baseURL, token string, payload map[string]any) employeeView {
	t.Helper()
	status, raw := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/employees", token, payload)
	if status != http.StatusCreated {
		t.Fatalf("create employee: expected 201, got %d: %s", status, raw)
	}
	var e employeeView
	mustDecodeData(t, raw, &e)
	if e.ID == 0 || e.EmployeeCode == "" {
		t.Fatalf("unexpected employee: %+v", e)
	}
	return e
}

func listEmployees(t *testing.T, client *http.Client, baseURL, token, search string, page, size int) employeePage {
	t.Helper()
	url := fmt.Sprintf("%s/api/v1/employees?searchTerm=%s&pageNumber=%d&pageSize=%d", baseURL, search, page, size)
	status, raw := doJSON(t, client, http.MethodGet, url, token, nil)
	if status != http.StatusOK {
		t.Fatalf("list employees: expected 200, got %d: %s", status, raw)
	}
	var p employeePage
	mustDecodeData(t, raw, &p)
	return p
}

func login(t *testing.T, client *http.Client, baseURL, username, password string) (string, string) {
	t.Helper()
	status, raw := doJSON(t, client, http.MethodPost, baseURL+"/api/v1/auth/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", status, raw)
	}
	var payload struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("expected token")
	}
	return payload.Token, payload.Role
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, raw
}

func decodeEnvelope(t *testing.T, raw []byte) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope: %v: %s", err, raw)
	}
	return env
}

func mustDecodeData(t *testing.T, raw []byte, out any) {
	t.Helper()
	env := decodeEnvelope(t, raw)
	if !env.Success {
		t.Fatalf("expected success envelope: %s", raw)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v: %s", err, env.Data)
	}
}

func flatMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode message: %v: %s", err, raw)
	}
	return payload.Message
}
