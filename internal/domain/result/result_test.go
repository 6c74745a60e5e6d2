package result

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOkEnvelope(t *testing.T) {
	res := Ok(42, "Found")
	if !res.Success || res.Data == nil || *res.Data != 42 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Message == nil || *res.Message != "Found" {
		t.Fatalf("unexpected message: %v", res.Message)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	// Errors must serialize as an empty array, never null.
	if !strings.Contains(string(raw), `"errors":[]`) {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

func TestFailEnvelope(t *testing.T) {
	res := Fail[int]("Validation failed", "email: email is required")
	if res.Success || res.Data != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Errors) != 1 || res.Errors[0] != "email: email is required" {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	raw, err := json.Marshal(Fail[int]("boom"))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if !strings.Contains(string(raw), `"data":null`) || !strings.Contains(string(raw), `"errors":[]`) {
		t.Fatalf("unexpected payload: %s", raw)
	}
}

func TestNewPaginatedList(t *testing.T) {
	cases := []struct {
		total, size int
		wantPages   int
	}{
		{0, 10, 0},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
	}
	for _, tc := range cases {
		list := NewPaginatedList([]string{}, 1, tc.size, tc.total)
		if list.TotalPages != tc.wantPages {
			t.Fatalf("total %d size %d: expected %d pages, got %d", tc.total, tc.size, tc.wantPages, list.TotalPages)
		}
	}
}
