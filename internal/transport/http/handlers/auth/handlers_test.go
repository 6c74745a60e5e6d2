package authhandler

import (
	"strings"
	"testing"
)

func TestValidateRegister(t *testing.T) {
	cases := []struct {
		name    string
		payload registerRequest
		wantMsg string
	}{
		{
			name:    "valid",
			payload: registerRequest{Username: "amelia", Email: "amelia@example.com", Password: "Secret1"},
			wantMsg: "",
		},
		{
			name:    "missing username",
			payload: registerRequest{Email: "amelia@example.com", Password: "Secret1"},
			wantMsg: "Username is required",
		},
		{
			name:    "username too long",
			payload: registerRequest{Username: strings.Repeat("a", 51), Email: "a@b.com", Password: "Secret1"},
			wantMsg: "Username cannot exceed 50 characters",
		},
		{
			name:    "bad email",
			payload: registerRequest{Username: "amelia", Email: "nope", Password: "Secret1"},
			wantMsg: "A valid email is required",
		},
		{
			name:    "short password",
			payload: registerRequest{Username: "amelia", Email: "amelia@example.com", Password: "short"},
			wantMsg: "Password must be at least 6 characters",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validateRegister(tc.payload); got != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, got)
			}
		})
	}
}
