package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ems/internal/domain/auth"
	"ems/internal/domain/model"
)

func testTokenConfig() auth.TokenConfig {
	return auth.TokenConfig{
		Secret:   "test-secret",
		Issuer:   "ems",
		Audience: "ems-clients",
		TTL:      time.Hour,
	}
}

func TestAuthSetsUserFromValidToken(t *testing.T) {
	cfg := testTokenConfig()
	token, _, err := auth.GenerateToken(cfg, auth.Claims{Username: "amelia", Email: "amelia@example.com", Role: model.RoleHR})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	handler := Auth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			t.Fatal("expected user in context")
		}
		if user.Username != "amelia" || user.Role != model.RoleHR {
			t.Fatalf("unexpected user: %+v", user)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestAuthPassesThroughWithoutToken(t *testing.T) {
	handler := Auth(testTokenConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("did not expect user in context")
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestAuthPassesThroughOnBadToken(t *testing.T) {
	handler := Auth(testTokenConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("did not expect user in context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
