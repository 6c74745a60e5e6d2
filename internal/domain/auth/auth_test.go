package auth

import (
	"testing"
	"time"

	"ems/internal/domain/model"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:   "test-secret",
		Issuer:   "ems",
		Audience: "ems-clients",
		TTL:      time.Hour,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super-secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if err := CheckPassword(hash, "super-secret"); err != nil {
		t.Fatalf("expected password to match, got %v", err)
	}

	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testTokenConfig()
	claims := Claims{Username: "admin", Email: "admin@example.com", Role: model.RoleAdmin}

	token, expiresAt, err := GenerateToken(cfg, claims)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected expiry in the future, got %v", expiresAt)
	}

	parsed, err := ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.Username != "admin" || parsed.Email != "admin@example.com" || parsed.Role != model.RoleAdmin {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
	if parsed.Subject != "admin" {
		t.Fatalf("expected subject to carry the username, got %q", parsed.Subject)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := testTokenConfig()
	token, _, err := GenerateToken(cfg, Claims{Username: "admin", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	other := cfg
	other.Secret = "different-secret"
	if _, err := ParseToken(other, token); err == nil {
		t.Fatal("expected signature rejection")
	}
}

func TestParseTokenRejectsWrongIssuerAndAudience(t *testing.T) {
	cfg := testTokenConfig()
	token, _, err := GenerateToken(cfg, Claims{Username: "admin", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	badIssuer := cfg
	badIssuer.Issuer = "someone-else"
	if _, err := ParseToken(badIssuer, token); err == nil {
		t.Fatal("expected issuer rejection")
	}

	badAudience := cfg
	badAudience.Audience = "other-clients"
	if _, err := ParseToken(badAudience, token); err == nil {
		t.Fatal("expected audience rejection")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := testTokenConfig()
	cfg.TTL = -time.Minute
	token, _, err := GenerateToken(cfg, Claims{Username: "admin", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	cfg.TTL = time.Hour
	if _, err := ParseToken(cfg, token); err == nil {
		t.Fatal("expected expiry rejection")
	}
}
