package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv(secretEnvVariable, "test-secret")
	ResetSecretForTests()

	user := User{ID: "1", Email: "admin@example.com", Name: "Admin User", Role: RoleAdmin}
	token, err := GenerateToken(user, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseAndValidate(token)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if claims.Subject != "1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if got := claims.User(); got != user {
		t.Fatalf("claims did not round-trip the user: got %+v want %+v", got, user)
	}
}

func TestGenerateTokenValidation(t *testing.T) {
	t.Setenv(secretEnvVariable, "test-secret")
	ResetSecretForTests()

	user := User{ID: "1", Email: "a@example.com", Name: "A", Role: RoleUser}

	if _, err := GenerateToken(User{Role: RoleUser}, time.Minute); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing id, got %v", err)
	}
	if _, err := GenerateToken(User{ID: "1", Role: "GUEST"}, time.Minute); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
	if _, err := GenerateToken(user, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero ttl, got %v", err)
	}
}

func TestParseAndValidateRejectsTampering(t *testing.T) {
	t.Setenv(secretEnvVariable, "test-secret")
	ResetSecretForTests()

	user := User{ID: "2", Email: "manager@example.com", Name: "Team Manager", Role: RoleManager}
	token, err := GenerateToken(user, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseAndValidate(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
	if _, err := ParseAndValidate("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA"
	if _, err := ParseAndValidate(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv(secretEnvVariable, "")
	ResetSecretForTests()
	defer ResetSecretForTests()

	user := User{ID: "1", Email: "a@example.com", Name: "A", Role: RoleUser}
	if _, err := GenerateToken(user, time.Minute); err == nil {
		t.Fatal("expected error without a configured secret")
	}
}
