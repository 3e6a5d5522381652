package auth

import (
	"context"
	"errors"
	"testing"
)

func TestStaticDirectoryLookup(t *testing.T) {
	dir, err := NewStaticDirectory(SeedCredentials())
	if err != nil {
		t.Fatalf("NewStaticDirectory: %v", err)
	}

	ctx := context.Background()
	rec, err := dir.Lookup(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rec.User.Role != RoleAdmin || rec.User.Name != "Admin User" {
		t.Fatalf("unexpected record: %+v", rec.User)
	}
	if err := VerifyPassword(rec.PasswordHash, "password123"); err != nil {
		t.Fatalf("demo password does not verify: %v", err)
	}

	if _, err := dir.Lookup(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStaticDirectoryEmailIsCaseSensitive(t *testing.T) {
	dir, err := NewStaticDirectory(SeedCredentials())
	if err != nil {
		t.Fatalf("NewStaticDirectory: %v", err)
	}
	if _, err := dir.Lookup(context.Background(), "Admin@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected case-sensitive miss, got %v", err)
	}
}

func TestStaticDirectoryRejectsDuplicates(t *testing.T) {
	records := SeedCredentials()
	records = append(records, records[0])
	if _, err := NewStaticDirectory(records); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestStaticDirectoryRejectsUnknownRole(t *testing.T) {
	bad := []Credential{{
		Email:        "ghost@example.com",
		PasswordHash: "x",
		User:         User{ID: "9", Email: "ghost@example.com", Name: "Ghost", Role: "GHOST"},
	}}
	if _, err := NewStaticDirectory(bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	dir, err := NewStaticDirectory(SeedCredentials())
	if err != nil {
		t.Fatalf("NewStaticDirectory: %v", err)
	}
	ctx := context.Background()

	rec, err := dir.Register(ctx, "new@example.com", "longenough", "New Member", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.User.Role != RoleUser {
		t.Fatalf("expected default role USER, got %s", rec.User.Role)
	}
	if rec.User.ID == "" {
		t.Fatal("expected generated user id")
	}

	found, err := dir.Lookup(ctx, "new@example.com")
	if err != nil {
		t.Fatalf("Lookup after Register: %v", err)
	}
	if err := VerifyPassword(found.PasswordHash, "longenough"); err != nil {
		t.Fatalf("registered password does not verify: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	dir, err := NewStaticDirectory(SeedCredentials())
	if err != nil {
		t.Fatalf("NewStaticDirectory: %v", err)
	}
	ctx := context.Background()

	if _, err := dir.Register(ctx, "new@example.com", "short", "New Member", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if _, err := dir.Register(ctx, "not-an-email", "longenough", "New Member", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for email, got %v", err)
	}
	if _, err := dir.Register(ctx, "new@example.com", "longenough", "  ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for name, got %v", err)
	}
	if _, err := dir.Register(ctx, "admin@example.com", "longenough", "Imposter", ""); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
