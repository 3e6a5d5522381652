package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"connectpro.org/internal/ids"
)

// Directory resolves login emails to credential records. Emails are exact,
// case-sensitive keys: no normalization is applied on either side of the
// lookup.
type Directory interface {
	Lookup(ctx context.Context, email string) (Credential, error)
}

// StaticDirectory is the in-memory credential table used by the demo
// deployment. Email uniqueness is enforced at construction time.
type StaticDirectory struct {
	mu      sync.RWMutex
	byEmail map[string]Credential
}

// NewStaticDirectory builds a directory from the given records. It fails on
// duplicate emails, empty hashes, or unknown roles.
func NewStaticDirectory(records []Credential) (*StaticDirectory, error) {
	d := &StaticDirectory{byEmail: make(map[string]Credential, len(records))}
	for _, rec := range records {
		if err := d.add(rec); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *StaticDirectory) add(rec Credential) error {
	if strings.TrimSpace(rec.Email) == "" {
		return fmt.Errorf("%w: credential email is required", ErrInvalidInput)
	}
	if rec.PasswordHash == "" {
		return fmt.Errorf("%w: credential password hash is required", ErrInvalidInput)
	}
	if !rec.User.Role.Valid() {
		return fmt.Errorf("%w: credential for %s has unknown role %q", ErrInvalidInput, rec.Email, rec.User.Role)
	}
	if _, ok := d.byEmail[rec.Email]; ok {
		return fmt.Errorf("%w: duplicate credential email %s", ErrAlreadyExists, rec.Email)
	}
	d.byEmail[rec.Email] = rec
	return nil
}

// Lookup returns the credential registered under email, or ErrNotFound.
func (d *StaticDirectory) Lookup(ctx context.Context, email string) (Credential, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, ok := d.byEmail[email]
	if !ok {
		return Credential{}, ErrNotFound
	}
	return rec, nil
}

// Register adds a credential at runtime, backing the signup flow. The role
// defaults to USER when unset.
func (d *StaticDirectory) Register(ctx context.Context, email, password, name string, role Role) (Credential, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return Credential{}, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return Credential{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(password) < 8 {
		return Credential{}, ErrWeakPassword
	}
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return Credential{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return Credential{}, err
	}
	rec := Credential{
		Email:        email,
		PasswordHash: hash,
		User: User{
			ID:    ids.New(),
			Email: email,
			Name:  strings.TrimSpace(name),
			Role:  role,
		},
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.add(rec); err != nil {
		return Credential{}, err
	}
	return rec, nil
}

// SeedCredentials returns the demo accounts of the reference deployment.
// All three share one password; a real deployment provisions each entry
// with its own secret.
func SeedCredentials() []Credential {
	const demoPassword = "password123"
	hash, err := HashPassword(demoPassword)
	if err != nil {
		panic(err)
	}
	return []Credential{
		{
			Email:        "admin@example.com",
			PasswordHash: hash,
			User:         User{ID: "1", Email: "admin@example.com", Name: "Admin User", Role: RoleAdmin},
		},
		{
			Email:        "manager@example.com",
			PasswordHash: hash,
			User:         User{ID: "2", Email: "manager@example.com", Name: "Team Manager", Role: RoleManager},
		},
		{
			Email:        "user@example.com",
			PasswordHash: hash,
			User:         User{ID: "3", Email: "user@example.com", Name: "Regular User", Role: RoleUser},
		},
	}
}

// DefaultTeam is the single team every authenticated session is assigned to.
func DefaultTeam() Team {
	return Team{ID: "1", Name: "Development Team", Description: "Main development team"}
}
