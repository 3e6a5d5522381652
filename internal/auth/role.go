package auth

import (
	"fmt"
	"strings"
)

// Role is the closed set of dashboard roles. Every role-gated decision in
// the codebase switches exhaustively over these three values, so adding a
// role is a compile-visible change at each decision point.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// AllRoles lists the valid roles in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleUser}
}

// ParseRole maps raw input to a Role, accepting any casing.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleManager:
		return RoleManager, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, raw)
	}
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// MarshalText encodes the upper-case wire form used by the dashboard.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, string(r))
	}
	return []byte(r), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
