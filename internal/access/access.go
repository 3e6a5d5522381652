// Package access implements the role-membership visibility rules applied
// uniformly to navigation entries, quick actions and dashboard stat groups.
package access

import "connectpro.org/internal/auth"

// Item is a statically configured dashboard entry gated by role.
type Item struct {
	Name         string      `json:"name"`
	Target       string      `json:"target"`
	AllowedRoles []auth.Role `json:"allowed_roles"`
}

// IsVisible reports whether role may see item. A role missing from the
// allowed set is an ordinary false, never an error.
func IsVisible(item Item, role auth.Role) bool {
	for _, allowed := range item.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// FilterVisible returns the items visible to role, preserving input order.
func FilterVisible(items []Item, role auth.Role) []Item {
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if IsVisible(item, role) {
			visible = append(visible, item)
		}
	}
	return visible
}

// Everyone allows all three roles.
func Everyone() []auth.Role {
	return []auth.Role{auth.RoleAdmin, auth.RoleManager, auth.RoleUser}
}

// ManagerAndUp allows ADMIN and MANAGER.
func ManagerAndUp() []auth.Role {
	return []auth.Role{auth.RoleAdmin, auth.RoleManager}
}

// AdminOnly allows ADMIN.
func AdminOnly() []auth.Role {
	return []auth.Role{auth.RoleAdmin}
}
