package access

import (
	"testing"

	"connectpro.org/internal/auth"
)

func TestIsVisible(t *testing.T) {
	item := Item{Name: "Admin Panel", AllowedRoles: AdminOnly()}

	if !IsVisible(item, auth.RoleAdmin) {
		t.Fatal("expected admin to see the admin panel")
	}
	if IsVisible(item, auth.RoleManager) || IsVisible(item, auth.RoleUser) {
		t.Fatal("expected non-admin roles to be filtered out")
	}
	if IsVisible(Item{Name: "Empty"}, auth.RoleAdmin) {
		t.Fatal("an empty allowed set must hide the item from everyone")
	}
}

func TestFilterVisiblePreservesOrder(t *testing.T) {
	items := []Item{
		{Name: "A", AllowedRoles: []auth.Role{auth.RoleAdmin}},
		{Name: "B", AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleUser}},
		{Name: "C", AllowedRoles: []auth.Role{auth.RoleUser}},
	}

	got := FilterVisible(items, auth.RoleUser)
	if len(got) != 2 || got[0].Name != "B" || got[1].Name != "C" {
		t.Fatalf("unexpected filter result: %+v", got)
	}

	if got := FilterVisible(items, auth.RoleManager); len(got) != 0 {
		t.Fatalf("expected empty result for manager, got %+v", got)
	}
	if got := FilterVisible(nil, auth.RoleAdmin); len(got) != 0 {
		t.Fatalf("expected empty result for nil input, got %+v", got)
	}
}

func TestNavigationVisibilityByRole(t *testing.T) {
	counts := map[auth.Role]int{
		auth.RoleAdmin:   7,
		auth.RoleManager: 6,
		auth.RoleUser:    4,
	}
	for role, want := range counts {
		got := FilterVisible(Navigation(), role)
		if len(got) != want {
			t.Fatalf("navigation for %s: got %d entries, want %d", role, len(got), want)
		}
		sawAdminPanel := false
		for _, item := range got {
			if item.Name == "Admin Panel" {
				sawAdminPanel = true
			}
		}
		if sawAdminPanel != (role == auth.RoleAdmin) {
			t.Fatalf("admin panel visibility wrong for %s", role)
		}
	}
}

func TestQuickActionsVisibilityByRole(t *testing.T) {
	if got := FilterVisible(QuickActions(), auth.RoleUser); len(got) != 2 {
		t.Fatalf("user quick actions: got %d, want 2", len(got))
	}
	for _, role := range []auth.Role{auth.RoleAdmin, auth.RoleManager} {
		if got := FilterVisible(QuickActions(), role); len(got) != 4 {
			t.Fatalf("%s quick actions: got %d, want 4", role, len(got))
		}
	}
}
