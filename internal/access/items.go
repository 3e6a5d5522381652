package access

// Navigation is the dashboard sidebar. Order matters: the filter is stable
// and the UI renders entries exactly as listed here.
func Navigation() []Item {
	return []Item{
		{Name: "Dashboard", Target: "/dashboard", AllowedRoles: Everyone()},
		{Name: "Team", Target: "/dashboard/team", AllowedRoles: Everyone()},
		{Name: "Projects", Target: "/dashboard/projects", AllowedRoles: Everyone()},
		{Name: "Users", Target: "/dashboard/users", AllowedRoles: ManagerAndUp()},
		{Name: "Analytics", Target: "/dashboard/analytics", AllowedRoles: ManagerAndUp()},
		{Name: "Admin Panel", Target: "/admin", AllowedRoles: AdminOnly()},
		{Name: "Settings", Target: "/dashboard/settings", AllowedRoles: Everyone()},
	}
}

// QuickActions lists the dashboard quick-action tiles.
func QuickActions() []Item {
	return []Item{
		{Name: "Invite Team Member", Target: "/dashboard/team/invite", AllowedRoles: ManagerAndUp()},
		{Name: "Create Project", Target: "/dashboard/projects/new", AllowedRoles: Everyone()},
		{Name: "Schedule Meeting", Target: "/dashboard/calendar/new", AllowedRoles: Everyone()},
		{Name: "Send Announcement", Target: "/dashboard/announcements/new", AllowedRoles: ManagerAndUp()},
	}
}
