// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

package sec

// # CMS Roles

// UserRole represents the authorization level granted to a CMS account.
// The public site needs no role at all; roles only gate the admin API.
type UserRole string

const (
	// Unrestricted system access, including hard deletes
	RoleAdmin UserRole = "admin"

	// Can create and edit content across every kind
	RoleEditor UserRole = "editor"

	// Read-only access to the admin API (draft previews, reporting)
	RoleViewer UserRole = "viewer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
