// Copyright 2026 The Rideline Authors
// SPDX-License-Identifier: Apache-2.0

package authorize

// Role is a closed set of account roles. The zero value is RoleRider:
// every code path that cannot name a more specific role falls back to
// the rider experience, matching the server's default account type.
type Role int

const (
	// RoleRider is the default consumer role.
	RoleRider Role = iota
	// RoleDriver marks accounts that operate cabs.
	RoleDriver
	// RoleAdmin marks operations staff.
	RoleAdmin
)

// ParseRole maps a wire role string to a Role. Unknown or missing
// values fall through to RoleRider — an unrecognized role must never
// grant a more privileged landing view.
func ParseRole(value string) Role {
	switch value {
	case "driver":
		return RoleDriver
	case "admin":
		return RoleAdmin
	default:
		return RoleRider
	}
}

// String returns the wire representation of the role.
func (role Role) String() string {
	switch role {
	case RoleDriver:
		return "driver"
	case RoleAdmin:
		return "admin"
	default:
		return "rider"
	}
}

// Landing returns the role-specific dashboard view. The switch is
// exhaustive over the closed role set; adding a role without a
// landing view is a compile-visible change here.
func Landing(role Role) View {
	switch role {
	case RoleDriver:
		return ViewDriverDashboard
	case RoleAdmin:
		return ViewAdminDashboard
	case RoleRider:
		return ViewRiderDashboard
	default:
		return ViewRiderDashboard
	}
}
