package enums

import "fmt"

// Role represents an account's access level.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

var validRoles = []Role{
	RoleAdmin,
	RoleManager,
	RoleEmployee,
}

// Capability names a mutating action a role may perform.
type Capability string

const (
	CapManageShifts    Capability = "manage_shifts"
	CapManageUsers     Capability = "manage_users"
	CapApproveRequests Capability = "approve_requests"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageShifts:    true,
		CapManageUsers:     true,
		CapApproveRequests: true,
	},
	RoleManager: {
		CapManageShifts:    true,
		CapApproveRequests: true,
	},
	RoleEmployee: {},
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// Can reports whether the role holds the capability.
func (r Role) Can(cap Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	return caps[cap]
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
