// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege tier of a user.
type Role string

const (
	// RoleUser indicates a regular collector account; the default on registration.
	RoleUser Role = "user"
	// RoleAdmin indicates a catalog administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString parses a role string, falling back to RoleUser for unknown values.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUser
	}

	return role
}
