package enums

import "fmt"

// Role is the access level of a backoffice user.
type Role string

const (
	RoleAdmin Role = "admin"
)

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	return r == RoleAdmin
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q", value)
	}
	return role, nil
}
