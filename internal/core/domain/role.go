package domain

import "strings"

// Role is the capability an actor holds when calling an operation.
// Authentication is external; the transport hands the core an already
// verified role.
type Role string

const (
	RoleOperations Role = "OPERATIONS"
	RoleLegal      Role = "LEGAL"
	RoleFinance    Role = "FINANCE"
	RoleAdmin      Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleOperations, RoleLegal, RoleFinance, RoleAdmin:
		return true
	}
	return false
}

// ParseRole normalises a role string. Unknown roles are returned as-is and
// fail IsValid.
func ParseRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

// Actor identifies who is performing an operation.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
