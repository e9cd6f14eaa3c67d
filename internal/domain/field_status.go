package domain

// FieldStatus is the administrative state of a physical plot.
type FieldStatus string

const (
	FieldActive   FieldStatus = "ACTIVE"
	FieldInactive FieldStatus = "INACTIVE"
)

// Valid reports whether s is a known status.
func (s FieldStatus) Valid() bool {
	return s == FieldActive || s == FieldInactive
}

// Role is a platform account role supplied by the identity layer.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleClient     Role = "CLIENT"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleClient:
		return true
	}
	return false
}
