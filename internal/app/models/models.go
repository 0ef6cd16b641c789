package models

// Role defines the portal user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known portal roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// CanBroadcast reports whether the role may trigger an email blast or
// moderate role-gated content (notices, study materials).
func (r Role) CanBroadcast() bool {
	return r == RoleAdmin || r == RoleFaculty
}
