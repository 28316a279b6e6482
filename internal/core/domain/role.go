package domain

// Role is the capability level of a principal. Levels are ordered numerically
// with 1 as the strongest: a lower value always means more privilege.
type Role int

const (
	RoleAdmin  Role = 1
	RoleEditor Role = 2
	RoleViewer Role = 3
)

// Valid reports whether r is one of the three defined levels.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleViewer
}

// Allows reports whether a principal holding r may perform an operation that
// admits roles up to max. Invalid roles never pass.
func (r Role) Allows(max Role) bool {
	return r.Valid() && max.Valid() && r <= max
}

// Label returns the display name persisted alongside the numeric level.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleEditor:
		return "Editor"
	case RoleViewer:
		return "Viewer"
	default:
		return "Unknown"
	}
}
