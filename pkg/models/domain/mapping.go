package domain

// Role is a semantic role a dataset column can play. The mapping from roles to
// concrete column names is chosen once per session, either by the user or by
// the header heuristics; every engine treats an unset role as a valid, inert
// input rather than an error.
type Role string

const (
	RoleDate         Role = "date"
	RoleValue        Role = "value"
	RoleCollaborator Role = "collaborator"
	RoleSite         Role = "site"
	RoleSector       Role = "sector"
	RoleReason       Role = "reason"
	RoleBillable     Role = "billable"
	RoleEntryTime    Role = "entry_time"
	RoleExitTime     Role = "exit_time"
	RoleOwnTransport Role = "own_transport"
)

// Roles lists every semantic role in a stable order.
func Roles() []Role {
	return []Role{
		RoleDate, RoleValue, RoleCollaborator, RoleSite, RoleSector,
		RoleReason, RoleBillable, RoleEntryTime, RoleExitTime, RoleOwnTransport,
	}
}

// ColumnMapping associates semantic roles with dataset column names.
// A missing or empty entry means the role is unset.
type ColumnMapping map[Role]string

// Column returns the column mapped to a role and whether the role is set.
func (m ColumnMapping) Column(r Role) (string, bool) {
	col, ok := m[r]
	if !ok || col == "" {
		return "", false
	}
	return col, true
}

// IsSet reports whether a role has a mapped column.
func (m ColumnMapping) IsSet(r Role) bool {
	_, ok := m.Column(r)
	return ok
}
