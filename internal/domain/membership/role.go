package membership

import "strings"

// Role is a member's role within one organization.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleCustom  Role = "custom"
)

// IsValid checks if the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager, RoleMember, RoleCustom:
		return true
	}
	return false
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// BypassesPermissionChecks reports whether the role is granted every
// permission unconditionally.
func (r Role) BypassesPermissionChecks() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanManageTeamCalendars reports whether the role sees team calendars
// without an explicit grant.
func (r Role) CanManageTeamCalendars() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleManager
}

// ParseRole maps a raw role string to a Role. Unknown values become custom:
// a custom role has no implicit grants and is driven entirely by its
// explicit permission map, which is the safe reading of a role string this
// code does not recognize.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return RoleCustom
	}
	return r
}
