// Package membership answers per-action permission questions for a user's
// role and grants within one organization. It is independent of module-level
// entitlement: a module can be visible and unlocked while a specific action
// inside it is still denied here.
package membership

import "context"

// Membership is a read-only snapshot of one user's standing in an
// organization: role, explicit permission grants, and calendar delegation.
type Membership struct {
	UserID              string
	OrgSlug             string
	Role                Role
	Permissions         map[string]bool
	TeamCalendarAccess  bool
	CalendarDelegatedBy []string
}

// HasPermission decides a single permission key. Owners and admins bypass
// the map entirely. Everyone else gets exactly what the map says, and an
// absent key is a denial: deny-by-default is the contract, not an accident.
func (m *Membership) HasPermission(key string) bool {
	if m.Role.BypassesPermissionChecks() {
		return true
	}
	return m.Permissions[key]
}

// CanViewTeamCalendars reports whether the member may see the whole team's
// calendars: managers and above implicitly, anyone else via an explicit flag.
func (m *Membership) CanViewTeamCalendars() bool {
	return m.Role.CanManageTeamCalendars() || m.TeamCalendarAccess
}

// CanViewUserCalendar reports whether the member may view the target user's
// calendar: their own always, any calendar when they hold team visibility,
// otherwise only when the target has delegated their calendar to this member.
func (m *Membership) CanViewUserCalendar(targetUserID string) bool {
	if m.UserID == targetUserID {
		return true
	}
	if m.CanViewTeamCalendars() {
		return true
	}
	for _, delegator := range m.CalendarDelegatedBy {
		if delegator == targetUserID {
			return true
		}
	}
	return false
}

// CanEditUserCalendar reports whether the member may edit the target user's
// calendar: their own, or any calendar when manager and above. Delegation
// grants view access only, never edit; the asymmetry is intentional.
func (m *Membership) CanEditUserCalendar(targetUserID string) bool {
	if m.UserID == targetUserID {
		return true
	}
	return m.Role.CanManageTeamCalendars()
}

// Repository loads membership snapshots from the backing store.
type Repository interface {
	GetByOrgAndUser(ctx context.Context, orgSlug, userID string) (*Membership, error)
	ListByOrg(ctx context.Context, orgSlug string) ([]*Membership, error)
	Create(ctx context.Context, m *Membership) error
	Update(ctx context.Context, m *Membership) error
}
