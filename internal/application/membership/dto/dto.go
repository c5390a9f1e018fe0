package dto

import "cxtrack/internal/domain/membership"

// CreateMembershipRequest is the payload for provisioning a member into an
// organization. Permissions override the role defaults key by key; a false
// value is an explicit deny.
type CreateMembershipRequest struct {
	UserID             string          `json:"user_id" binding:"required"`
	Role               string          `json:"role" binding:"required"`
	Permissions        map[string]bool `json:"permissions"`
	TeamCalendarAccess bool            `json:"team_calendar_access"`
}

// DelegateCalendarRequest grants the target user view access to the caller's
// calendar.
type DelegateCalendarRequest struct {
	ToUserID string `json:"to_user_id" binding:"required"`
}

// UpdateRoleDefaultsRequest adds a permission to a role's default grant set.
type UpdateRoleDefaultsRequest struct {
	Permission string `json:"permission" binding:"required"`
}

// RoleDefaultsDTO is a role's default grant set, sorted by permission key.
type RoleDefaultsDTO struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type MembershipDTO struct {
	UserID              string          `json:"user_id"`
	OrgSlug             string          `json:"org_slug"`
	Role                string          `json:"role"`
	Permissions         map[string]bool `json:"permissions"`
	TeamCalendarAccess  bool            `json:"team_calendar_access"`
	CalendarDelegatedBy []string        `json:"calendar_delegated_by,omitempty"`
}

func ToMembershipDTO(m *membership.Membership) *MembershipDTO {
	if m == nil {
		return nil
	}
	return &MembershipDTO{
		UserID:              m.UserID,
		OrgSlug:             m.OrgSlug,
		Role:                m.Role.String(),
		Permissions:         m.Permissions,
		TeamCalendarAccess:  m.TeamCalendarAccess,
		CalendarDelegatedBy: m.CalendarDelegatedBy,
	}
}
