package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"owner", RoleOwner},
		{"admin", RoleAdmin},
		{"manager", RoleManager},
		{"member", RoleMember},
		{"custom", RoleCustom},
		{"OWNER", RoleOwner},
		{" admin ", RoleAdmin},
		{"superuser", RoleCustom},
		{"", RoleCustom},
	}

	for _, tc := range tests {
		t.Run("raw="+tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseRole(tc.raw))
		})
	}
}

func TestRole_BypassesPermissionChecks(t *testing.T) {
	assert.True(t, RoleOwner.BypassesPermissionChecks())
	assert.True(t, RoleAdmin.BypassesPermissionChecks())
	assert.False(t, RoleManager.BypassesPermissionChecks())
	assert.False(t, RoleMember.BypassesPermissionChecks())
	assert.False(t, RoleCustom.BypassesPermissionChecks())
}

func TestHasPermission_OwnerBypassesMap(t *testing.T) {
	m := &Membership{
		UserID:      "u1",
		OrgSlug:     "acme",
		Role:        RoleOwner,
		Permissions: map[string]bool{"invoices.delete": false},
	}

	// Bypass roles ignore the permission map entirely, even explicit denies.
	assert.True(t, m.HasPermission("invoices.delete"))
	assert.True(t, m.HasPermission("never.granted"))
}

func TestHasPermission_MemberDeniedByDefault(t *testing.T) {
	m := &Membership{
		UserID:  "u2",
		OrgSlug: "acme",
		Role:    RoleMember,
	}

	assert.False(t, m.HasPermission("crm.view"))
	assert.False(t, m.HasPermission("anything.at.all"))
}

func TestHasPermission_MemberMapLookup(t *testing.T) {
	m := &Membership{
		UserID:  "u2",
		OrgSlug: "acme",
		Role:    RoleMember,
		Permissions: map[string]bool{
			"crm.view":        true,
			"invoices.delete": false,
		},
	}

	assert.True(t, m.HasPermission("crm.view"))
	assert.False(t, m.HasPermission("invoices.delete"))
	assert.False(t, m.HasPermission("crm.edit"))
}

func TestCanViewTeamCalendars(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		access bool
		want   bool
	}{
		{"owner without flag", RoleOwner, false, true},
		{"admin without flag", RoleAdmin, false, true},
		{"manager without flag", RoleManager, false, true},
		{"member without flag", RoleMember, false, false},
		{"member with flag", RoleMember, true, true},
		{"custom with flag", RoleCustom, true, true},
		{"custom without flag", RoleCustom, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &Membership{Role: tc.role, TeamCalendarAccess: tc.access}
			assert.Equal(t, tc.want, m.CanViewTeamCalendars())
		})
	}
}

func TestCalendarDelegationGrantsViewNotEdit(t *testing.T) {
	m := &Membership{
		UserID:              "assistant",
		Role:                RoleMember,
		CalendarDelegatedBy: []string{"boss"},
	}

	assert.True(t, m.CanViewUserCalendar("boss"))
	assert.False(t, m.CanEditUserCalendar("boss"))

	// No delegation, no access to third parties.
	assert.False(t, m.CanViewUserCalendar("stranger"))
	assert.False(t, m.CanEditUserCalendar("stranger"))
}

func TestOwnCalendarAlwaysAccessible(t *testing.T) {
	m := &Membership{UserID: "u3", Role: RoleMember}

	assert.True(t, m.CanViewUserCalendar("u3"))
	assert.True(t, m.CanEditUserCalendar("u3"))
}

func TestTeamCalendarFlagGrantsViewNotEdit(t *testing.T) {
	// Team-wide visibility (role or explicit flag) implies viewing any
	// member's calendar; editing still requires the role or ownership.
	m := &Membership{UserID: "coord", Role: RoleMember, TeamCalendarAccess: true}

	assert.True(t, m.CanViewUserCalendar("teammate"))
	assert.False(t, m.CanEditUserCalendar("teammate"))
}

func TestManagerCanEditTeamCalendars(t *testing.T) {
	for _, role := range []Role{RoleOwner, RoleAdmin, RoleManager} {
		m := &Membership{UserID: "mgr", Role: role}
		assert.True(t, m.CanViewUserCalendar("report"), "role %s", role)
		assert.True(t, m.CanEditUserCalendar("report"), "role %s", role)
	}
}
