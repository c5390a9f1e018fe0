package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/errors"
	"cxtrack/internal/shared/logger"
)

func TestMembershipRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db, logger.NewLogger())
	ctx := context.Background()

	m := &membership.Membership{
		UserID:  "u1",
		OrgSlug: "acme",
		Role:    membership.RoleMember,
		Permissions: map[string]bool{
			"crm.view":        true,
			"invoices.delete": false,
		},
		TeamCalendarAccess:  true,
		CalendarDelegatedBy: []string{"boss"},
	}

	require.NoError(t, repo.Create(ctx, m))

	found, err := repo.GetByOrgAndUser(ctx, "acme", "u1")
	require.NoError(t, err)
	assert.Equal(t, membership.RoleMember, found.Role)
	assert.True(t, found.HasPermission("crm.view"))
	assert.False(t, found.HasPermission("invoices.delete"))
	assert.False(t, found.HasPermission("never.granted"))
	assert.True(t, found.TeamCalendarAccess)
	assert.Equal(t, []string{"boss"}, found.CalendarDelegatedBy)
}

func TestMembershipRepository_GetByOrgAndUser_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db, logger.NewLogger())

	_, err := repo.GetByOrgAndUser(context.Background(), "acme", "ghost")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMembershipRepository_DuplicateOrgUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db, logger.NewLogger())
	ctx := context.Background()

	m := &membership.Membership{UserID: "u1", OrgSlug: "acme", Role: membership.RoleOwner}
	require.NoError(t, repo.Create(ctx, m))

	dup := &membership.Membership{UserID: "u1", OrgSlug: "acme", Role: membership.RoleMember}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestMembershipRepository_ListByOrg(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &membership.Membership{UserID: "b-user", OrgSlug: "acme", Role: membership.RoleMember}))
	require.NoError(t, repo.Create(ctx, &membership.Membership{UserID: "a-user", OrgSlug: "acme", Role: membership.RoleOwner}))
	require.NoError(t, repo.Create(ctx, &membership.Membership{UserID: "c-user", OrgSlug: "other", Role: membership.RoleOwner}))

	list, err := repo.ListByOrg(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a-user", list[0].UserID)
	assert.Equal(t, "b-user", list[1].UserID)
}

func TestMembershipRepository_Update_Delegations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db, logger.NewLogger())
	ctx := context.Background()

	m := &membership.Membership{UserID: "assistant", OrgSlug: "acme", Role: membership.RoleMember}
	require.NoError(t, repo.Create(ctx, m))

	m.CalendarDelegatedBy = append(m.CalendarDelegatedBy, "boss")
	m.Permissions = map[string]bool{"calendar.view": true}
	require.NoError(t, repo.Update(ctx, m))

	found, err := repo.GetByOrgAndUser(ctx, "acme", "assistant")
	require.NoError(t, err)
	assert.Equal(t, []string{"boss"}, found.CalendarDelegatedBy)
	assert.True(t, found.HasPermission("calendar.view"))
	assert.True(t, found.CanViewUserCalendar("boss"))
	assert.False(t, found.CanEditUserCalendar("boss"))
}

func TestMembershipRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db, logger.NewLogger())

	m := &membership.Membership{UserID: "ghost", OrgSlug: "acme", Role: membership.RoleMember}
	err := repo.Update(context.Background(), m)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMembershipRepository_UnknownRoleLoadsAsCustom(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMembershipRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, db.Exec(
		"INSERT INTO memberships (org_slug, user_id, role, team_calendar_access) VALUES (?, ?, ?, ?)",
		"acme", "legacy", "superuser", false,
	).Error)

	found, err := repo.GetByOrgAndUser(ctx, "acme", "legacy")
	require.NoError(t, err)
	assert.Equal(t, membership.RoleCustom, found.Role)
	assert.False(t, found.HasPermission("crm.view"))
}
