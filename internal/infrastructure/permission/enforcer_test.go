package permission

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

func setupEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	// The casbin adapter uses more than one pooled connection at a time, so a
	// plain ":memory:" database (private to each connection) cannot back it.
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	enforcer, err := NewEnforcer(db, logger.NewLogger())
	require.NoError(t, err)

	require.NoError(t, InitRolePermissions(enforcer, logger.NewLogger()))
	return enforcer
}

func TestDefaultPermissions_Member(t *testing.T) {
	enforcer := setupEnforcer(t)

	permissions, err := enforcer.DefaultPermissions(context.Background(), membership.RoleMember)
	require.NoError(t, err)

	assert.True(t, permissions["customers.read"])
	assert.True(t, permissions["tasks.write"])
	assert.False(t, permissions["customers.write"])
	assert.False(t, permissions["settings.manage"])
}

func TestDefaultPermissions_Owner(t *testing.T) {
	enforcer := setupEnforcer(t)

	permissions, err := enforcer.DefaultPermissions(context.Background(), membership.RoleOwner)
	require.NoError(t, err)

	assert.True(t, permissions["settings.manage"])
	assert.True(t, permissions["customers.delete"])
	assert.True(t, permissions["financials.read"])
}

func TestDefaultPermissions_CustomRoleIsEmpty(t *testing.T) {
	enforcer := setupEnforcer(t)

	permissions, err := enforcer.DefaultPermissions(context.Background(), membership.RoleCustom)
	require.NoError(t, err)

	assert.Empty(t, permissions)
}

func TestInitRolePermissions_Idempotent(t *testing.T) {
	enforcer := setupEnforcer(t)
	require.NoError(t, InitRolePermissions(enforcer, logger.NewLogger()))

	permissions, err := enforcer.DefaultPermissions(context.Background(), membership.RoleManager)
	require.NoError(t, err)
	assert.Len(t, permissions, len(roleDefaultGrants["manager"]))
}

func TestGrantAndRevokeDefault(t *testing.T) {
	enforcer := setupEnforcer(t)
	ctx := context.Background()

	require.NoError(t, enforcer.GrantDefault(ctx, membership.RoleMember, "inventory.read"))
	permissions, err := enforcer.DefaultPermissions(ctx, membership.RoleMember)
	require.NoError(t, err)
	assert.True(t, permissions["inventory.read"])

	require.NoError(t, enforcer.RevokeDefault(ctx, membership.RoleMember, "inventory.read"))
	permissions, err = enforcer.DefaultPermissions(ctx, membership.RoleMember)
	require.NoError(t, err)
	assert.False(t, permissions["inventory.read"])
}
