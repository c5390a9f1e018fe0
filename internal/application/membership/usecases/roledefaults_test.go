package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

func TestGetRoleDefaultsUseCase_Execute_SortsGrants(t *testing.T) {
	defaults := new(mockRoleDefaults)
	defaults.On("DefaultPermissions", mock.Anything, membership.RoleMember).Return(map[string]bool{
		"tasks.read":     true,
		"calendar.read":  true,
		"customers.read": true,
	}, nil)

	uc := NewGetRoleDefaultsUseCase(defaults, logger.NewLogger())
	result, err := uc.Execute(context.Background(), GetRoleDefaultsQuery{Role: "member"})
	require.NoError(t, err)

	assert.Equal(t, "member", result.Role)
	assert.Equal(t, []string{"calendar.read", "customers.read", "tasks.read"}, result.Permissions)
}

func TestGetRoleDefaultsUseCase_Execute_UnknownRole(t *testing.T) {
	uc := NewGetRoleDefaultsUseCase(new(mockRoleDefaults), logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetRoleDefaultsQuery{Role: "superuser"})
	assert.Error(t, err)
}

func TestUpdateRoleDefaultsUseCase_Execute_Grant(t *testing.T) {
	store := new(mockRoleDefaultsStore)
	store.On("GrantDefault", mock.Anything, membership.RoleMember, "inventory.read").Return(nil)

	uc := NewUpdateRoleDefaultsUseCase(store, logger.NewLogger())
	err := uc.Execute(context.Background(), UpdateRoleDefaultsCommand{
		Role:       "member",
		Permission: "inventory.read",
	})
	require.NoError(t, err)

	store.AssertExpectations(t)
}

func TestUpdateRoleDefaultsUseCase_Execute_Revoke(t *testing.T) {
	store := new(mockRoleDefaultsStore)
	store.On("RevokeDefault", mock.Anything, membership.RoleManager, "pipeline.write").Return(nil)

	uc := NewUpdateRoleDefaultsUseCase(store, logger.NewLogger())
	err := uc.Execute(context.Background(), UpdateRoleDefaultsCommand{
		Role:       "manager",
		Permission: "pipeline.write",
		Revoke:     true,
	})
	require.NoError(t, err)

	store.AssertExpectations(t)
}

func TestUpdateRoleDefaultsUseCase_Execute_RejectsCustomRole(t *testing.T) {
	store := new(mockRoleDefaultsStore)

	uc := NewUpdateRoleDefaultsUseCase(store, logger.NewLogger())
	err := uc.Execute(context.Background(), UpdateRoleDefaultsCommand{
		Role:       "custom",
		Permission: "customers.read",
	})
	assert.Error(t, err)

	store.AssertNotCalled(t, "GrantDefault", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRoleDefaultsUseCase_Execute_RequiresPermission(t *testing.T) {
	uc := NewUpdateRoleDefaultsUseCase(new(mockRoleDefaultsStore), logger.NewLogger())

	err := uc.Execute(context.Background(), UpdateRoleDefaultsCommand{Role: "member"})
	assert.Error(t, err)
}
