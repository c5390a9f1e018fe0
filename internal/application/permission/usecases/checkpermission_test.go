package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

func TestCheckPermissionUseCase_Execute_OwnerBypass(t *testing.T) {
	repo := new(mockMembershipRepo)
	repo.On("GetByOrgAndUser", mock.Anything, "acme", "u1").Return(&membership.Membership{
		UserID:  "u1",
		OrgSlug: "acme",
		Role:    membership.RoleOwner,
	}, nil)

	uc := NewCheckPermissionUseCase(repo, logger.NewLogger())

	decision, err := uc.Execute(context.Background(), CheckPermissionQuery{
		OrgSlug:    "acme",
		UserID:     "u1",
		Permission: "invoices.delete",
	})

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "owner", decision.Role)
}

func TestCheckPermissionUseCase_Execute_MemberDenied(t *testing.T) {
	repo := new(mockMembershipRepo)
	repo.On("GetByOrgAndUser", mock.Anything, "acme", "u2").Return(&membership.Membership{
		UserID:      "u2",
		OrgSlug:     "acme",
		Role:        membership.RoleMember,
		Permissions: map[string]bool{"crm.view": true},
	}, nil)

	uc := NewCheckPermissionUseCase(repo, logger.NewLogger())

	denied, err := uc.Execute(context.Background(), CheckPermissionQuery{
		OrgSlug:    "acme",
		UserID:     "u2",
		Permission: "invoices.delete",
	})
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	granted, err := uc.Execute(context.Background(), CheckPermissionQuery{
		OrgSlug:    "acme",
		UserID:     "u2",
		Permission: "crm.view",
	})
	require.NoError(t, err)
	assert.True(t, granted.Allowed)
}

func TestCheckPermissionUseCase_Execute_MembershipNotFound(t *testing.T) {
	repo := new(mockMembershipRepo)
	repo.On("GetByOrgAndUser", mock.Anything, "acme", "ghost").Return(nil, errors.New("record not found"))

	uc := NewCheckPermissionUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CheckPermissionQuery{
		OrgSlug:    "acme",
		UserID:     "ghost",
		Permission: "crm.view",
	})

	assert.Error(t, err)
}

func TestGetCalendarAccessUseCase_Execute_DelegationIsViewOnly(t *testing.T) {
	repo := new(mockMembershipRepo)
	repo.On("GetByOrgAndUser", mock.Anything, "acme", "assistant").Return(&membership.Membership{
		UserID:              "assistant",
		OrgSlug:             "acme",
		Role:                membership.RoleMember,
		CalendarDelegatedBy: []string{"boss"},
	}, nil)

	uc := NewGetCalendarAccessUseCase(repo, logger.NewLogger())

	access, err := uc.Execute(context.Background(), GetCalendarAccessQuery{
		OrgSlug:      "acme",
		RequesterID:  "assistant",
		TargetUserID: "boss",
	})

	require.NoError(t, err)
	assert.True(t, access.CanView)
	assert.False(t, access.CanEdit)
}

func TestGetCalendarAccessUseCase_Execute_ManagerEditsTeam(t *testing.T) {
	repo := new(mockMembershipRepo)
	repo.On("GetByOrgAndUser", mock.Anything, "acme", "mgr").Return(&membership.Membership{
		UserID:  "mgr",
		OrgSlug: "acme",
		Role:    membership.RoleManager,
	}, nil)

	uc := NewGetCalendarAccessUseCase(repo, logger.NewLogger())

	access, err := uc.Execute(context.Background(), GetCalendarAccessQuery{
		OrgSlug:      "acme",
		RequesterID:  "mgr",
		TargetUserID: "report",
	})

	require.NoError(t, err)
	assert.True(t, access.CanView)
	assert.True(t, access.CanEdit)
}
