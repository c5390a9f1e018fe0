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

func TestCreateMembershipUseCase_Execute(t *testing.T) {
	repo := new(mockMembershipRepo)
	defaults := new(mockRoleDefaults)

	defaults.On("DefaultPermissions", mock.Anything, membership.RoleMember).Return(map[string]bool{
		"crm.view":   true,
		"tasks.view": true,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateMembershipUseCase(repo, defaults, logger.NewLogger())

	m, err := uc.Execute(context.Background(), CreateMembershipCommand{
		OrgSlug: "acme",
		UserID:  "u1",
		Role:    "member",
	})

	require.NoError(t, err)
	assert.Equal(t, membership.RoleMember, m.Role)
	assert.True(t, m.HasPermission("crm.view"))
	assert.False(t, m.HasPermission("invoices.delete"))

	repo.AssertExpectations(t)
	defaults.AssertExpectations(t)
}

func TestCreateMembershipUseCase_Execute_ExplicitGrantsWin(t *testing.T) {
	repo := new(mockMembershipRepo)
	defaults := new(mockRoleDefaults)

	defaults.On("DefaultPermissions", mock.Anything, membership.RoleMember).Return(map[string]bool{
		"crm.view":   true,
		"tasks.view": true,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateMembershipUseCase(repo, defaults, logger.NewLogger())

	m, err := uc.Execute(context.Background(), CreateMembershipCommand{
		OrgSlug: "acme",
		UserID:  "u1",
		Role:    "member",
		Permissions: map[string]bool{
			"crm.view":      false,
			"invoices.view": true,
		},
	})

	require.NoError(t, err)
	assert.False(t, m.HasPermission("crm.view"), "explicit deny overrides role default")
	assert.True(t, m.HasPermission("invoices.view"))
	assert.True(t, m.HasPermission("tasks.view"))
}

func TestCreateMembershipUseCase_Execute_UnknownRoleBecomesCustom(t *testing.T) {
	repo := new(mockMembershipRepo)
	defaults := new(mockRoleDefaults)

	defaults.On("DefaultPermissions", mock.Anything, membership.RoleCustom).Return(map[string]bool{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateMembershipUseCase(repo, defaults, logger.NewLogger())

	m, err := uc.Execute(context.Background(), CreateMembershipCommand{
		OrgSlug: "acme",
		UserID:  "u1",
		Role:    "superuser",
	})

	require.NoError(t, err)
	assert.Equal(t, membership.RoleCustom, m.Role)
	assert.False(t, m.HasPermission("crm.view"))
}

func TestCreateMembershipUseCase_Execute_DefaultsError(t *testing.T) {
	repo := new(mockMembershipRepo)
	defaults := new(mockRoleDefaults)

	defaults.On("DefaultPermissions", mock.Anything, membership.RoleManager).Return(nil, errors.New("policy store unavailable"))

	uc := NewCreateMembershipUseCase(repo, defaults, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateMembershipCommand{
		OrgSlug: "acme",
		UserID:  "u1",
		Role:    "manager",
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDelegateCalendarUseCase_Execute(t *testing.T) {
	repo := new(mockMembershipRepo)

	recipient := &membership.Membership{UserID: "assistant", OrgSlug: "acme", Role: membership.RoleMember}
	repo.On("GetByOrgAndUser", mock.Anything, "acme", "assistant").Return(recipient, nil)
	repo.On("Update", mock.Anything, recipient).Return(nil)

	uc := NewDelegateCalendarUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), DelegateCalendarCommand{
		OrgSlug:    "acme",
		FromUserID: "boss",
		ToUserID:   "assistant",
	})

	require.NoError(t, err)
	assert.Contains(t, recipient.CalendarDelegatedBy, "boss")
	assert.True(t, recipient.CanViewUserCalendar("boss"))
	assert.False(t, recipient.CanEditUserCalendar("boss"))
}

func TestDelegateCalendarUseCase_Execute_AlreadyDelegated(t *testing.T) {
	repo := new(mockMembershipRepo)

	recipient := &membership.Membership{
		UserID:              "assistant",
		OrgSlug:             "acme",
		Role:                membership.RoleMember,
		CalendarDelegatedBy: []string{"boss"},
	}
	repo.On("GetByOrgAndUser", mock.Anything, "acme", "assistant").Return(recipient, nil)

	uc := NewDelegateCalendarUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), DelegateCalendarCommand{
		OrgSlug:    "acme",
		FromUserID: "boss",
		ToUserID:   "assistant",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"boss"}, recipient.CalendarDelegatedBy)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelegateCalendarUseCase_Execute_SelfDelegation(t *testing.T) {
	repo := new(mockMembershipRepo)

	uc := NewDelegateCalendarUseCase(repo, logger.NewLogger())

	err := uc.Execute(context.Background(), DelegateCalendarCommand{
		OrgSlug:    "acme",
		FromUserID: "u1",
		ToUserID:   "u1",
	})

	assert.Error(t, err)
}
