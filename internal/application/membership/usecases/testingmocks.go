package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cxtrack/internal/domain/membership"
)

type mockMembershipRepo struct {
	mock.Mock
}

func (m *mockMembershipRepo) GetByOrgAndUser(ctx context.Context, orgSlug, userID string) (*membership.Membership, error) {
	args := m.Called(ctx, orgSlug, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Membership), args.Error(1)
}

func (m *mockMembershipRepo) ListByOrg(ctx context.Context, orgSlug string) ([]*membership.Membership, error) {
	args := m.Called(ctx, orgSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*membership.Membership), args.Error(1)
}

func (m *mockMembershipRepo) Create(ctx context.Context, mem *membership.Membership) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *mockMembershipRepo) Update(ctx context.Context, mem *membership.Membership) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

type mockRoleDefaults struct {
	mock.Mock
}

func (m *mockRoleDefaults) DefaultPermissions(ctx context.Context, role membership.Role) (map[string]bool, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type mockRoleDefaultsStore struct {
	mock.Mock
}

func (m *mockRoleDefaultsStore) GrantDefault(ctx context.Context, role membership.Role, permission string) error {
	args := m.Called(ctx, role, permission)
	return args.Error(0)
}

func (m *mockRoleDefaultsStore) RevokeDefault(ctx context.Context, role membership.Role, permission string) error {
	args := m.Called(ctx, role, permission)
	return args.Error(0)
}
