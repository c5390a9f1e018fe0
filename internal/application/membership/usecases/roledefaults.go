package usecases

import (
	"context"
	"fmt"
	"sort"

	"cxtrack/internal/application/membership/dto"
	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

// RoleDefaultsStore manages the per-role default grant table the provisioning
// path reads from. Changes apply to memberships created afterwards; existing
// memberships keep their materialized permission maps.
type RoleDefaultsStore interface {
	GrantDefault(ctx context.Context, role membership.Role, permission string) error
	RevokeDefault(ctx context.Context, role membership.Role, permission string) error
}

type GetRoleDefaultsQuery struct {
	Role string
}

type GetRoleDefaultsUseCase struct {
	roleDefaults RoleDefaults
	logger       logger.Interface
}

func NewGetRoleDefaultsUseCase(roleDefaults RoleDefaults, logger logger.Interface) *GetRoleDefaultsUseCase {
	return &GetRoleDefaultsUseCase{
		roleDefaults: roleDefaults,
		logger:       logger,
	}
}

// Execute returns the role's default permission grants, sorted by key.
func (uc *GetRoleDefaultsUseCase) Execute(ctx context.Context, query GetRoleDefaultsQuery) (*dto.RoleDefaultsDTO, error) {
	role := membership.Role(query.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role: %s", query.Role)
	}

	grants, err := uc.roleDefaults.DefaultPermissions(ctx, role)
	if err != nil {
		uc.logger.Errorw("failed to get role defaults", "error", err, "role", role)
		return nil, fmt.Errorf("failed to get role defaults: %w", err)
	}

	permissions := make([]string, 0, len(grants))
	for key := range grants {
		permissions = append(permissions, key)
	}
	sort.Strings(permissions)

	return &dto.RoleDefaultsDTO{
		Role:        role.String(),
		Permissions: permissions,
	}, nil
}

type UpdateRoleDefaultsCommand struct {
	Role       string
	Permission string
	// Revoke removes the grant instead of adding it.
	Revoke bool
}

type UpdateRoleDefaultsUseCase struct {
	store  RoleDefaultsStore
	logger logger.Interface
}

func NewUpdateRoleDefaultsUseCase(store RoleDefaultsStore, logger logger.Interface) *UpdateRoleDefaultsUseCase {
	return &UpdateRoleDefaultsUseCase{
		store:  store,
		logger: logger,
	}
}

// Execute grants or revokes a default permission for a role. Custom roles
// carry no defaults and cannot be edited here; their members get explicit
// permission maps at provisioning time.
func (uc *UpdateRoleDefaultsUseCase) Execute(ctx context.Context, cmd UpdateRoleDefaultsCommand) error {
	role := membership.Role(cmd.Role)
	if !role.IsValid() {
		return fmt.Errorf("unknown role: %s", cmd.Role)
	}
	if role == membership.RoleCustom {
		return fmt.Errorf("custom roles have no default grants")
	}
	if cmd.Permission == "" {
		return fmt.Errorf("permission key is required")
	}

	if cmd.Revoke {
		if err := uc.store.RevokeDefault(ctx, role, cmd.Permission); err != nil {
			return err
		}
	} else {
		if err := uc.store.GrantDefault(ctx, role, cmd.Permission); err != nil {
			return err
		}
	}

	uc.logger.Infow("role defaults updated",
		"role", role,
		"permission", cmd.Permission,
		"revoked", cmd.Revoke,
	)

	return nil
}
