package usecases

import (
	"context"
	"fmt"

	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

// RoleDefaults supplies the default permission grants for a role. The store
// is consulted once, when the membership is created; the materialized map is
// what every later permission check reads.
type RoleDefaults interface {
	DefaultPermissions(ctx context.Context, role membership.Role) (map[string]bool, error)
}

type CreateMembershipCommand struct {
	OrgSlug            string
	UserID             string
	Role               string
	Permissions        map[string]bool
	TeamCalendarAccess bool
}

type CreateMembershipUseCase struct {
	membershipRepo membership.Repository
	roleDefaults   RoleDefaults
	logger         logger.Interface
}

func NewCreateMembershipUseCase(
	membershipRepo membership.Repository,
	roleDefaults RoleDefaults,
	logger logger.Interface,
) *CreateMembershipUseCase {
	return &CreateMembershipUseCase{
		membershipRepo: membershipRepo,
		roleDefaults:   roleDefaults,
		logger:         logger,
	}
}

func (uc *CreateMembershipUseCase) Execute(ctx context.Context, cmd CreateMembershipCommand) (*membership.Membership, error) {
	role := membership.ParseRole(cmd.Role)

	permissions, err := uc.roleDefaults.DefaultPermissions(ctx, role)
	if err != nil {
		uc.logger.Errorw("failed to load role defaults", "error", err, "role", role.String())
		return nil, fmt.Errorf("failed to load role defaults: %w", err)
	}
	if permissions == nil {
		permissions = make(map[string]bool)
	}

	// Explicit grants and denies from the caller win over role defaults.
	for key, allowed := range cmd.Permissions {
		permissions[key] = allowed
	}

	m := &membership.Membership{
		UserID:             cmd.UserID,
		OrgSlug:            cmd.OrgSlug,
		Role:               role,
		Permissions:        permissions,
		TeamCalendarAccess: cmd.TeamCalendarAccess,
	}

	if err := uc.membershipRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to create membership",
			"error", err,
			"org_slug", cmd.OrgSlug,
			"user_id", cmd.UserID,
		)
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	uc.logger.Infow("membership created",
		"org_slug", cmd.OrgSlug,
		"user_id", cmd.UserID,
		"role", role.String(),
	)

	return m, nil
}
