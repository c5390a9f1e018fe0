package usecases

import (
	"context"
	"fmt"

	"cxtrack/internal/application/permission/dto"
	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

type CheckPermissionQuery struct {
	OrgSlug    string
	UserID     string
	Permission string
}

type CheckPermissionUseCase struct {
	membershipRepo membership.Repository
	logger         logger.Interface
}

func NewCheckPermissionUseCase(membershipRepo membership.Repository, logger logger.Interface) *CheckPermissionUseCase {
	return &CheckPermissionUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

func (uc *CheckPermissionUseCase) Execute(ctx context.Context, query CheckPermissionQuery) (*dto.PermissionDecision, error) {
	m, err := uc.membershipRepo.GetByOrgAndUser(ctx, query.OrgSlug, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get membership",
			"error", err,
			"org_slug", query.OrgSlug,
			"user_id", query.UserID,
		)
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	allowed := m.HasPermission(query.Permission)

	uc.logger.Debugw("permission checked",
		"org_slug", query.OrgSlug,
		"user_id", query.UserID,
		"permission", query.Permission,
		"allowed", allowed,
	)

	return &dto.PermissionDecision{
		Allowed: allowed,
		Role:    m.Role.String(),
	}, nil
}
