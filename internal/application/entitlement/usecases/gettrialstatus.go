package usecases

import (
	"context"
	"fmt"
	"time"

	"cxtrack/internal/application/entitlement/dto"
	"cxtrack/internal/domain/entitlement"
	"cxtrack/internal/domain/organization"
	"cxtrack/internal/shared/logger"
)

type GetTrialStatusQuery struct {
	OrgSlug string
	Now     time.Time
}

type GetTrialStatusUseCase struct {
	orgRepo  organization.Repository
	resolver *entitlement.Resolver
	logger   logger.Interface
}

func NewGetTrialStatusUseCase(
	orgRepo organization.Repository,
	resolver *entitlement.Resolver,
	logger logger.Interface,
) *GetTrialStatusUseCase {
	return &GetTrialStatusUseCase{
		orgRepo:  orgRepo,
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *GetTrialStatusUseCase) Execute(ctx context.Context, query GetTrialStatusQuery) (*dto.TrialStatusResponse, error) {
	org, err := uc.orgRepo.GetBySlug(ctx, query.OrgSlug)
	if err != nil {
		uc.logger.Errorw("failed to get organization", "error", err, "org_slug", query.OrgSlug)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	snap := org.Snapshot()
	state := uc.resolver.TrialState(snap, query.Now)

	uc.logger.Debugw("trial status retrieved",
		"org_slug", query.OrgSlug,
		"tier", uc.resolver.Tier(snap).String(),
		"on_trial", state != nil,
	)

	return dto.ToTrialStatusResponse(org.Slug(), uc.resolver.Tier(snap), state), nil
}
