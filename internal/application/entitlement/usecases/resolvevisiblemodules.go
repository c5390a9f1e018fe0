package usecases

import (
	"context"
	"fmt"
	"time"

	"cxtrack/internal/application/entitlement/dto"
	"cxtrack/internal/domain/entitlement"
	"cxtrack/internal/domain/organization"
	"cxtrack/internal/domain/trial"
	"cxtrack/internal/shared/logger"
)

// ResultCache stores resolved module lists keyed by the inputs that determine
// them. Implementations decide expiry; a nil cache disables caching.
type ResultCache interface {
	Get(ctx context.Context, key string) (*dto.ModulesResponse, bool)
	Set(ctx context.Context, key string, resp *dto.ModulesResponse)
}

type ResolveVisibleModulesQuery struct {
	OrgSlug string
	Now     time.Time
}

type ResolveVisibleModulesUseCase struct {
	orgRepo  organization.Repository
	resolver *entitlement.Resolver
	cache    ResultCache
	logger   logger.Interface
}

func NewResolveVisibleModulesUseCase(
	orgRepo organization.Repository,
	resolver *entitlement.Resolver,
	cache ResultCache,
	logger logger.Interface,
) *ResolveVisibleModulesUseCase {
	return &ResolveVisibleModulesUseCase{
		orgRepo:  orgRepo,
		resolver: resolver,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *ResolveVisibleModulesUseCase) Execute(ctx context.Context, query ResolveVisibleModulesQuery) (*dto.ModulesResponse, error) {
	org, err := uc.orgRepo.GetBySlug(ctx, query.OrgSlug)
	if err != nil {
		uc.logger.Errorw("failed to get organization", "error", err, "org_slug", query.OrgSlug)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	snap := org.Snapshot()
	cacheKey := resolutionCacheKey(snap, query.Now)

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, cacheKey); ok {
			uc.logger.Debugw("module resolution served from cache",
				"org_slug", query.OrgSlug,
				"cache_key", cacheKey,
			)
			cached.OrgSlug = org.Slug()
			return cached, nil
		}
	}

	modules := uc.resolver.Resolve(snap, query.Now)
	result := dto.ToModulesResponse(org.Slug(), uc.resolver.Tier(snap), snap.Industry, modules)

	if uc.cache != nil {
		uc.cache.Set(ctx, cacheKey, result)
	}

	uc.logger.Debugw("modules resolved",
		"org_slug", query.OrgSlug,
		"tier", result.Tier,
		"module_count", len(result.Modules),
	)

	return result, nil
}

// resolutionCacheKey identifies a resolution result by everything it depends
// on. Time enters only through the trial day counter, which is anchored to
// the start's time-of-day, not the calendar date: the key must change the
// instant the counter ticks, including mid-day expiry, and must never
// collide across orgs whose trials started the same day at different hours.
func resolutionCacheKey(snap entitlement.OrganizationSnapshot, now time.Time) string {
	trialStart := "none"
	if snap.TrialStartedAt != nil {
		trialStart = snap.TrialStartedAt.UTC().Format(time.RFC3339)
	}
	state := trial.Compute(snap.TrialStartedAt, now)
	return fmt.Sprintf("entitlement:modules:%s:%s:%s:%d",
		snap.RawTier, snap.Industry, trialStart, state.DaysRemaining)
}
