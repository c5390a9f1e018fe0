// Package entitlement combines the module catalog, industry templates, plan
// access table, and trial policy into per-organization visibility decisions:
// for each module, is it shown, and if shown, is it usable or paywalled.
//
// The resolver is a pure function of (organization snapshot, now). It never
// errors on malformed organization data; every missing or unknown field has a
// fail-safe default (unknown industry falls back to the general template,
// unknown tier normalizes to free, missing trial start means a fresh trial).
package entitlement

import (
	"cxtrack/internal/domain/catalog"
	"cxtrack/internal/domain/industry"
	"cxtrack/internal/domain/plan"
	"cxtrack/internal/domain/trial"
	"cxtrack/internal/shared/logger"
	"time"
)

// VisibleModule is one entry of a resolution result: module metadata with
// industry labels applied, plus lock and trial annotations.
type VisibleModule struct {
	catalog.Module

	// Locked means the module is shown but paywalled: either the plan never
	// included it, or it was a trial perk whose window has closed.
	Locked bool `json:"locked"`

	// TrialFeature marks a module that is usable only because of an active
	// free-tier trial. Once the trial expires the module is reported as
	// plainly locked, not as an expired trial feature.
	TrialFeature bool `json:"trial_feature"`

	// TrialDaysRemaining is set only for trial-only modules on the free
	// tier; nil everywhere else, including all paid tiers.
	TrialDaysRemaining *int `json:"trial_days_remaining,omitempty"`
}

// trialOnlyModules are granted to free-tier organizations for the duration of
// the trial window and lock once it expires, regardless of the plan table.
var trialOnlyModules = map[string]bool{
	"pipeline":   true,
	"calls":      true,
	"products":   true,
	"inventory":  true,
	"suppliers":  true,
	"financials": true,
}

// Resolver evaluates module visibility for organizations. All rule tables
// are injected immutable data; a zero Resolver is not usable, construct with
// NewResolver or NewDefaultResolver.
type Resolver struct {
	registry  *catalog.Registry
	templates *industry.TemplateSet
	access    *plan.AccessMap
	trialOnly map[string]bool
	logger    logger.Interface
}

// NewResolver builds a resolver over explicit rule tables.
func NewResolver(
	registry *catalog.Registry,
	templates *industry.TemplateSet,
	access *plan.AccessMap,
	trialOnly map[string]bool,
	log logger.Interface,
) *Resolver {
	return &Resolver{
		registry:  registry,
		templates: templates,
		access:    access,
		trialOnly: trialOnly,
		logger:    log,
	}
}

// NewDefaultResolver builds a resolver over the built-in rule tables.
func NewDefaultResolver(log logger.Interface) *Resolver {
	return NewResolver(catalog.Default(), industry.Default(), plan.DefaultAccessMap(), trialOnlyModules, log)
}

// Resolve computes the visible module list for the organization at the given
// instant. Output order is exactly the industry template's order with
// unknown-catalog keys removed; callers must not re-sort it, it drives
// navigation.
func (r *Resolver) Resolve(snap OrganizationSnapshot, now time.Time) []VisibleModule {
	tier := plan.NormalizeTier(snap.RawTier)
	allowed := r.access.AllowedSet(tier)

	var trialState trial.State
	if tier == plan.TierFree {
		trialState = trial.Compute(snap.TrialStartedAt, now)
	}

	templateKeys := r.templates.Modules(snap.Industry)
	visible := make([]VisibleModule, 0, len(templateKeys))

	for _, key := range templateKeys {
		base, ok := r.registry.Get(key)
		if !ok {
			// Template data and catalog can drift; a key the catalog no
			// longer knows is dropped from the output. Data-integrity
			// problem, not a request failure.
			r.logger.Warnw("industry template references unknown module",
				"module", key,
				"industry", snap.Industry,
			)
			continue
		}

		isTrialOnly := tier == plan.TierFree && r.trialOnly[key]

		// Two independent lock reasons: the plan never included the module,
		// or it was a trial perk that has since expired. Both apply even
		// when the other does not.
		locked := !allowed[key] || (isTrialOnly && trialState.Expired)
		trialFeature := isTrialOnly && !trialState.Expired

		if override, ok := r.templates.Label(snap.Industry, key); ok {
			if override.Name != "" {
				base.Name = override.Name
			}
			if override.Description != "" {
				base.Description = override.Description
			}
		}

		vm := VisibleModule{
			Module:       base,
			Locked:       locked,
			TrialFeature: trialFeature,
		}
		if isTrialOnly {
			days := trialState.DaysRemaining
			vm.TrialDaysRemaining = &days
		}

		visible = append(visible, vm)
	}

	return visible
}

// TrialState returns the trial window for the organization, or nil for any
// paid tier: trial arithmetic is only meaningful on the free tier and must
// not be reported elsewhere, whatever the raw trial metadata says.
func (r *Resolver) TrialState(snap OrganizationSnapshot, now time.Time) *trial.State {
	if plan.NormalizeTier(snap.RawTier) != plan.TierFree {
		return nil
	}
	st := trial.Compute(snap.TrialStartedAt, now)
	return &st
}

// Tier exposes the canonical tier for a snapshot. Handlers use it to report
// plan level alongside resolution results.
func (r *Resolver) Tier(snap OrganizationSnapshot) plan.Tier {
	return plan.NormalizeTier(snap.RawTier)
}

// TrialOnlyModules returns the keys of modules gated behind the free trial.
func TrialOnlyModules() []string {
	keys := make([]string, 0, len(trialOnlyModules))
	for k := range trialOnlyModules {
		keys = append(keys, k)
	}
	return keys
}
