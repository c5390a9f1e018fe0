package dto

import (
	"cxtrack/internal/domain/entitlement"
	"cxtrack/internal/domain/plan"
	"cxtrack/internal/domain/trial"
)

// ToModuleDTO converts one resolved module to its API shape.
func ToModuleDTO(vm entitlement.VisibleModule) ModuleDTO {
	return ModuleDTO{
		Key:                 vm.Key,
		Name:                vm.Name,
		Description:         vm.Description,
		Icon:                vm.Icon,
		Route:               vm.Route,
		Category:            vm.Category.String(),
		Dependencies:        vm.Dependencies,
		Locked:              vm.Locked,
		TrialFeature:        vm.TrialFeature,
		TrialDaysRemaining:  vm.TrialDaysRemaining,
		RequiredPermissions: vm.RequiredPermissions,
	}
}

// ToModulesResponse assembles the resolution response for an organization.
func ToModulesResponse(orgSlug string, tier plan.Tier, industryKey string, modules []entitlement.VisibleModule) *ModulesResponse {
	out := make([]ModuleDTO, 0, len(modules))
	for _, vm := range modules {
		out = append(out, ToModuleDTO(vm))
	}
	return &ModulesResponse{
		OrgSlug:  orgSlug,
		Tier:     tier.String(),
		Industry: industryKey,
		Modules:  out,
	}
}

// ToTrialStatusResponse assembles the trial status response. A nil state
// means a paid tier; the Trial field stays null.
func ToTrialStatusResponse(orgSlug string, tier plan.Tier, state *trial.State) *TrialStatusResponse {
	resp := &TrialStatusResponse{
		OrgSlug: orgSlug,
		Tier:    tier.String(),
	}
	if state != nil {
		resp.Trial = &TrialDTO{
			DaysRemaining: state.DaysRemaining,
			Expired:       state.Expired,
		}
	}
	return resp
}
