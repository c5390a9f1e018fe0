package dto

// ModuleDTO is one visible module in an API response: catalog metadata with
// industry labels applied, plus lock and trial annotations.
type ModuleDTO struct {
	Key                 string   `json:"key"`
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	Icon                string   `json:"icon,omitempty"`
	Route               string   `json:"route,omitempty"`
	Category            string   `json:"category"`
	Dependencies        []string `json:"dependencies,omitempty"`
	Locked              bool     `json:"locked"`
	TrialFeature        bool     `json:"trial_feature"`
	TrialDaysRemaining  *int     `json:"trial_days_remaining,omitempty"`
	RequiredPermissions []string `json:"required_permissions,omitempty"`
}

// ModulesResponse is the full resolution result for one organization.
type ModulesResponse struct {
	OrgSlug  string      `json:"org_slug"`
	Tier     string      `json:"tier"`
	Industry string      `json:"industry"`
	Modules  []ModuleDTO `json:"modules"`
}

// TrialDTO reports the trial window position.
type TrialDTO struct {
	DaysRemaining int  `json:"days_remaining"`
	Expired       bool `json:"expired"`
}

// TrialStatusResponse reports the organization's tier and, on the free tier
// only, its trial window. Trial is null for every paid tier.
type TrialStatusResponse struct {
	OrgSlug string    `json:"org_slug"`
	Tier    string    `json:"tier"`
	Trial   *TrialDTO `json:"trial"`
}
