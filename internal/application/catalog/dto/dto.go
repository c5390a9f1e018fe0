package dto

import "cxtrack/internal/domain/catalog"

// CatalogModuleDTO is one catalog entry in an API response, independent of
// any organization's plan or industry.
type CatalogModuleDTO struct {
	Key                 string   `json:"key"`
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	Icon                string   `json:"icon,omitempty"`
	Route               string   `json:"route,omitempty"`
	Category            string   `json:"category"`
	Dependencies        []string `json:"dependencies,omitempty"`
	RequiredPermissions []string `json:"required_permissions,omitempty"`
	TrialOnly           bool     `json:"trial_only"`
}

// ToCatalogModuleDTO converts a catalog module to its API shape.
func ToCatalogModuleDTO(m catalog.Module, trialOnly bool) CatalogModuleDTO {
	return CatalogModuleDTO{
		Key:                 m.Key,
		Name:                m.Name,
		Description:         m.Description,
		Icon:                m.Icon,
		Route:               m.Route,
		Category:            m.Category.String(),
		Dependencies:        m.Dependencies,
		RequiredPermissions: m.RequiredPermissions,
		TrialOnly:           trialOnly,
	}
}
