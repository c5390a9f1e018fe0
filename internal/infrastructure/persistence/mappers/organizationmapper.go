package mappers

import (
	"cxtrack/internal/domain/organization"
	"cxtrack/internal/infrastructure/persistence/models"
)

// OrganizationMapper handles the conversion between domain entities and persistence models.
type OrganizationMapper interface {
	ToEntity(model *models.OrganizationModel) (*organization.Organization, error)
	ToModel(entity *organization.Organization) *models.OrganizationModel
}

type OrganizationMapperImpl struct{}

// NewOrganizationMapper creates a new organization mapper.
func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity. Tier and industry
// pass through raw; normalization happens at resolution time.
func (m *OrganizationMapperImpl) ToEntity(model *models.OrganizationModel) (*organization.Organization, error) {
	if model == nil {
		return nil, nil
	}
	return organization.ReconstructOrganization(
		model.ID,
		model.Slug,
		model.Name,
		model.Tier,
		model.Industry,
		model.TrialStartedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model.
func (m *OrganizationMapperImpl) ToModel(entity *organization.Organization) *models.OrganizationModel {
	if entity == nil {
		return nil
	}
	return &models.OrganizationModel{
		ID:             entity.ID(),
		Slug:           entity.Slug(),
		Name:           entity.Name(),
		Tier:           entity.RawTier(),
		Industry:       entity.Industry(),
		TrialStartedAt: entity.TrialStartedAt(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}
