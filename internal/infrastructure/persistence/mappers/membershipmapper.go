package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"cxtrack/internal/domain/membership"
	"cxtrack/internal/infrastructure/persistence/models"
)

// MembershipMapper handles the conversion between domain entities and persistence models.
type MembershipMapper interface {
	ToEntity(model *models.MembershipModel) (*membership.Membership, error)
	ToModel(entity *membership.Membership) (*models.MembershipModel, error)
	ToEntities(models []*models.MembershipModel) ([]*membership.Membership, error)
}

type MembershipMapperImpl struct{}

// NewMembershipMapper creates a new membership mapper.
func NewMembershipMapper() MembershipMapper {
	return &MembershipMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity. Unknown role
// strings map to the custom role rather than failing the load.
func (m *MembershipMapperImpl) ToEntity(model *models.MembershipModel) (*membership.Membership, error) {
	if model == nil {
		return nil, nil
	}

	permissions := make(map[string]bool, len(model.Permissions))
	for key, value := range model.Permissions {
		allowed, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("permission %s has non-boolean value %v", key, value)
		}
		permissions[key] = allowed
	}

	var delegatedBy []string
	if len(model.CalendarDelegatedBy) > 0 {
		if err := json.Unmarshal(model.CalendarDelegatedBy, &delegatedBy); err != nil {
			return nil, fmt.Errorf("failed to unmarshal calendar delegations: %w", err)
		}
	}

	return &membership.Membership{
		UserID:              model.UserID,
		OrgSlug:             model.OrgSlug,
		Role:                membership.ParseRole(model.Role),
		Permissions:         permissions,
		TeamCalendarAccess:  model.TeamCalendarAccess,
		CalendarDelegatedBy: delegatedBy,
	}, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *MembershipMapperImpl) ToModel(entity *membership.Membership) (*models.MembershipModel, error) {
	if entity == nil {
		return nil, nil
	}

	permissions := make(datatypes.JSONMap, len(entity.Permissions))
	for key, allowed := range entity.Permissions {
		permissions[key] = allowed
	}

	delegatedBy, err := json.Marshal(entity.CalendarDelegatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal calendar delegations: %w", err)
	}

	return &models.MembershipModel{
		OrgSlug:             entity.OrgSlug,
		UserID:              entity.UserID,
		Role:                entity.Role.String(),
		Permissions:         permissions,
		TeamCalendarAccess:  entity.TeamCalendarAccess,
		CalendarDelegatedBy: datatypes.JSON(delegatedBy),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *MembershipMapperImpl) ToEntities(modelList []*models.MembershipModel) ([]*membership.Membership, error) {
	entities := make([]*membership.Membership, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
