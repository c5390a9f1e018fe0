package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cxtrack/internal/domain/membership"
	"cxtrack/internal/infrastructure/persistence/mappers"
	"cxtrack/internal/infrastructure/persistence/models"
	"cxtrack/internal/shared/errors"
	"cxtrack/internal/shared/logger"
)

// MembershipRepositoryImpl implements the membership.Repository interface
type MembershipRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MembershipMapper
	logger logger.Interface
}

// NewMembershipRepository creates a new membership repository instance
func NewMembershipRepository(db *gorm.DB, logger logger.Interface) membership.Repository {
	return &MembershipRepositoryImpl{
		db:     db,
		mapper: mappers.NewMembershipMapper(),
		logger: logger,
	}
}

// GetByOrgAndUser retrieves a user's membership within an organization
func (r *MembershipRepositoryImpl) GetByOrgAndUser(ctx context.Context, orgSlug, userID string) (*membership.Membership, error) {
	var model models.MembershipModel
	if err := r.db.WithContext(ctx).
		Where("org_slug = ? AND user_id = ?", orgSlug, userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("membership not found")
		}
		r.logger.Errorw("failed to get membership", "org_slug", orgSlug, "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByOrg retrieves all memberships within an organization
func (r *MembershipRepositoryImpl) ListByOrg(ctx context.Context, orgSlug string) ([]*membership.Membership, error) {
	var modelList []*models.MembershipModel
	if err := r.db.WithContext(ctx).
		Where("org_slug = ?", orgSlug).
		Order("user_id").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list memberships", "org_slug", orgSlug, "error", err)
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// Create persists a new membership
func (r *MembershipRepositoryImpl) Create(ctx context.Context, m *membership.Membership) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map membership: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("membership already exists")
		}
		r.logger.Errorw("failed to create membership", "org_slug", m.OrgSlug, "user_id", m.UserID, "error", err)
		return fmt.Errorf("failed to create membership: %w", err)
	}

	r.logger.Infow("membership created", "id", model.ID, "org_slug", m.OrgSlug, "user_id", m.UserID)
	return nil
}

// Update persists changes to an existing membership
func (r *MembershipRepositoryImpl) Update(ctx context.Context, m *membership.Membership) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		return fmt.Errorf("failed to map membership: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.MembershipModel{}).
		Where("org_slug = ? AND user_id = ?", m.OrgSlug, m.UserID).
		Updates(map[string]interface{}{
			"role":                  model.Role,
			"permissions":           model.Permissions,
			"team_calendar_access":  model.TeamCalendarAccess,
			"calendar_delegated_by": model.CalendarDelegatedBy,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update membership", "org_slug", m.OrgSlug, "user_id", m.UserID, "error", result.Error)
		return fmt.Errorf("failed to update membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("membership not found")
	}

	r.logger.Infow("membership updated", "org_slug", m.OrgSlug, "user_id", m.UserID)
	return nil
}
