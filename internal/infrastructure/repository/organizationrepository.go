package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cxtrack/internal/domain/organization"
	"cxtrack/internal/infrastructure/persistence/mappers"
	"cxtrack/internal/infrastructure/persistence/models"
	"cxtrack/internal/shared/errors"
	"cxtrack/internal/shared/logger"
)

// OrganizationRepositoryImpl implements the organization.Repository interface
type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
	logger logger.Interface
}

// NewOrganizationRepository creates a new organization repository instance
func NewOrganizationRepository(db *gorm.DB, logger logger.Interface) organization.Repository {
	return &OrganizationRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrganizationMapper(),
		logger: logger,
	}
}

// GetBySlug retrieves an organization by its slug
func (r *OrganizationRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization not found")
		}
		r.logger.Errorw("failed to get organization", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Create persists a new organization
func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *organization.Organization) error {
	model := r.mapper.ToModel(org)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("organization slug already exists")
		}
		r.logger.Errorw("failed to create organization", "slug", org.Slug(), "error", err)
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if err := org.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set organization ID", "error", err)
		return fmt.Errorf("failed to set organization ID: %w", err)
	}

	r.logger.Infow("organization created", "id", model.ID, "slug", model.Slug)
	return nil
}

// Update persists changes to an existing organization
func (r *OrganizationRepositoryImpl) Update(ctx context.Context, org *organization.Organization) error {
	if org.ID() == 0 {
		return errors.NewValidationError("organization ID is required for update")
	}

	model := r.mapper.ToModel(org)
	result := r.db.WithContext(ctx).Model(&models.OrganizationModel{}).
		Where("id = ?", org.ID()).
		Updates(map[string]interface{}{
			"name":             model.Name,
			"tier":             model.Tier,
			"industry":         model.Industry,
			"trial_started_at": model.TrialStartedAt,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update organization", "id", org.ID(), "error", result.Error)
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("organization not found")
	}

	r.logger.Infow("organization updated", "id", org.ID(), "slug", org.Slug())
	return nil
}
