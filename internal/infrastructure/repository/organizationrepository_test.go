package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cxtrack/internal/domain/organization"
	"cxtrack/internal/infrastructure/persistence/models"
	"cxtrack/internal/shared/errors"
	"cxtrack/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.OrganizationModel{}, &models.MembershipModel{})
	require.NoError(t, err)

	return db
}

func createTestOrg(t *testing.T, slug, rawTier, industryKey string) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization(slug, "Test Org", rawTier, industryKey)
	require.NoError(t, err)
	return org
}

func TestOrganizationRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, logger.NewLogger())
	ctx := context.Background()

	org := createTestOrg(t, "acme", "starter", "construction")
	err := repo.Create(ctx, org)
	require.NoError(t, err)
	assert.NotZero(t, org.ID())

	found, err := repo.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, org.ID(), found.ID())
	assert.Equal(t, "acme", found.Slug())
	assert.Equal(t, "starter", found.RawTier())
	assert.Equal(t, "construction", found.Industry())
	assert.Nil(t, found.TrialStartedAt())
}

func TestOrganizationRepository_GetBySlug_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, logger.NewLogger())

	_, err := repo.GetBySlug(context.Background(), "ghost")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestOrganizationRepository_DuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestOrg(t, "acme", "free", "")))

	err := repo.Create(ctx, createTestOrg(t, "acme", "free", ""))
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestOrganizationRepository_Update_TrialStart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, logger.NewLogger())
	ctx := context.Background()

	org := createTestOrg(t, "acme", "free", "general_business")
	require.NoError(t, repo.Create(ctx, org))

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	org.StartTrial(start)
	require.NoError(t, repo.Update(ctx, org))

	found, err := repo.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, found.TrialStartedAt())
	assert.True(t, start.Equal(*found.TrialStartedAt()))
}

func TestOrganizationRepository_Update_TierChange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, logger.NewLogger())
	ctx := context.Background()

	org := createTestOrg(t, "acme", "free", "general_business")
	require.NoError(t, repo.Create(ctx, org))

	org.ChangeTier("elite_premium")
	require.NoError(t, repo.Update(ctx, org))

	found, err := repo.GetBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "elite_premium", found.RawTier())
}

func TestOrganizationRepository_Update_NotPersisted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db, logger.NewLogger())

	org := createTestOrg(t, "acme", "free", "")
	err := repo.Update(context.Background(), org)
	assert.Error(t, err)
}
