// Package organization holds the organization aggregate as far as this
// service cares about it: identity plus the billing and industry fields the
// entitlement resolver reads. Everything else about an organization lives in
// other services.
package organization

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cxtrack/internal/domain/entitlement"
)

// Organization is the aggregate root. Tier is stored raw, exactly as billing
// wrote it; normalization is the resolver's job.
type Organization struct {
	id             uint
	slug           string
	name           string
	rawTier        string
	industry       string
	trialStartedAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewOrganization creates a new organization. Tier and industry may be empty
// or unknown; downstream resolution has fail-safe defaults for both, so only
// identity fields are validated here.
func NewOrganization(slug, name, rawTier, industryKey string) (*Organization, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, fmt.Errorf("organization slug is required")
	}
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}

	now := time.Now().UTC()
	return &Organization{
		slug:      slug,
		name:      name,
		rawTier:   rawTier,
		industry:  industryKey,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructOrganization rebuilds an organization from persistence.
func ReconstructOrganization(
	id uint,
	slug, name, rawTier, industryKey string,
	trialStartedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("organization slug is required")
	}

	return &Organization{
		id:             id,
		slug:           slug,
		name:           name,
		rawTier:        rawTier,
		industry:       industryKey,
		trialStartedAt: trialStartedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (o *Organization) ID() uint {
	return o.id
}

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Organization) Slug() string {
	return o.slug
}

func (o *Organization) Name() string {
	return o.name
}

func (o *Organization) RawTier() string {
	return o.rawTier
}

func (o *Organization) Industry() string {
	return o.industry
}

func (o *Organization) TrialStartedAt() *time.Time {
	return o.trialStartedAt
}

func (o *Organization) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Organization) UpdatedAt() time.Time {
	return o.updatedAt
}

// StartTrial records the trial start once; later calls are no-ops so a
// replayed onboarding event cannot shorten anyone's window.
func (o *Organization) StartTrial(at time.Time) {
	if o.trialStartedAt != nil {
		return
	}
	t := at.UTC()
	o.trialStartedAt = &t
	o.updatedAt = time.Now().UTC()
}

// ChangeTier records a billing tier change, keeping the raw string as given.
func (o *Organization) ChangeTier(rawTier string) {
	o.rawTier = rawTier
	o.updatedAt = time.Now().UTC()
}

// ChangeIndustry records an industry change.
func (o *Organization) ChangeIndustry(industryKey string) {
	o.industry = industryKey
	o.updatedAt = time.Now().UTC()
}

// Snapshot produces the read-only view the entitlement resolver consumes.
func (o *Organization) Snapshot() entitlement.OrganizationSnapshot {
	return entitlement.OrganizationSnapshot{
		RawTier:        o.rawTier,
		Industry:       o.industry,
		TrialStartedAt: o.trialStartedAt,
	}
}

// Repository loads and stores organizations.
type Repository interface {
	GetBySlug(ctx context.Context, slug string) (*Organization, error)
	Create(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
}
