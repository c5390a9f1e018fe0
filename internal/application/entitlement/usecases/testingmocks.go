package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cxtrack/internal/application/entitlement/dto"
	"cxtrack/internal/domain/organization"
)

type mockOrganizationRepo struct {
	mock.Mock
}

func (m *mockOrganizationRepo) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

func (m *mockOrganizationRepo) Create(ctx context.Context, org *organization.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *mockOrganizationRepo) Update(ctx context.Context, org *organization.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// memoryCache is a map-backed ResultCache for tests.
type memoryCache struct {
	entries map[string]*dto.ModulesResponse
	hits    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*dto.ModulesResponse)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (*dto.ModulesResponse, bool) {
	resp, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return resp, ok
}

func (c *memoryCache) Set(ctx context.Context, key string, resp *dto.ModulesResponse) {
	c.entries[key] = resp
	c.sets++
}
