package permission

import (
	"context"
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"cxtrack/internal/application/membership/usecases"
	"cxtrack/internal/domain/membership"
	"cxtrack/internal/shared/logger"
)

var (
	_ usecases.RoleDefaults      = (*Enforcer)(nil)
	_ usecases.RoleDefaultsStore = (*Enforcer)(nil)
)

// rbacModel grants a permission when the subject's role carries a policy for
// it. Policies are (role, permission) pairs persisted through the adapter.
const rbacModel = `
[request_definition]
r = sub, perm

[policy_definition]
p = sub, perm

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.perm == p.perm
`

// Enforcer is the role-default permission store. It backs membership
// provisioning: role policies are read once when a membership is created and
// materialized into the membership's explicit permission map.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// GrantDefault adds a permission to the role's default grant set. New
// memberships created for the role afterwards receive the permission; existing
// memberships keep their materialized maps.
func (e *Enforcer) GrantDefault(ctx context.Context, role membership.Role, permission string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.AddPolicy(role.String(), permission)
	if err != nil {
		e.logger.Errorw("failed to grant role default", "error", err, "role", role, "permission", permission)
		return fmt.Errorf("failed to grant role default: %w", err)
	}

	return e.enforcer.SavePolicy()
}

// RevokeDefault removes a permission from the role's default grant set.
func (e *Enforcer) RevokeDefault(ctx context.Context, role membership.Role, permission string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.RemovePolicy(role.String(), permission)
	if err != nil {
		e.logger.Errorw("failed to revoke role default", "error", err, "role", role, "permission", permission)
		return fmt.Errorf("failed to revoke role default: %w", err)
	}

	return e.enforcer.SavePolicy()
}

// DefaultPermissions returns the role's granted permission keys as a map
// ready to seed a new membership. Roles with no policies, custom included,
// get an empty map.
func (e *Enforcer) DefaultPermissions(ctx context.Context, role membership.Role) (map[string]bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	policies, err := e.enforcer.GetFilteredPolicy(0, role.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get role policies: %w", err)
	}

	permissions := make(map[string]bool, len(policies))
	for _, policy := range policies {
		if len(policy) < 2 {
			continue
		}
		permissions[policy[1]] = true
	}

	return permissions, nil
}
