package permission

import (
	"fmt"

	"cxtrack/internal/shared/logger"
)

// roleDefaultGrants is the shipping per-role default permission table. It is
// seeded into the policy store at startup and consulted when memberships are
// provisioned. Owners and admins also bypass runtime checks entirely; their
// rows here exist so their materialized maps reflect what the role grants.
var roleDefaultGrants = map[string][]string{
	"owner": {
		"customers.read",
		"customers.write",
		"customers.delete",
		"calendar.read",
		"calendar.write",
		"quotes.read",
		"quotes.write",
		"invoices.read",
		"invoices.write",
		"products.read",
		"products.write",
		"pipeline.read",
		"pipeline.write",
		"calls.read",
		"calls.write",
		"tasks.read",
		"tasks.write",
		"financials.read",
		"settings.manage",
	},
	"admin": {
		"customers.read",
		"customers.write",
		"customers.delete",
		"calendar.read",
		"calendar.write",
		"quotes.read",
		"quotes.write",
		"invoices.read",
		"invoices.write",
		"products.read",
		"products.write",
		"pipeline.read",
		"pipeline.write",
		"calls.read",
		"calls.write",
		"tasks.read",
		"tasks.write",
		"financials.read",
	},
	"manager": {
		"customers.read",
		"customers.write",
		"calendar.read",
		"calendar.write",
		"quotes.read",
		"quotes.write",
		"invoices.read",
		"products.read",
		"pipeline.read",
		"pipeline.write",
		"calls.read",
		"calls.write",
		"tasks.read",
		"tasks.write",
	},
	"member": {
		"customers.read",
		"calendar.read",
		"calendar.write",
		"quotes.read",
		"invoices.read",
		"products.read",
		"pipeline.read",
		"calls.read",
		"tasks.read",
		"tasks.write",
	},
}

// InitRolePermissions seeds the role default grants into the policy store.
// Seeding is idempotent: adding an existing policy is a no-op in casbin.
func InitRolePermissions(enforcer *Enforcer, log logger.Interface) error {
	enforcer.mu.Lock()
	defer enforcer.mu.Unlock()

	for role, grants := range roleDefaultGrants {
		for _, permission := range grants {
			if _, err := enforcer.enforcer.AddPolicy(role, permission); err != nil {
				log.Errorw("failed to add role permission policy",
					"error", err,
					"role", role,
					"permission", permission)
				return fmt.Errorf("failed to add policy [%s, %s]: %w", role, permission, err)
			}
		}
	}

	if err := enforcer.enforcer.SavePolicy(); err != nil {
		log.Errorw("failed to save role permissions", "error", err)
		return fmt.Errorf("failed to save role permissions: %w", err)
	}

	log.Info("role permissions initialized successfully")
	return nil
}
