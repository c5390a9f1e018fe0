package plan

// AccessMap is the immutable tier-to-modules entitlement table. It answers
// "which modules does this tier unlock", independent of industry; visibility
// is always the intersection of the industry template and this map.
type AccessMap struct {
	allowed map[Tier][]string
}

// NewAccessMap builds an access map. The free tier entry must be present: it
// is the fail-safe fallback for any tier missing from the map.
func NewAccessMap(allowed map[Tier][]string) *AccessMap {
	if _, ok := allowed[TierFree]; !ok {
		panic("plan: access map must define the free tier")
	}
	return &AccessMap{allowed: allowed}
}

// Allowed returns the module keys the tier unlocks. A tier absent from the
// map falls back to the free tier's set. The returned slice is a copy.
func (am *AccessMap) Allowed(tier Tier) []string {
	keys, ok := am.allowed[tier]
	if !ok {
		keys = am.allowed[TierFree]
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// AllowedSet returns the tier's unlocked modules as a membership set.
func (am *AccessMap) AllowedSet(tier Tier) map[string]bool {
	keys, ok := am.allowed[tier]
	if !ok {
		keys = am.allowed[TierFree]
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// Allows reports whether the tier unlocks the module.
func (am *AccessMap) Allows(tier Tier, moduleKey string) bool {
	keys, ok := am.allowed[tier]
	if !ok {
		keys = am.allowed[TierFree]
	}
	for _, k := range keys {
		if k == moduleKey {
			return true
		}
	}
	return false
}

// builtinAccess is the shipping plan table. The free tier lists every module
// because trial-only modules are granted during the trial window; expiry
// locking is handled by the resolver, not by this table.
var builtinAccess = map[Tier][]string{
	TierFree:         {"dashboard", "crm", "calendar", "tasks", "quotes", "invoices", "pipeline", "calls", "products", "inventory", "suppliers", "financials"},
	TierBusiness:     {"dashboard", "crm", "calendar", "tasks", "quotes", "invoices", "calls", "pipeline", "products"},
	TierElitePremium: {"dashboard", "crm", "calendar", "tasks", "quotes", "invoices", "calls", "pipeline", "products", "inventory", "suppliers", "financials"},
	TierEnterprise:   {"dashboard", "crm", "calendar", "tasks", "quotes", "invoices", "calls", "pipeline", "products", "inventory", "suppliers", "financials"},
}

var defaultAccessMap = NewAccessMap(builtinAccess)

// DefaultAccessMap returns the built-in plan access table.
func DefaultAccessMap() *AccessMap {
	return defaultAccessMap
}
