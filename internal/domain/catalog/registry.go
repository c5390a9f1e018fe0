package catalog

import (
	"fmt"
	"sort"
)

// Registry is an immutable lookup of modules by key. Build it once at startup
// with NewRegistry (or use Default) and share it freely; it is safe for
// concurrent reads.
type Registry struct {
	modules map[string]Module
}

// NewRegistry builds a registry from the given modules. Modules without a
// display name get one derived from their key. Duplicate keys are rejected.
// Dependency integrity is checked separately via Validate so callers can
// decide whether a dangling reference is fatal.
func NewRegistry(modules []Module) (*Registry, error) {
	byKey := make(map[string]Module, len(modules))
	for _, m := range modules {
		if m.Key == "" {
			return nil, fmt.Errorf("module key is required")
		}
		if _, exists := byKey[m.Key]; exists {
			return nil, fmt.Errorf("duplicate module key: %s", m.Key)
		}
		if !m.Category.IsValid() {
			return nil, fmt.Errorf("module %s has invalid category: %s", m.Key, m.Category)
		}
		if m.Name == "" {
			m.Name = displayName(m.Key)
		}
		byKey[m.Key] = m
	}
	return &Registry{modules: byKey}, nil
}

// MustNewRegistry is NewRegistry for compile-time data; it panics on error.
func MustNewRegistry(modules []Module) *Registry {
	r, err := NewRegistry(modules)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid registry data: %v", err))
	}
	return r
}

// Get returns the module for the given key. The second return is false when
// the key is not registered; callers are expected to skip unknown keys, never
// treat them as an error.
func (r *Registry) Get(key string) (Module, bool) {
	m, ok := r.modules[key]
	return m, ok
}

// Has reports whether the key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.modules[key]
	return ok
}

// Keys returns all registered module keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.modules))
	for k := range r.modules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every registered module, sorted by key.
func (r *Registry) All() []Module {
	modules := make([]Module, 0, len(r.modules))
	for _, k := range r.Keys() {
		modules = append(modules, r.modules[k])
	}
	return modules
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.modules)
}

// Validate checks registry-wide invariants: every dependency key must itself
// be a registered module. The registry is static data, so a violation is a
// programming error surfaced at startup (and in tests), not a runtime
// condition.
func (r *Registry) Validate() error {
	for key, m := range r.modules {
		for _, dep := range m.Dependencies {
			if _, ok := r.modules[dep]; !ok {
				return fmt.Errorf("module %s depends on unknown module %s", key, dep)
			}
			if dep == key {
				return fmt.Errorf("module %s depends on itself", key)
			}
		}
	}
	return nil
}
