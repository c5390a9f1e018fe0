// Package industry maps a declared business vertical to the ordered set of
// modules that exist for it, plus per-industry display label overrides.
// Template membership is independent of billing: a module listed here may
// still be paywalled by the organization's plan.
package industry

// DefaultTemplateKey is the fallback template for organizations whose
// industry value is missing, stale, or was edited outside the app.
const DefaultTemplateKey = "general_business"

// Label overrides a module's display name and/or description for one
// industry. Empty fields mean "keep the base catalog value".
type Label struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// TemplateSet is an immutable industry-to-modules mapping with label
// overrides. Build once, share freely.
type TemplateSet struct {
	templates map[string][]string
	labels    map[string]map[string]Label
	fallback  string
}

// NewTemplateSet builds a template set with the given fallback key. The
// fallback key must exist in templates; this is compile-time data, so a
// missing fallback is a panic, not an error return.
func NewTemplateSet(templates map[string][]string, labels map[string]map[string]Label, fallback string) *TemplateSet {
	if _, ok := templates[fallback]; !ok {
		panic("industry: fallback template " + fallback + " not present in template map")
	}
	return &TemplateSet{templates: templates, labels: labels, fallback: fallback}
}

// Modules returns the ordered module keys for the industry. Unknown industry
// keys silently resolve to the fallback template; organizations routinely
// carry stale industry values and must never see an error for it. The
// returned slice is a copy.
func (ts *TemplateSet) Modules(industryKey string) []string {
	keys, ok := ts.templates[industryKey]
	if !ok {
		keys = ts.templates[ts.fallback]
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Known reports whether the industry key has an explicit template.
func (ts *TemplateSet) Known(industryKey string) bool {
	_, ok := ts.templates[industryKey]
	return ok
}

// Label returns the display override for a module within an industry.
// Absence is the common case and means "use the base catalog values".
func (ts *TemplateSet) Label(industryKey, moduleKey string) (Label, bool) {
	overrides, ok := ts.labels[industryKey]
	if !ok {
		return Label{}, false
	}
	l, ok := overrides[moduleKey]
	return l, ok
}

// Industries returns every industry key with an explicit template.
func (ts *TemplateSet) Industries() []string {
	keys := make([]string, 0, len(ts.templates))
	for k := range ts.templates {
		keys = append(keys, k)
	}
	return keys
}
