package industry

// builtinTemplates lists, per industry, the modules that exist for that
// vertical in navigation order. Order is significant: it drives menu order
// downstream and must not be re-sorted.
var builtinTemplates = map[string][]string{
	"tax_accounting":            {"dashboard", "crm", "calendar", "invoices", "financials", "tasks", "quotes"},
	"distribution_logistics":    {"dashboard", "crm", "products", "inventory", "suppliers", "quotes", "invoices", "financials", "pipeline"},
	"gyms_fitness":              {"dashboard", "crm", "calendar", "invoices", "tasks", "calls", "pipeline", "products", "inventory"},
	"contractors_home_services": {"dashboard", "crm", "calendar", "quotes", "invoices", "tasks", "pipeline", "calls"},
	"healthcare":                {"dashboard", "crm", "calendar", "invoices", "tasks", "calls"},
	"real_estate":               {"dashboard", "crm", "calendar", "pipeline", "tasks", "calls", "quotes"},
	"legal_services":            {"dashboard", "crm", "calendar", "invoices", "tasks", "pipeline", "calls", "quotes"},
	"general_business":          {"dashboard", "crm", "calendar", "quotes", "invoices", "tasks", "pipeline", "calls"},
	"software_development":      {"dashboard", "crm", "calendar", "tasks", "pipeline", "invoices", "quotes"},
	"mortgage_broker":           {"dashboard", "crm", "calendar", "pipeline", "tasks", "invoices"},
	"construction":              {"dashboard", "crm", "calendar", "quotes", "invoices", "tasks", "pipeline", "calls"},
}

// builtinLabels carries per-industry display overrides. Keys referenced here
// should appear in the industry's template; violations fall back to base
// catalog values at runtime rather than failing.
var builtinLabels = map[string]map[string]Label{
	"tax_accounting": {
		"crm":    {Name: "Clients"},
		"quotes": {Name: "Engagement Letters"},
	},
	"distribution_logistics": {
		"crm":      {Name: "Accounts"},
		"pipeline": {Name: "Order Pipeline"},
	},
	"gyms_fitness": {
		"crm":      {Name: "Members"},
		"calendar": {Name: "Class Schedule"},
		"pipeline": {Name: "Membership Pipeline"},
	},
	"contractors_home_services": {
		"crm":      {Name: "Clients"},
		"quotes":   {Name: "Estimates"},
		"pipeline": {Name: "Job Pipeline"},
	},
	"healthcare": {
		"crm":      {Name: "Patients"},
		"calendar": {Name: "Appointments"},
	},
	"real_estate": {
		"crm":      {Name: "Contacts"},
		"pipeline": {Name: "Deal Pipeline"},
		"quotes":   {Name: "Listing Proposals"},
	},
	"legal_services": {
		"crm":      {Name: "Clients"},
		"pipeline": {Name: "Case Pipeline"},
		"quotes":   {Name: "Fee Proposals"},
	},
	"software_development": {
		"crm":      {Name: "Clients"},
		"pipeline": {Name: "Projects"},
		"tasks":    {Name: "Sprints & Tasks"},
		"quotes":   {Name: "Proposals"},
		"invoices": {Name: "Billing"},
		"calendar": {Name: "Milestones"},
	},
	"mortgage_broker": {
		"crm":      {Name: "Borrowers"},
		"pipeline": {Name: "Applications"},
		"tasks":    {Name: "Follow-ups"},
		"invoices": {Name: "Commissions"},
		"calendar": {Name: "Appointments"},
	},
	"construction": {
		"crm":      {Name: "Clients"},
		"pipeline": {Name: "Projects"},
		"tasks":    {Name: "Punch List"},
		"quotes":   {Name: "Bids"},
		"calendar": {Name: "Schedule"},
	},
}

var defaultTemplateSet = NewTemplateSet(builtinTemplates, builtinLabels, DefaultTemplateKey)

// Default returns the built-in industry template set.
func Default() *TemplateSet {
	return defaultTemplateSet
}
