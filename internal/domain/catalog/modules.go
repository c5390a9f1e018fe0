package catalog

// builtinModules is the complete product catalog. Icon names reference the
// frontend icon set; routes are relative to the dashboard root.
var builtinModules = []Module{
	{
		Key:         "dashboard",
		Name:        "Dashboard",
		Description: "Overview and analytics",
		Icon:        "LayoutGrid",
		Route:       "",
		Category:    CategorySystem,
	},
	{
		Key:                 "crm",
		Name:                "CRM",
		Description:         "Customer relationship management",
		Icon:                "Users",
		Route:               "/customers",
		Category:            CategorySales,
		RequiredPermissions: []string{"customers.read"},
	},
	{
		Key:                 "calendar",
		Name:                "Calendar",
		Description:         "Appointments and scheduling",
		Icon:                "Calendar",
		Route:               "/calendar",
		Category:            CategoryOperations,
		RequiredPermissions: []string{"calendar.read"},
	},
	{
		Key:                 "quotes",
		Name:                "Quotes",
		Description:         "Quote generation and management",
		Icon:                "FileText",
		Route:               "/quotes",
		Category:            CategorySales,
		Dependencies:        []string{"crm"},
		RequiredPermissions: []string{"quotes.read"},
	},
	{
		Key:                 "invoices",
		Name:                "Invoices",
		Description:         "Invoice creation and tracking",
		Icon:                "Receipt",
		Route:               "/invoices",
		Category:            CategoryFinance,
		Dependencies:        []string{"crm"},
		RequiredPermissions: []string{"invoices.read"},
	},
	{
		Key:                 "products",
		Name:                "Products",
		Description:         "Product catalog management",
		Icon:                "Package",
		Route:               "/products",
		Category:            CategoryOperations,
		RequiredPermissions: []string{"products.read"},
	},
	{
		Key:                 "inventory",
		Name:                "Inventory",
		Description:         "Stock management",
		Icon:                "Layers",
		Route:               "/inventory",
		Category:            CategoryOperations,
		Dependencies:        []string{"products"},
		RequiredPermissions: []string{"inventory.read"},
	},
	{
		Key:                 "suppliers",
		Name:                "Suppliers",
		Description:         "Vendor management",
		Icon:                "Building",
		Route:               "/suppliers",
		Category:            CategoryOperations,
		RequiredPermissions: []string{"suppliers.read"},
	},
	{
		Key:                 "pipeline",
		Name:                "Pipeline",
		Description:         "Sales pipeline tracking",
		Icon:                "BarChart3",
		Route:               "/pipeline",
		Category:            CategorySales,
		Dependencies:        []string{"crm"},
		RequiredPermissions: []string{"pipeline.read"},
	},
	{
		Key:                 "calls",
		Name:                "Calls",
		Description:         "Call logging and tracking",
		Icon:                "Phone",
		Route:               "/calls",
		Category:            CategoryOperations,
		RequiredPermissions: []string{"calls.read"},
	},
	{
		Key:                 "tasks",
		Name:                "Tasks",
		Description:         "Task management",
		Icon:                "CheckSquare",
		Route:               "/tasks",
		Category:            CategoryOperations,
		RequiredPermissions: []string{"tasks.read"},
	},
	{
		Key:                 "financials",
		Name:                "Financials",
		Description:         "Revenue and expense tracking",
		Icon:                "DollarSign",
		Route:               "/financials",
		Category:            CategoryFinance,
		RequiredPermissions: []string{"financials.read"},
	},
}

var defaultRegistry = MustNewRegistry(builtinModules)

// Default returns the built-in module registry.
func Default() *Registry {
	return defaultRegistry
}
