// Package catalog holds the static registry of product modules: the feature
// areas of the application (CRM, invoices, inventory, ...), their display
// metadata, and the dependencies between them. The registry is closed and
// fixed at build time; nothing mutates it at runtime.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category classifies a module for navigation grouping.
type Category string

const (
	CategorySales      Category = "sales"
	CategoryFinance    Category = "finance"
	CategoryOperations Category = "operations"
	CategorySystem     Category = "system"
)

// IsValid checks if the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategorySales, CategoryFinance, CategoryOperations, CategorySystem:
		return true
	}
	return false
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Module describes a single feature module. Values are immutable once
// registered; copies are safe to hand out.
type Module struct {
	Key                 string   `json:"key"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Icon                string   `json:"icon"`
	Route               string   `json:"route"`
	Category            Category `json:"category"`
	Dependencies        []string `json:"dependencies,omitempty"`
	RequiredPermissions []string `json:"required_permissions,omitempty"`
}

var keyTitler = cases.Title(language.English)

// displayName derives a human-readable name from a module key when the
// registry entry does not carry one (e.g. "crm" -> "Crm", "my_module" -> "My Module").
func displayName(key string) string {
	return keyTitler.String(strings.ReplaceAll(key, "_", " "))
}
