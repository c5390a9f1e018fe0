package models

import (
	"time"

	"cxtrack/internal/shared/constants"
)

// OrganizationModel represents the database persistence model for organizations
// This is the anti-corruption layer between domain and database
type OrganizationModel struct {
	ID             uint   `gorm:"primarykey"`
	Slug           string `gorm:"not null;size:100;uniqueIndex"`
	Name           string `gorm:"not null;size:255"`
	Tier           string `gorm:"not null;size:50;default:free"`
	Industry       string `gorm:"size:100"`
	TrialStartedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (OrganizationModel) TableName() string {
	return constants.TableOrganizations
}
