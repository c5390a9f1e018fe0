package models

import (
	"time"

	"gorm.io/datatypes"

	"cxtrack/internal/shared/constants"
)

// MembershipModel represents the database persistence model for memberships
// Permissions holds the explicit per-key grant map; CalendarDelegatedBy holds
// the user IDs that delegated their calendar to this member
type MembershipModel struct {
	ID                  uint   `gorm:"primarykey"`
	OrgSlug             string `gorm:"not null;size:100;uniqueIndex:idx_org_user,priority:1"`
	UserID              string `gorm:"not null;size:100;uniqueIndex:idx_org_user,priority:2"`
	Role                string `gorm:"not null;size:20;default:member"`
	Permissions         datatypes.JSONMap
	TeamCalendarAccess  bool `gorm:"not null;default:false"`
	CalendarDelegatedBy datatypes.JSON
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (MembershipModel) TableName() string {
	return constants.TableMemberships
}
