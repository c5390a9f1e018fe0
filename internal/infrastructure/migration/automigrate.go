package migration

import (
	"cxtrack/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrganizationModel{},
		&models.MembershipModel{},
	}
}
