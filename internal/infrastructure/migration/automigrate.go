package migration

import (
	"ministryshare/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model, in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ChurchModel{},
		&models.UserModel{},
		&models.TagModel{},
		&models.ResourceModel{},
		&models.ResourceTagModel{},
		&models.LoanRequestModel{},
		&models.LoanModel{},
		&models.ActivityLogModel{},
		&models.SiteSettingsModel{},
	}
}
