package http

import (
	"gorm.io/gorm"

	"ministryshare/internal/domain/activity"
	"ministryshare/internal/domain/catalog"
	"ministryshare/internal/domain/church"
	"ministryshare/internal/domain/lending"
	"ministryshare/internal/domain/setting"
	"ministryshare/internal/domain/user"
	"ministryshare/internal/infrastructure/repository"
	"ministryshare/internal/shared/logger"
)

// repositories groups every persistence port the application layer needs.
type repositories struct {
	user     user.Repository
	church   church.Repository
	resource catalog.Repository
	tag      catalog.TagRepository
	request  lending.RequestRepository
	loan     lending.LoanRepository
	activity activity.Repository
	setting  setting.Repository
}

func buildRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db, log),
		church:   repository.NewChurchRepository(db, log),
		resource: repository.NewResourceRepository(db, log),
		tag:      repository.NewTagRepository(db, log),
		request:  repository.NewLoanRequestRepository(db, log),
		loan:     repository.NewLoanRepository(db, log),
		activity: repository.NewActivityLogRepository(db, log),
		setting:  repository.NewSiteSettingsRepository(db, log),
	}
}
