package http

import (
	"gorm.io/gorm"

	"ministryshare/internal/infrastructure/config"
	"ministryshare/internal/interfaces/http/handlers"
	"ministryshare/internal/shared/logger"
)

// allHandlers groups the HTTP handlers wired into the router.
type allHandlers struct {
	auth      *handlers.AuthHandler
	church    *handlers.ChurchHandler
	resource  *handlers.ResourceHandler
	tag       *handlers.TagHandler
	lending   *handlers.LendingHandler
	importer  *handlers.ImportHandler
	user      *handlers.UserHandler
	activity  *handlers.ActivityHandler
	setting   *handlers.SettingHandler
	dashboard *handlers.DashboardHandler
	health    *handlers.HealthHandler
}

func buildHandlers(ucs *allUseCases, db *gorm.DB, cfg *config.Config, accessMaxAge int, log logger.Interface) *allHandlers {
	return &allHandlers{
		auth: handlers.NewAuthHandler(
			ucs.registerUser,
			ucs.login,
			ucs.verifyEmail,
			ucs.resendVerification,
			ucs.getProfile,
			cfg.Auth.Cookie,
			accessMaxAge,
			log,
		),
		church: handlers.NewChurchHandler(
			ucs.registerChurch,
			ucs.createChurch,
			ucs.listChurches,
			ucs.getChurch,
			ucs.manageChurch,
			ucs.reviewChurch,
			log,
		),
		resource: handlers.NewResourceHandler(
			ucs.createResource,
			ucs.listResources,
			ucs.getResource,
			ucs.updateResource,
			ucs.deleteResource,
			log,
		),
		tag: handlers.NewTagHandler(ucs.listTags, log),
		lending: handlers.NewLendingHandler(
			ucs.createRequest,
			ucs.listRequests,
			ucs.approveRequest,
			ucs.denyRequest,
			ucs.cancelRequest,
			ucs.listLoans,
			ucs.returnLoan,
			ucs.markLoanLost,
			ucs.markOverdue,
			log,
		),
		importer:  handlers.NewImportHandler(ucs.importResources, log),
		user:      handlers.NewUserHandler(ucs.manageUsers, log),
		activity:  handlers.NewActivityHandler(ucs.listActivity, log),
		setting:   handlers.NewSettingHandler(ucs.siteSettings, log),
		dashboard: handlers.NewDashboardHandler(ucs.dashboardStats, log),
		health:    handlers.NewHealthHandler(db),
	}
}
