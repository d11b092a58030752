package http

import (
	activityApp "ministryshare/internal/application/activity"
	adminUsecases "ministryshare/internal/application/admin/usecases"
	catalogUsecases "ministryshare/internal/application/catalog/usecases"
	churchUsecases "ministryshare/internal/application/church/usecases"
	"ministryshare/internal/application/importer"
	lendingUsecases "ministryshare/internal/application/lending/usecases"
	"ministryshare/internal/application/notification"
	settingUsecases "ministryshare/internal/application/setting/usecases"
	userUsecases "ministryshare/internal/application/user/usecases"
	"ministryshare/internal/shared/logger"
)

// allUseCases groups every application use case the handlers depend on.
type allUseCases struct {
	// user / auth
	registerUser       *userUsecases.RegisterUserUseCase
	login              *userUsecases.LoginUseCase
	verifyEmail        *userUsecases.VerifyEmailUseCase
	resendVerification *userUsecases.ResendVerificationUseCase
	getProfile         *userUsecases.GetProfileUseCase
	manageUsers        *userUsecases.ManageUsersUseCase

	// church
	registerChurch *churchUsecases.RegisterChurchUseCase
	createChurch   *churchUsecases.CreateChurchUseCase
	listChurches   *churchUsecases.ListChurchesUseCase
	getChurch      *churchUsecases.GetChurchUseCase
	manageChurch   *churchUsecases.ManageChurchUseCase
	reviewChurch   *churchUsecases.ReviewChurchUseCase

	// catalog
	createResource  *catalogUsecases.CreateResourceUseCase
	listResources   *catalogUsecases.ListResourcesUseCase
	getResource     *catalogUsecases.GetResourceUseCase
	updateResource  *catalogUsecases.UpdateResourceUseCase
	deleteResource  *catalogUsecases.DeleteResourceUseCase
	listTags        *catalogUsecases.ListTagsUseCase
	importResources *importer.ImportResourcesUseCase

	// lending
	createRequest  *lendingUsecases.CreateLoanRequestUseCase
	listRequests   *lendingUsecases.ListLoanRequestsUseCase
	approveRequest *lendingUsecases.ApproveLoanRequestUseCase
	denyRequest    *lendingUsecases.DenyLoanRequestUseCase
	cancelRequest  *lendingUsecases.CancelLoanRequestUseCase
	listLoans      *lendingUsecases.ListLoansUseCase
	returnLoan     *lendingUsecases.ReturnLoanUseCase
	markLoanLost   *lendingUsecases.MarkLoanLostUseCase
	markOverdue    *lendingUsecases.MarkLoanOverdueUseCase
	sweepOverdue   *lendingUsecases.SweepOverdueLoansUseCase

	// admin
	listActivity   *activityApp.ListActivityUseCase
	siteSettings   *settingUsecases.SiteSettingsUseCase
	dashboardStats *adminUsecases.GetDashboardStatsUseCase
}

type useCaseDeps struct {
	repos         *repositories
	hasher        userUsecases.PasswordHasher
	tokens        userUsecases.TokenService
	txManager     lendingUsecases.TransactionManager
	recorder      activityApp.Recorder
	notifier      notification.Notifier
	verifyURLBase string
	log           logger.Interface
}

func buildUseCases(d *useCaseDeps) *allUseCases {
	r := d.repos

	return &allUseCases{
		registerUser:       userUsecases.NewRegisterUserUseCase(r.user, r.church, d.hasher, d.notifier, d.verifyURLBase, d.log),
		login:              userUsecases.NewLoginUseCase(r.user, d.hasher, d.tokens, d.log),
		verifyEmail:        userUsecases.NewVerifyEmailUseCase(r.user, d.recorder, d.log),
		resendVerification: userUsecases.NewResendVerificationUseCase(r.user, d.notifier, d.verifyURLBase, d.log),
		getProfile:         userUsecases.NewGetProfileUseCase(r.user, d.log),
		manageUsers:        userUsecases.NewManageUsersUseCase(r.user, r.church, d.recorder, d.log),

		registerChurch: churchUsecases.NewRegisterChurchUseCase(r.church, d.log),
		createChurch:   churchUsecases.NewCreateChurchUseCase(r.church, d.recorder, d.log),
		listChurches:   churchUsecases.NewListChurchesUseCase(r.church, d.log),
		getChurch:      churchUsecases.NewGetChurchUseCase(r.church, d.log),
		manageChurch:   churchUsecases.NewManageChurchUseCase(r.church, d.recorder, d.log),
		reviewChurch:   churchUsecases.NewReviewChurchUseCase(r.church, r.user, d.recorder, d.notifier, d.log),

		createResource:  catalogUsecases.NewCreateResourceUseCase(r.resource, r.tag, d.recorder, d.log),
		listResources:   catalogUsecases.NewListResourcesUseCase(r.resource, d.log),
		getResource:     catalogUsecases.NewGetResourceUseCase(r.resource, r.tag, d.log),
		updateResource:  catalogUsecases.NewUpdateResourceUseCase(r.resource, r.tag, d.recorder, d.log),
		deleteResource:  catalogUsecases.NewDeleteResourceUseCase(r.resource, r.loan, d.recorder, d.log),
		listTags:        catalogUsecases.NewListTagsUseCase(r.tag, d.log),
		importResources: importer.NewImportResourcesUseCase(r.resource, r.tag, r.church, d.recorder, d.log),

		createRequest:  lendingUsecases.NewCreateLoanRequestUseCase(r.request, r.resource, r.church, r.user, d.recorder, d.notifier, d.log),
		listRequests:   lendingUsecases.NewListLoanRequestsUseCase(r.request, d.log),
		approveRequest: lendingUsecases.NewApproveLoanRequestUseCase(r.request, r.loan, r.resource, r.church, r.user, d.txManager, d.recorder, d.notifier, d.log),
		denyRequest:    lendingUsecases.NewDenyLoanRequestUseCase(r.request, r.resource, r.church, r.user, d.recorder, d.notifier, d.log),
		cancelRequest:  lendingUsecases.NewCancelLoanRequestUseCase(r.request, r.resource, r.church, r.user, d.recorder, d.notifier, d.log),
		listLoans:      lendingUsecases.NewListLoansUseCase(r.loan, d.log),
		returnLoan:     lendingUsecases.NewReturnLoanUseCase(r.loan, r.resource, r.church, r.user, d.txManager, d.recorder, d.notifier, d.log),
		markLoanLost:   lendingUsecases.NewMarkLoanLostUseCase(r.loan, r.resource, r.church, r.user, d.txManager, d.recorder, d.notifier, d.log),
		markOverdue:    lendingUsecases.NewMarkLoanOverdueUseCase(r.loan, r.resource, r.church, r.user, d.recorder, d.notifier, d.log),
		sweepOverdue:   lendingUsecases.NewSweepOverdueLoansUseCase(r.loan, r.resource, r.church, r.user, d.notifier, d.log),

		listActivity:   activityApp.NewListActivityUseCase(r.activity, r.user, d.log),
		siteSettings:   settingUsecases.NewSiteSettingsUseCase(r.setting, d.recorder, d.log),
		dashboardStats: adminUsecases.NewGetDashboardStatsUseCase(r.church, r.user, r.resource, r.request, r.loan, d.log),
	}
}
