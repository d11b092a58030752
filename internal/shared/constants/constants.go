package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 50

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyChurchID = "church_id"
	ContextKeyLocale   = "locale"

	// Database table names
	TableChurches     = "churches"
	TableUsers        = "users"
	TableResources    = "resources"
	TableTags         = "tags"
	TableResourceTags = "resource_tags"
	TableLoanRequests = "loan_requests"
	TableLoans        = "loans"
	TableActivityLogs = "activity_logs"
	TableSiteSettings = "site_settings"

	// Bulk import
	ImportBatchSize   = 100
	ImportMaxRows     = 2000
	MaxLoanWeeksLimit = 52
	DefaultQuantity   = 1

	// Activity log action codes
	ActionCreateResource    = "CREATE_RESOURCE"
	ActionUpdateResource    = "UPDATE_RESOURCE"
	ActionDeleteResource    = "DELETE_RESOURCE"
	ActionCreateLoanRequest = "CREATE_LOAN_REQUEST"
	ActionApproveRequest    = "APPROVE_REQUEST"
	ActionDenyRequest       = "DENY_REQUEST"
	ActionCancelRequest     = "CANCEL_REQUEST"
	ActionReturnLoan        = "RETURN_LOAN"
	ActionMarkOverdue       = "MARK_OVERDUE"
	ActionMarkLost          = "MARK_LOST"
	ActionApproveChurch     = "APPROVE_CHURCH"
	ActionRejectChurch      = "REJECT_CHURCH"
	ActionRegisterChurch    = "REGISTER_CHURCH"
	ActionRegisterUser      = "REGISTER_USER"
	ActionVerifyEmail       = "VERIFY_EMAIL"
	ActionUpdateUser        = "UPDATE_USER"
	ActionUpdateSettings    = "UPDATE_SETTINGS"
	ActionImportResources   = "IMPORT_RESOURCES"

	// Activity log entity types
	EntityResource    = "RESOURCE"
	EntityLoanRequest = "LOAN_REQUEST"
	EntityLoan        = "LOAN"
	EntityChurch      = "CHURCH"
	EntityUser        = "USER"
	EntitySettings    = "SETTINGS"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
