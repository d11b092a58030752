package routes

import (
	"github.com/gin-gonic/gin"

	"ministryshare/internal/interfaces/http/handlers"
	"ministryshare/internal/interfaces/http/middleware"
)

// LendingRouteConfig holds dependencies for loan request and loan routes.
type LendingRouteConfig struct {
	LendingHandler       *handlers.LendingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupLendingRoutes configures the loan request and loan lifecycle routes.
func SetupLendingRoutes(engine *gin.Engine, cfg *LendingRouteConfig) {
	requests := engine.Group("/api/v1/requests")
	requests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		requests.GET("", cfg.PermissionMiddleware.RequirePermission("request", "read"), cfg.LendingHandler.ListRequests)
		requests.POST("", cfg.PermissionMiddleware.RequirePermission("request", "create"), cfg.LendingHandler.CreateRequest)

		requests.POST("/:id/approve", cfg.PermissionMiddleware.RequirePermission("request", "review"), cfg.LendingHandler.ApproveRequest)
		requests.POST("/:id/deny", cfg.PermissionMiddleware.RequirePermission("request", "review"), cfg.LendingHandler.DenyRequest)
		requests.POST("/:id/cancel", cfg.PermissionMiddleware.RequirePermission("request", "create"), cfg.LendingHandler.CancelRequest)
	}

	loans := engine.Group("/api/v1/loans")
	loans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		loans.GET("", cfg.PermissionMiddleware.RequirePermission("loan", "read"), cfg.LendingHandler.ListLoans)

		loans.POST("/:id/return", cfg.PermissionMiddleware.RequirePermission("loan", "update"), cfg.LendingHandler.ReturnLoan)
		loans.POST("/:id/lost", cfg.PermissionMiddleware.RequirePermission("loan", "update"), cfg.LendingHandler.MarkLoanLost)
		loans.POST("/:id/overdue", cfg.PermissionMiddleware.RequirePermission("loan", "update"), cfg.LendingHandler.MarkLoanOverdue)
	}
}
