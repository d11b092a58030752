package routes

import (
	"github.com/gin-gonic/gin"

	"ministryshare/internal/interfaces/http/handlers"
	"ministryshare/internal/interfaces/http/middleware"
)

// ChurchRouteConfig holds dependencies for church routes.
type ChurchRouteConfig struct {
	ChurchHandler        *handlers.ChurchHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RegisterLimiter      gin.HandlerFunc // may be nil when rate limiting is disabled
}

// SetupChurchRoutes configures church registration, directory, and
// administration routes. Registration and the directory are public;
// everything else requires an authenticated user.
func SetupChurchRoutes(engine *gin.Engine, cfg *ChurchRouteConfig) {
	public := engine.Group("/api/v1/churches")
	{
		if cfg.RegisterLimiter != nil {
			public.POST("/register", cfg.RegisterLimiter, cfg.ChurchHandler.Register)
		} else {
			public.POST("/register", cfg.ChurchHandler.Register)
		}
		public.GET("/directory", cfg.ChurchHandler.Directory)
	}

	churches := engine.Group("/api/v1/churches")
	churches.Use(cfg.AuthMiddleware.RequireAuth())
	{
		churches.GET("", cfg.PermissionMiddleware.RequirePermission("church", "read"), cfg.ChurchHandler.List)
		churches.GET("/:id", cfg.PermissionMiddleware.RequirePermission("church", "read"), cfg.ChurchHandler.Get)
		churches.POST("", cfg.PermissionMiddleware.RequirePermission("church", "create"), cfg.ChurchHandler.Create)
		churches.PUT("/:id", cfg.PermissionMiddleware.RequirePermission("church", "update"), cfg.ChurchHandler.Update)
		churches.PATCH("/:id/active", cfg.PermissionMiddleware.RequirePermission("church", "update"), cfg.ChurchHandler.SetActive)

		churches.POST("/:id/approve", cfg.PermissionMiddleware.RequirePermission("church", "review"), cfg.ChurchHandler.Approve)
		churches.POST("/:id/reject", cfg.PermissionMiddleware.RequirePermission("church", "review"), cfg.ChurchHandler.Reject)
	}
}
