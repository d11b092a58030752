package routes

import (
	"github.com/gin-gonic/gin"

	"ministryshare/internal/interfaces/http/handlers"
	"ministryshare/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the admin surface.
type AdminRouteConfig struct {
	UserHandler          *handlers.UserHandler
	ActivityHandler      *handlers.ActivityHandler
	SettingHandler       *handlers.SettingHandler
	DashboardHandler     *handlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures user administration, the activity log, site
// settings, and the dashboard.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/v1/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/users", cfg.PermissionMiddleware.RequirePermission("user", "read"), cfg.UserHandler.List)
		admin.PUT("/users/:id", cfg.PermissionMiddleware.RequirePermission("user", "update"), cfg.UserHandler.Update)

		admin.GET("/activity", cfg.PermissionMiddleware.RequirePermission("activity", "read"), cfg.ActivityHandler.List)

		admin.GET("/settings", cfg.PermissionMiddleware.RequirePermission("settings", "read"), cfg.SettingHandler.Get)
		admin.PUT("/settings", cfg.PermissionMiddleware.RequirePermission("settings", "update"), cfg.SettingHandler.Update)

		admin.GET("/dashboard", cfg.PermissionMiddleware.RequirePermission("dashboard", "read"), cfg.DashboardHandler.Stats)
	}
}
