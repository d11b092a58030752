package routes

import (
	"github.com/gin-gonic/gin"

	"ministryshare/internal/interfaces/http/handlers"
	"ministryshare/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for resource, tag, and import routes.
type CatalogRouteConfig struct {
	ResourceHandler      *handlers.ResourceHandler
	TagHandler           *handlers.TagHandler
	ImportHandler        *handlers.ImportHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCatalogRoutes configures the resource catalog, tag listing, and bulk
// import routes. All catalog routes require an authenticated user.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	resources := engine.Group("/api/v1/resources")
	resources.Use(cfg.AuthMiddleware.RequireAuth())
	{
		resources.GET("", cfg.PermissionMiddleware.RequirePermission("resource", "read"), cfg.ResourceHandler.List)
		resources.GET("/:id", cfg.PermissionMiddleware.RequirePermission("resource", "read"), cfg.ResourceHandler.Get)
		resources.POST("", cfg.PermissionMiddleware.RequirePermission("resource", "create"), cfg.ResourceHandler.Create)
		resources.PUT("/:id", cfg.PermissionMiddleware.RequirePermission("resource", "update"), cfg.ResourceHandler.Update)
		resources.DELETE("/:id", cfg.PermissionMiddleware.RequirePermission("resource", "delete"), cfg.ResourceHandler.Delete)

		resources.POST("/import", cfg.PermissionMiddleware.RequirePermission("resource", "import"), cfg.ImportHandler.Import)
		resources.GET("/import/template", cfg.PermissionMiddleware.RequirePermission("resource", "import"), cfg.ImportHandler.Template)
	}

	tags := engine.Group("/api/v1/tags")
	tags.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tags.GET("", cfg.PermissionMiddleware.RequirePermission("tag", "read"), cfg.TagHandler.List)
	}
}
