package routes

import (
	"github.com/gin-gonic/gin"

	"ministryshare/internal/interfaces/http/handlers"
	"ministryshare/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginLimiter   gin.HandlerFunc // may be nil when rate limiting is disabled
}

// SetupAuthRoutes configures registration, login, and email verification routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.LoginLimiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{cfg.LoginLimiter, h}
	}

	auth := engine.Group("/api/v1/auth")
	{
		auth.POST("/register", limited(cfg.AuthHandler.Register)...)
		auth.POST("/login", limited(cfg.AuthHandler.Login)...)
		auth.POST("/logout", cfg.AuthHandler.Logout)

		auth.GET("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/resend-verification", limited(cfg.AuthHandler.ResendVerification)...)

		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
