// Package http wires repositories, use cases, handlers, and middleware into
// the gin engine that serves the API.
package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	activityApp "ministryshare/internal/application/activity"
	lendingUsecases "ministryshare/internal/application/lending/usecases"
	"ministryshare/internal/application/notification"
	userUsecases "ministryshare/internal/application/user/usecases"
	"ministryshare/internal/infrastructure/auth"
	"ministryshare/internal/infrastructure/config"
	"ministryshare/internal/infrastructure/email"
	"ministryshare/internal/infrastructure/permission"
	"ministryshare/internal/infrastructure/ratelimit"
	"ministryshare/internal/interfaces/http/middleware"
	"ministryshare/internal/interfaces/http/routes"
	"ministryshare/internal/shared/authorization"
	shareddb "ministryshare/internal/shared/db"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/services/markdown"
)

// jwtServiceAdapter bridges the infrastructure JWT service to the use case
// port, converting between the two TokenPair shapes.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, role authorization.UserRole, churchID *uint) (*userUsecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, role, churchID)
	if err != nil {
		return nil, err
	}
	return &userUsecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// registerCustomValidators adds the date-only wire format to gin's binding
// validator. Loan request dates arrive as YYYY-MM-DD strings.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

// Router owns the gin engine and the use cases that outlive a single request.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	ucs    *allUseCases
}

// NewRouter builds the full dependency graph and registers all routes.
// redisClient may be nil, in which case rate limiting is disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerCustomValidators()

	repos := buildRepositories(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpDays, cfg.Auth.JWT.RefreshExpDays)

	sender := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
	notifier := notification.NewService(sender, repos.setting, markdown.NewService(), log)
	recorder := activityApp.NewRecorder(repos.activity, log)

	ucs := buildUseCases(&useCaseDeps{
		repos:         repos,
		hasher:        hasher,
		tokens:        &jwtServiceAdapter{jwtSvc},
		txManager:     shareddb.NewTransactionManager(db),
		recorder:      recorder,
		notifier:      notifier,
		verifyURLBase: cfg.Server.BaseURL,
		log:           log,
	})

	hdlrs := buildHandlers(ucs, db, cfg, jwtSvc.AccessExpSeconds(), log)

	enforcer, err := permission.NewEnforcer(db, cfg.RBAC.ModelPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build permission enforcer: %w", err)
	}
	if err := permission.SeedDefaultPolicies(enforcer, log); err != nil {
		return nil, fmt.Errorf("failed to seed default policies: %w", err)
	}

	authMW := middleware.NewAuthMiddleware(jwtSvc, log)
	permMW := middleware.NewPermissionMiddleware(enforcer, log)

	var loginLimiter, registerLimiter gin.HandlerFunc
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		loginLimiter = middleware.RateLimit(limiter, "auth", ratelimit.Config{PerMinute: 10, PerHour: 100}, log)
		registerLimiter = middleware.RateLimit(limiter, "church-register", ratelimit.Config{PerMinute: 3, PerHour: 20}, log)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.ErrorHandler(),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
		middleware.Locale(),
	)

	engine.GET("/health", hdlrs.health.Health)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    hdlrs.auth,
		AuthMiddleware: authMW,
		LoginLimiter:   loginLimiter,
	})
	routes.SetupChurchRoutes(engine, &routes.ChurchRouteConfig{
		ChurchHandler:        hdlrs.church,
		AuthMiddleware:       authMW,
		PermissionMiddleware: permMW,
		RegisterLimiter:      registerLimiter,
	})
	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{
		ResourceHandler:      hdlrs.resource,
		TagHandler:           hdlrs.tag,
		ImportHandler:        hdlrs.importer,
		AuthMiddleware:       authMW,
		PermissionMiddleware: permMW,
	})
	routes.SetupLendingRoutes(engine, &routes.LendingRouteConfig{
		LendingHandler:       hdlrs.lending,
		AuthMiddleware:       authMW,
		PermissionMiddleware: permMW,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		UserHandler:          hdlrs.user,
		ActivityHandler:      hdlrs.activity,
		SettingHandler:       hdlrs.setting,
		DashboardHandler:     hdlrs.dashboard,
		AuthMiddleware:       authMW,
		PermissionMiddleware: permMW,
	})

	return &Router{engine: engine, cfg: cfg, log: log, ucs: ucs}, nil
}

// Engine exposes the configured gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// SweepOverdueLoans exposes the overdue sweep for the background ticker.
func (r *Router) SweepOverdueLoans() *lendingUsecases.SweepOverdueLoansUseCase {
	return r.ucs.sweepOverdue
}
