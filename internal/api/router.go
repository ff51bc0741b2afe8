package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pooja-dev3/erp-lead-admin-sub000/docs"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/api/handler"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/api/middleware"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/service"
	mongodb "github.com/pooja-dev3/erp-lead-admin-sub000/internal/infrastructure/db/mongo"
)

// Services is everything the routes dispatch to.
type Services struct {
	Auth          *service.AuthService
	Notifications *service.NotificationService
	Companies     *service.CompanyService
	CompanyAdmins *service.CompanyAdminService
	Employees     *service.EmployeeService
	Visitors      *service.VisitorService
	Leads         *service.LeadService
	Badges        *service.BadgeService
	Audit         *service.AuditService
	Dashboard     *service.DashboardService
	Exports       *service.ExportService
	Settings      *service.SettingsService
}

// Options configures the router.
type Options struct {
	JWTSecret   string
	Development bool
	Log         zerolog.Logger

	Mongo   *mongo.Database
	Redis   *redis.Client
	Backend handler.Checker

	// Registerer receives the HTTP server metrics; nil means the default registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(middleware.Recover(opts.Development, opts.Log))
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "console",
		Registerer: opts.Registerer,
	}))

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(readinessChecks(opts))

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth, !opts.Development)
	e.POST("/auth/login", authHandler.Login)

	app := e.Group("", middleware.Auth(opts.JWTSecret, svc.Auth))
	app.POST("/auth/logout", authHandler.Logout)
	app.GET("/auth/me", authHandler.Me)

	// --- Dashboards: one route, a view per role ---
	dashboardHandler := handler.NewDashboardHandler(svc.Dashboard)
	app.GET("/dashboard", middleware.RoleSwitch{
		PlatformAdmin: dashboardHandler.Platform,
		CompanyAdmin:  dashboardHandler.Company,
		Employee:      dashboardHandler.Employee,
	}.Handle)
	app.GET("/analytics", dashboardHandler.Analytics)

	notificationHandler := handler.NewNotificationHandler(svc.Notifications)
	app.GET("/notifications", notificationHandler.List)
	app.DELETE("/notifications", notificationHandler.Clear)
	app.DELETE("/notifications/:id", notificationHandler.Dismiss)

	// --- Shared by every role ---
	visitorHandler := handler.NewVisitorHandler(svc.Visitors)
	visitors := app.Group("/visitors")
	visitors.GET("", visitorHandler.List)
	visitors.GET("/stats", visitorHandler.Stats)
	visitors.GET("/search/:phone", visitorHandler.Search)
	visitors.GET("/:id", visitorHandler.Get)
	visitors.POST("", visitorHandler.Create)
	visitors.PUT("/:id", visitorHandler.Update)
	visitors.DELETE("/:id", visitorHandler.Delete)

	leadHandler := handler.NewLeadHandler(svc.Leads)
	leads := app.Group("/leads")
	leads.GET("", leadHandler.List)
	leads.GET("/stats", leadHandler.Stats)
	leads.GET("/:id", leadHandler.Get)
	leads.POST("", leadHandler.Create)
	leads.PUT("/:id", leadHandler.Update)
	leads.DELETE("/:id", leadHandler.Delete)

	exportHandler := handler.NewExportHandler(svc.Exports)
	app.POST("/exports", exportHandler.Create)
	app.GET("/exports/:id", exportHandler.Get)
	app.GET("/exports/:id/download", exportHandler.Download)

	settingsHandler := handler.NewSettingsHandler(svc.Settings)
	app.GET("/settings", settingsHandler.Get)
	app.PUT("/settings", settingsHandler.Update)

	// --- Platform admin ---
	companyHandler := handler.NewCompanyHandler(svc.Companies)
	companies := app.Group("/companies", middleware.RBAC(domain.RolePlatformAdmin))
	companies.GET("", companyHandler.List)
	companies.GET("/:id", companyHandler.Get)
	companies.POST("", companyHandler.Create)
	companies.PUT("/:id", companyHandler.Update)
	companies.PUT("/:id/deactivate", companyHandler.Deactivate)
	companies.DELETE("/:id", companyHandler.Delete)

	companyAdminHandler := handler.NewCompanyAdminHandler(svc.CompanyAdmins)
	admins := app.Group("/company-admins", middleware.RBAC(domain.RolePlatformAdmin))
	admins.GET("", companyAdminHandler.List)
	admins.POST("", companyAdminHandler.Create)
	admins.PUT("/:id", companyAdminHandler.Update)

	// --- Company admin ---
	employeeHandler := handler.NewEmployeeHandler(svc.Employees)
	employees := app.Group("/employees", middleware.RBAC(domain.RoleCompanyAdmin))
	employees.GET("", employeeHandler.List)
	employees.POST("", employeeHandler.Create)
	employees.PUT("/:id", employeeHandler.Update)
	employees.PUT("/:id/deactivate", employeeHandler.Deactivate)

	badgeHandler := handler.NewBadgeHandler(svc.Badges)
	badges := app.Group("/badge-mappings", middleware.RBAC(domain.RoleCompanyAdmin))
	badges.GET("", badgeHandler.List)
	badges.POST("", badgeHandler.Create)
	badges.DELETE("/:id", badgeHandler.Delete)

	auditHandler := handler.NewAuditHandler(svc.Audit)
	app.GET("/audit-logs", auditHandler.List, middleware.RBAC(domain.RolePlatformAdmin, domain.RoleCompanyAdmin))

	return e
}

// readinessChecks probes every dependency that was wired in.
func readinessChecks(opts Options) map[string]handler.Checker {
	checks := make(map[string]handler.Checker, 3)
	if opts.Mongo != nil {
		db := opts.Mongo
		checks["mongodb"] = func(ctx context.Context) error {
			return mongodb.Ping(ctx, db)
		}
	}
	if opts.Redis != nil {
		rdb := opts.Redis
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	if opts.Backend != nil {
		checks["backend"] = opts.Backend
	}
	return checks
}
