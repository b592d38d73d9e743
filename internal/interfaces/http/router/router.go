package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nivas/backend/internal/domain/identity"
	"github.com/nivas/backend/internal/infrastructure/auth"
	"github.com/nivas/backend/internal/infrastructure/config"
	"github.com/nivas/backend/internal/infrastructure/logger"
	"github.com/nivas/backend/internal/interfaces/http/handler"
	"github.com/nivas/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router wires up
type Handlers struct {
	System    *handler.SystemHandler
	Auth      *handler.AuthHandler
	Society   *handler.SocietyHandler
	Resident  *handler.ResidentHandler
	Bill      *handler.BillHandler
	Payment   *handler.PaymentHandler
	Visitor   *handler.VisitorHandler
	Complaint *handler.ComplaintHandler
	Expense   *handler.ExpenseHandler
	Notice    *handler.NoticeHandler
	Vehicle   *handler.VehicleHandler
	SOS       *handler.SOSHandler
}

// Dependencies carries what the router needs beyond the handlers
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Handlers   Handlers
}

const (
	roleResident  = string(identity.RoleResident)
	roleAdmin     = string(identity.RoleAdmin)
	roleDeveloper = string(identity.RoleDeveloper)
)

// New builds the gin engine with all middleware and routes wired.
//
// Route layout:
//
//	/health, /ready          liveness probes, no auth
//	/api/v1/auth/login       public
//	/api/v1/kiosk/visitors   public gate kiosk, society named in the body
//	/api/v1/societies/...    developer only, never society-scoped
//	everything else          JWT + society scope, per-route role guards
func New(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := middleware.RegisterCustomValidators(); err != nil {
		deps.Logger.Warn("Failed to register custom validators", zap.Error(err))
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(deps.Logger),
		logger.Recovery(deps.Logger),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig(deps.Config)),
	)
	if len(deps.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(deps.Config.HTTP.TrustedProxies)
	}

	h := deps.Handlers

	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	api := engine.Group("/api/v1")

	// Public surface
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/kiosk/visitors", h.Visitor.KioskEntry)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     deps.JWTService,
		TokenBlacklist: deps.Blacklist,
		Logger:         deps.Logger,
	}))

	// Session routes work for every role, society-bound or not
	authed.POST("/auth/logout", h.Auth.Logout)
	authed.GET("/auth/me", h.Auth.Me)
	authed.PUT("/auth/profile", h.Auth.UpdateProfile)

	// Developer provisioning surface; developer tokens carry no society and
	// never pass the tenant middleware
	developer := authed.Group("/societies", middleware.RequireRole(roleDeveloper))
	{
		developer.POST("", h.Society.Create)
		developer.GET("", h.Society.List)
		developer.GET("/:id", h.Society.Get)
		developer.DELETE("/:id", h.Society.Delete)
		developer.POST("/:id/reset-admin-password", h.Society.ResetAdminPassword)
	}

	// Tenant surface: everything below resolves its society from the claims
	tenant := authed.Group("", middleware.RequireSocietyScope())

	admin := tenant.Group("", middleware.RequireRole(roleAdmin))
	{
		admin.POST("/residents", h.Resident.Create)
		admin.GET("/residents", h.Resident.List)
		admin.GET("/residents/:id", h.Resident.Get)
		admin.DELETE("/residents/:id", h.Resident.Delete)

		admin.POST("/bills/generate", h.Bill.Generate)
		admin.GET("/bills", h.Bill.List)
		admin.DELETE("/bills/:id", h.Bill.Delete)
		admin.POST("/bills/delete-by-period", h.Bill.DeleteByPeriod)

		admin.GET("/complaints", h.Complaint.List)
		admin.PUT("/complaints/:id/status", h.Complaint.UpdateStatus)
		admin.DELETE("/complaints/:id", h.Complaint.Delete)

		admin.POST("/expenses", h.Expense.Create)
		admin.DELETE("/expenses/:id", h.Expense.Delete)
		admin.POST("/expenses/delete-by-month", h.Expense.DeleteByMonth)

		admin.POST("/notices", h.Notice.Create)
		admin.DELETE("/notices/:id", h.Notice.Delete)

		admin.DELETE("/visitors/:id", h.Visitor.Delete)
	}

	resident := tenant.Group("", middleware.RequireRole(roleResident))
	{
		resident.GET("/bills/my", h.Bill.ListMine)
		resident.POST("/payments/order", h.Payment.CreateOrder)
		resident.POST("/payments/verify", h.Payment.Verify)

		resident.POST("/complaints", h.Complaint.Raise)
		resident.GET("/complaints/my", h.Complaint.ListMine)

		resident.POST("/visitors/pre-approve", h.Visitor.PreApprove)

		resident.POST("/vehicles", h.Vehicle.Create)
		resident.GET("/vehicles/my", h.Vehicle.ListMine)

		resident.PUT("/sos/contact", h.SOS.SetContact)
		resident.DELETE("/sos/contact", h.SOS.ClearContact)
	}

	// Shared tenant routes: both roles see the gate log, the notice board,
	// the expense ledger and the registry
	shared := tenant.Group("", middleware.RequireAnyRole(roleAdmin, roleResident))
	{
		shared.GET("/visitors", h.Visitor.List)
		shared.POST("/visitors/:id/exit", h.Visitor.MarkExit)

		shared.GET("/expenses", h.Expense.List)
		shared.GET("/expenses/summary", h.Expense.Summary)

		shared.GET("/notices", h.Notice.List)
		shared.POST("/notices/:id/read", h.Notice.MarkRead)

		shared.GET("/vehicles", h.Vehicle.List)
		shared.DELETE("/vehicles/:id", h.Vehicle.Delete)

		shared.GET("/sos", h.SOS.GetNumbers)
	}

	return engine
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	return corsCfg
}
