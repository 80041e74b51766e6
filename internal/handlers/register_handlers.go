package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/solenbank/solen_backend/internal/core/ports/services"
	"github.com/solenbank/solen_backend/internal/middleware"
	"github.com/solenbank/solen_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies via
// the service facades.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	ledgerHandler := NewLedgerHandler(services.Ledger, services.Account, services.Access)
	accountHandler := NewAccountHandler(services.Account)
	userHandler := NewUserHandler(services.User)
	registrationHandler := NewRegistrationHandler(services.Registration)
	adminHandler := NewAdminHandler(services.Access)

	// Any authenticated caller.
	v1.POST("/register", registrationHandler.Register)
	v1.GET("/users/me", userHandler.GetMe)
	v1.GET("/accounts", accountHandler.ListMine)
	v1.GET("/accounts/:accountID/balance", ledgerHandler.GetBalance)
	v1.POST("/transfers", ledgerHandler.Transfer)

	// Admin or owner.
	admin := v1.Group("", middleware.RequireAdmin(services.Access))
	{
		admin.GET("/users", userHandler.List)
		admin.GET("/users/by-account/:accountID", userHandler.GetByAccount)
		admin.POST("/accounts/business", accountHandler.CreateBusiness)
		admin.DELETE("/accounts/business/:accountID", accountHandler.DeleteBusiness)
		admin.DELETE("/accounts/:accountID", accountHandler.Delete)
		admin.POST("/accounts/:accountID/owner", accountHandler.TransferOwnership)
		admin.POST("/accounts/:accountID/adjust", ledgerHandler.AdjustBalance)
		admin.POST("/codes", registrationHandler.AddCode)
	}

	// Owner only.
	owner := v1.Group("/admins", middleware.RequireOwner(services.Access))
	{
		owner.POST("", adminHandler.Add)
		owner.DELETE("/:identity", adminHandler.Remove)
		owner.GET("", adminHandler.List)
	}
}
