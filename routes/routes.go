package routes

import (
	"ridehail/internal/handlers"
	"ridehail/internal/middleware"
	"ridehail/internal/utils"
	"ridehail/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Customer  *handlers.CustomerHandler
	Driver    *handlers.DriverHandler
	Admin     *handlers.AdminHandler
	Analytics *handlers.AnalyticsHandler
	Health    *handlers.HealthHandler
}

type RouterConfig struct {
	// Release switches gin to release mode.
	Release            bool
	CORSAllowedOrigins []string
	TrustedProxies     []string
}

// NewRouter wires middleware and every route onto a fresh engine.
func NewRouter(h *Handlers, config RouterConfig, log *logger.Logger) *gin.Engine {
	if config.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	_ = router.SetTrustedProxies(config.TrustedProxies)

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.CORSMiddleware(config.CORSAllowedOrigins))

	router.NoRoute(utils.NotFoundResponse)

	router.GET("/health", h.Health.Health)
	router.GET("/analytics/complaints", h.Analytics.ComplaintStats)

	api := router.Group("/api")
	api.POST("/login", h.Auth.Login)

	SetupCustomerRoutes(api, h.Customer)
	SetupDriverRoutes(api, h.Driver)
	SetupAdminRoutes(api, h.Admin)

	return router
}
