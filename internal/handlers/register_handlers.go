// Package handlers wires the HTTP surface: request binding, auth context,
// service dispatch and error-to-status mapping.
package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
	"github.com/bolsillo-app/bolsillo_backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check doubles as the connectivity probe target.
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, services.Account)
	registerMovementRoutes(v1, services.Movement)
	registerCategoryRoutes(v1, services.Category)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerSyncRoutes(v1, services.Sync, services.Connectivity)
	registerDraftRoutes(v1, services.Drafts)
	registerReportingRoutes(v1, services.Reporting)
	registerPINRoutes(v1, services.StrongAuth)
}
