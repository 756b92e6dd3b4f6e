package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/stakegate/ledgersync/internal/api/middleware"
	"github.com/stakegate/ledgersync/internal/config"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg config.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Ownership endpoints (public read access)
		v1.GET("/assets/:asset_id/owners", handler.GetAssetOwners)

		// Epoch endpoints (public read access)
		v1.GET("/epochs/current", handler.GetCurrentEpoch)

		// On-demand escrow sweep (requires authentication)
		v1.POST("/swaps/sweep", middleware.Auth(authCfg), handler.TriggerSweep)

		// Poll entry snapshot endpoints (requires authentication)
		v1.POST("/polls/:id/entries", middleware.Auth(authCfg), handler.BuildPollEntries)
		v1.POST("/polls/:id/finalize", middleware.Auth(authCfg), handler.FinalizePollEntries)
	}
}
