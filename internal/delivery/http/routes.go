package http

import (
	"github.com/gin-gonic/gin"

	"github.com/accold/mtg-price-api/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Liveness endpoint
	router.GET("/health", handler.HealthCheck)

	// Price lookup endpoint
	router.GET("/price", handler.GetPrice)

	return router
}
