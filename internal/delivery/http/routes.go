package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealscan/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.SugaredLogger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		meals := v1.Group("/meals")
		{
			meals.POST("", handler.CreateMeal)
			meals.GET("/:id", handler.GetMeal)
			meals.POST("/map", handler.MapFoods)
		}
	}

	return router
}
