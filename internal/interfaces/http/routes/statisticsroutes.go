package routes

import (
	"github.com/gin-gonic/gin"

	"qcheck/internal/interfaces/http/handlers"
	"qcheck/internal/interfaces/http/middleware"
)

// StatisticsRouteConfig holds dependencies for statistics routes.
type StatisticsRouteConfig struct {
	StatisticsHandler *handlers.StatisticsHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupStatisticsRoutes configures the statistics routes. All of them
// are admin-only.
func SetupStatisticsRoutes(api *gin.RouterGroup, cfg *StatisticsRouteConfig) {
	statistics := api.Group("/statistics")
	statistics.Use(cfg.AuthMiddleware.RequireAuth())
	statistics.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		statistics.GET("/dashboard", cfg.StatisticsHandler.GetDashboard)
		statistics.GET("/project/:id", cfg.StatisticsHandler.GetProjectStatistics)
		statistics.GET("/comparison", cfg.StatisticsHandler.GetProjectComparison)
	}
}
