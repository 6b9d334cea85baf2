package routes

import (
	"github.com/gin-gonic/gin"

	"qcheck/internal/interfaces/http/handlers"
	"qcheck/internal/interfaces/http/middleware"
)

// ChecklistRouteConfig holds dependencies for checklist routes.
type ChecklistRouteConfig struct {
	ChecklistHandler *handlers.ChecklistHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupChecklistRoutes configures the checklist workflow routes.
func SetupChecklistRoutes(api *gin.RouterGroup, cfg *ChecklistRouteConfig) {
	checklists := api.Group("/checklists")
	checklists.Use(cfg.AuthMiddleware.RequireAuth())
	{
		checklists.POST("/start", cfg.ChecklistHandler.StartChecklist)
		checklists.POST("/submit", cfg.ChecklistHandler.SubmitChecklist)
		checklists.GET("/my", cfg.ChecklistHandler.GetMyChecklists)
		checklists.GET("/:id", cfg.ChecklistHandler.GetChecklist)
	}

	actionPlans := api.Group("/action-plans")
	actionPlans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		actionPlans.PATCH("/:id/status", cfg.ChecklistHandler.UpdateActionPlanStatus)
	}
}
