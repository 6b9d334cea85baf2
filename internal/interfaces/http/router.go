// Package http wires the gin engine: middleware, handlers and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checklistUC "qcheck/internal/application/checklist/usecases"
	statisticsUC "qcheck/internal/application/statistics/usecases"
	"qcheck/internal/infrastructure/auth"
	"qcheck/internal/infrastructure/config"
	"qcheck/internal/infrastructure/repository"
	"qcheck/internal/interfaces/http/handlers"
	"qcheck/internal/interfaces/http/middleware"
	"qcheck/internal/interfaces/http/routes"
	"qcheck/internal/shared/db"
	"qcheck/internal/shared/logger"
)

// Router owns the gin engine and the wired handler graph.
type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	checklistHandler  *handlers.ChecklistHandler
	statisticsHandler *handlers.StatisticsHandler
	authMiddleware    *middleware.AuthMiddleware
	logger            logger.Interface
}

// NewRouter builds the full dependency graph from the database handle
// and configuration.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	checklistRepo := repository.NewChecklistRepository(database)
	catalogRepo := repository.NewCatalogRepository(database)
	txManager := db.NewTransactionManager(database)

	startUC := checklistUC.NewStartChecklistUseCase(checklistRepo, catalogRepo, cfg.Checklist, log)
	submitUC := checklistUC.NewSubmitChecklistUseCase(checklistRepo, catalogRepo, txManager, log)
	detailUC := checklistUC.NewGetChecklistDetailUseCase(checklistRepo, catalogRepo, log)
	listUC := checklistUC.NewListUserChecklistsUseCase(checklistRepo, catalogRepo, log)
	planStatusUC := checklistUC.NewUpdateActionPlanStatusUseCase(checklistRepo, log)

	projectStatsUC := statisticsUC.NewGetProjectStatisticsUseCase(checklistRepo, catalogRepo, log)
	dashboardUC := statisticsUC.NewGetDashboardOverviewUseCase(checklistRepo, catalogRepo, log)
	comparisonUC := statisticsUC.NewGetProjectComparisonUseCase(checklistRepo, catalogRepo, log)

	checklistHandler := handlers.NewChecklistHandler(startUC, submitUC, detailUC, listUC, planStatusUC, log)
	statisticsHandler := handlers.NewStatisticsHandler(projectStatsUC, dashboardUC, comparisonUC, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:            engine,
		cfg:               cfg,
		checklistHandler:  checklistHandler,
		statisticsHandler: statisticsHandler,
		authMiddleware:    authMiddleware,
		logger:            log,
	}
}

// SetupRoutes registers global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupChecklistRoutes(api, &routes.ChecklistRouteConfig{
		ChecklistHandler: r.checklistHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupStatisticsRoutes(api, &routes.StatisticsRouteConfig{
		StatisticsHandler: r.statisticsHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// GetEngine exposes the underlying gin engine to the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
