package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"qcheck/internal/application/statistics/usecases"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
	"qcheck/internal/shared/utils"
)

type StatisticsHandler struct {
	projectStatsUC usecases.GetProjectStatisticsExecutor
	dashboardUC    usecases.GetDashboardOverviewExecutor
	comparisonUC   usecases.GetProjectComparisonExecutor
	logger         logger.Interface
}

func NewStatisticsHandler(
	projectStatsUC usecases.GetProjectStatisticsExecutor,
	dashboardUC usecases.GetDashboardOverviewExecutor,
	comparisonUC usecases.GetProjectComparisonExecutor,
	logger logger.Interface,
) *StatisticsHandler {
	return &StatisticsHandler{
		projectStatsUC: projectStatsUC,
		dashboardUC:    dashboardUC,
		comparisonUC:   comparisonUC,
		logger:         logger,
	}
}

func (h *StatisticsHandler) GetDashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StatisticsHandler) GetProjectStatistics(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	startDate, err := utils.ParseDateQuery(c, "start_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	endDate, err := utils.ParseDateQuery(c, "end_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.projectStatsUC.Execute(c.Request.Context(), usecases.GetProjectStatisticsQuery{
		ProjectID: projectID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StatisticsHandler) GetProjectComparison(c *gin.Context) {
	projectIDs, err := parseProjectIDs(c.Query("project_ids"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	startDate, err := utils.ParseDateQuery(c, "start_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	endDate, err := utils.ParseDateQuery(c, "end_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.comparisonUC.Execute(c.Request.Context(), usecases.GetProjectComparisonQuery{
		ProjectIDs: projectIDs,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// parseProjectIDs parses the comma-separated project_ids query value.
func parseProjectIDs(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewValidationError("project_ids is required")
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		id, err := strconv.ParseUint(trimmed, 10, 64)
		if err != nil || id == 0 {
			return nil, errors.NewValidationError("invalid project ID: " + strconv.Quote(trimmed))
		}
		ids = append(ids, uint(id))
	}

	return ids, nil
}
