package usecases

import (
	"context"

	"qcheck/internal/application/statistics/dto"
)

type GetProjectStatisticsExecutor interface {
	Execute(ctx context.Context, query GetProjectStatisticsQuery) (*dto.ProjectStatistics, error)
}

type GetDashboardOverviewExecutor interface {
	Execute(ctx context.Context) (*dto.DashboardOverview, error)
}

type GetProjectComparisonExecutor interface {
	Execute(ctx context.Context, query GetProjectComparisonQuery) (*dto.ProjectComparison, error)
}
