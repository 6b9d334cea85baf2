package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
	"qcheck/internal/shared/errors"
)

func projectStatsFixture() []*checklist.Checklist {
	// Day one: 5 answers, 1 NOK, one tolerated free-text answer that
	// counts toward the total only. Day two: 2 answers, 1 NOK, plus a
	// pending checklist without answers.
	first := makeChecklist(1, 10, 100, uintPtr(7), uintPtr(3), dayUTC(2025, 3, 10), "morning", map[uint]string{
		11: "OK", 12: "NOK", 13: "OK", 14: "ok", 15: "N/A",
	})
	attachPlan(first, 500, 1001, 12, 2, vo.PlanStatusOpen)

	second := makeChecklist(2, 20, 100, uintPtr(7), uintPtr(4), dayUTC(2025, 3, 12), "night", map[uint]string{
		11: "nok", 12: "OK",
	})
	attachPlan(second, 501, 1005, 11, 1, vo.PlanStatusClosed)

	third := makePendingChecklist(3, 10, 100, uintPtr(7), uintPtr(3), dayUTC(2025, 3, 12), "morning", nil)

	return []*checklist.Checklist{first, second, third}
}

func TestGetProjectStatisticsUseCase_Execute_Aggregates(t *testing.T) {
	statsRepo := &mockStatsRepository{
		ListWithDetailsFunc: func(ctx context.Context, filter checklist.QueryFilter) ([]*checklist.Checklist, error) {
			return projectStatsFixture(), nil
		},
	}
	catalogRepo := &mockCatalogRepository{
		FindProjectFunc: func(ctx context.Context, id uint) (*catalog.Project, error) {
			return &catalog.Project{ID: 7, Name: "Dashboard Harness"}, nil
		},
		TemplateNamesFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{100: "Final Inspection"}, nil
		},
		LineNamesFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{3: "Line A"}, nil
		},
		UserNamesFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{10: "amina", 20: "karim"}, nil
		},
	}

	useCase := NewGetProjectStatisticsUseCase(statsRepo, catalogRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetProjectStatisticsQuery{ProjectID: 7})

	require.NoError(t, err)
	assert.Equal(t, "Dashboard Harness", result.ProjectName)
	assert.Equal(t, int64(3), result.TotalChecklists)
	assert.Equal(t, int64(2), result.CompletedChecklists)
	assert.Equal(t, int64(1), result.PendingChecklists)
	assert.InDelta(t, 2.0/3.0*100, result.CompletionRate, 0.001)

	// The "N/A" answer counts toward the total but is neither OK nor
	// NOK.
	assert.Equal(t, int64(7), result.TotalAnswers)
	assert.Equal(t, int64(4), result.OKAnswers)
	assert.Equal(t, int64(2), result.NokAnswers)
	assert.InDelta(t, 4.0/7.0*100, result.OKRate, 0.001)
	assert.InDelta(t, 2.0/7.0*100, result.NokRate, 0.001)

	assert.Equal(t, int64(2), result.TotalActionPlans)
	assert.Equal(t, int64(1), result.OpenActionPlans)
	assert.Equal(t, int64(1), result.ClosedActionPlans)
	assert.InDelta(t, 50.0, result.ActionPlanClosureRate, 0.001)

	require.Len(t, result.Trend, 2)
	assert.Equal(t, "2025-03-10", result.Trend[0].Date)
	assert.Equal(t, int64(1), result.Trend[0].TotalChecklists)
	assert.Equal(t, int64(1), result.Trend[0].CompletedChecklists)
	assert.Equal(t, int64(1), result.Trend[0].NokAnswers)
	assert.Equal(t, "2025-03-12", result.Trend[1].Date)
	assert.Equal(t, int64(2), result.Trend[1].TotalChecklists)
	assert.Equal(t, int64(1), result.Trend[1].CompletedChecklists)
	assert.Equal(t, int64(1), result.Trend[1].NokAnswers)

	require.Len(t, result.TemplateUsage, 1)
	assert.Equal(t, "Final Inspection", result.TemplateUsage[0].TemplateName)
	assert.Equal(t, int64(3), result.TemplateUsage[0].UsageCount)
	assert.InDelta(t, 2.0/7.0*100, result.TemplateUsage[0].AverageNokRate, 0.001)

	// Line 4 has no catalog entry so its name falls back.
	require.Len(t, result.LinePerformance, 2)
	byLine := make(map[string]int)
	for i, lp := range result.LinePerformance {
		byLine[lp.LineName] = i
	}
	require.Contains(t, byLine, "Line A")
	require.Contains(t, byLine, "Unknown")
	lineA := result.LinePerformance[byLine["Line A"]]
	assert.Equal(t, int64(2), lineA.TotalChecklists)
	assert.Equal(t, int64(1), lineA.NokAnswers)
	assert.InDelta(t, 1.0/5.0*100, lineA.NokRate, 0.001)
	unknownLine := result.LinePerformance[byLine["Unknown"]]
	assert.Equal(t, int64(1), unknownLine.TotalChecklists)
	assert.InDelta(t, 50.0, unknownLine.NokRate, 0.001)

	require.Len(t, result.UserProductivity, 2)
	byUser := make(map[string]int)
	for i, up := range result.UserProductivity {
		byUser[up.UserName] = i
	}
	require.Contains(t, byUser, "amina")
	require.Contains(t, byUser, "karim")
	// The pending checklist does not count toward amina's completions.
	assert.Equal(t, int64(1), result.UserProductivity[byUser["amina"]].CompletedChecklists)
	assert.Equal(t, int64(1), result.UserProductivity[byUser["amina"]].ActionPlansCreated)
	assert.Equal(t, int64(1), result.UserProductivity[byUser["karim"]].CompletedChecklists)
	assert.Equal(t, int64(1), result.UserProductivity[byUser["karim"]].ActionPlansCreated)

	require.Len(t, result.ShiftDistribution, 2)
	byShift := make(map[string]int)
	for i, sd := range result.ShiftDistribution {
		byShift[sd.Shift] = i
	}
	require.Contains(t, byShift, "morning")
	require.Contains(t, byShift, "night")
	morning := result.ShiftDistribution[byShift["morning"]]
	assert.Equal(t, int64(2), morning.TotalChecklists)
	assert.InDelta(t, 1.0/5.0*100, morning.NokRate, 0.001)
	night := result.ShiftDistribution[byShift["night"]]
	assert.Equal(t, int64(1), night.TotalChecklists)
	assert.InDelta(t, 50.0, night.NokRate, 0.001)
}

func TestGetProjectStatisticsUseCase_Execute_EmptyWindow(t *testing.T) {
	statsRepo := &mockStatsRepository{
		ListWithDetailsFunc: func(ctx context.Context, filter checklist.QueryFilter) ([]*checklist.Checklist, error) {
			return nil, nil
		},
	}

	useCase := NewGetProjectStatisticsUseCase(statsRepo, &mockCatalogRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetProjectStatisticsQuery{ProjectID: 7})

	require.NoError(t, err)
	assert.Zero(t, result.TotalChecklists)
	assert.Zero(t, result.CompletionRate)
	assert.Zero(t, result.OKRate)
	assert.Zero(t, result.NokRate)
	assert.Zero(t, result.ActionPlanClosureRate)
	assert.Empty(t, result.Trend)
}

func TestGetProjectStatisticsUseCase_Execute_EndDateInclusive(t *testing.T) {
	var captured checklist.QueryFilter
	statsRepo := &mockStatsRepository{
		ListWithDetailsFunc: func(ctx context.Context, filter checklist.QueryFilter) ([]*checklist.Checklist, error) {
			captured = filter
			return nil, nil
		},
	}

	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 8, 0, 0, 0, time.UTC)

	useCase := NewGetProjectStatisticsUseCase(statsRepo, &mockCatalogRepository{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), GetProjectStatisticsQuery{ProjectID: 7, StartDate: &start, EndDate: &end})

	require.NoError(t, err)
	require.NotNil(t, captured.StartDate)
	require.NotNil(t, captured.EndDate)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *captured.StartDate)

	// A checklist filed at 23:59:59 on the end date must still match.
	lastMoment := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	assert.False(t, captured.EndDate.Before(lastMoment))
	assert.True(t, captured.EndDate.Before(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGetProjectStatisticsUseCase_Execute_Errors(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("inverted window", func(t *testing.T) {
		useCase := NewGetProjectStatisticsUseCase(&mockStatsRepository{}, &mockCatalogRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetProjectStatisticsQuery{ProjectID: 7, StartDate: &start, EndDate: &end})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("missing project", func(t *testing.T) {
		catalogRepo := &mockCatalogRepository{
			FindProjectFunc: func(ctx context.Context, id uint) (*catalog.Project, error) {
				return nil, errors.NewNotFoundError("project not found")
			},
		}
		useCase := NewGetProjectStatisticsUseCase(&mockStatsRepository{}, catalogRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetProjectStatisticsQuery{ProjectID: 404})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("zero project id", func(t *testing.T) {
		useCase := NewGetProjectStatisticsUseCase(&mockStatsRepository{}, &mockCatalogRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetProjectStatisticsQuery{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
