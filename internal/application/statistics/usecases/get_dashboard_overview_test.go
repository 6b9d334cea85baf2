package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
	"qcheck/internal/shared/errors"
)

func TestGetDashboardOverviewUseCase_Execute_Success(t *testing.T) {
	recent := makeChecklist(42, 10, 100, uintPtr(7), nil, dayUTC(2025, 3, 15), "morning", map[uint]string{
		11: "OK", 12: "NOK",
	})
	attachPlan(recent, 600, 1001, 12, 2, vo.PlanStatusOpen)

	noProject := makeChecklist(43, 99, 100, nil, nil, dayUTC(2025, 3, 14), "", map[uint]string{
		11: "OK",
	})

	statsRepo := &mockStatsRepository{
		CountChecklistsFunc: func(ctx context.Context) (int64, error) { return 120, nil },
		CountChecklistsOnDayFunc: func(ctx context.Context, day time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().UTC(), day, time.Minute)
			return 3, nil
		},
		CountOpenActionPlansFunc: func(ctx context.Context) (int64, error) {
			return 8, nil
		},
		TallyAnswersFunc: func(ctx context.Context) (checklist.AnswerTally, error) {
			return checklist.AnswerTally{Total: 400, OK: 360}, nil
		},
		TopProjectsByChecklistCountFunc: func(ctx context.Context, limit int) ([]checklist.ProjectChecklistCount, error) {
			assert.Equal(t, 5, limit)
			// Project 12 has no checklists yet but still makes the
			// ranking.
			return []checklist.ProjectChecklistCount{
				{ProjectID: 7, ChecklistCount: 80},
				{ProjectID: 9, ChecklistCount: 40},
				{ProjectID: 12, ChecklistCount: 0},
			}, nil
		},
		TallyAnswersByProjectFunc: func(ctx context.Context, projectID uint) (checklist.AnswerTally, error) {
			if projectID == 7 {
				return checklist.AnswerTally{Total: 200, OK: 150}, nil
			}
			// Project 9 has checklists but no answers yet.
			return checklist.AnswerTally{}, nil
		},
		RecentCompletedFunc: func(ctx context.Context, limit int) ([]*checklist.Checklist, error) {
			assert.Equal(t, 10, limit)
			return []*checklist.Checklist{recent, noProject}, nil
		},
	}
	catalogRepo := &mockCatalogRepository{
		CountProjectsFunc:  func(ctx context.Context) (int64, error) { return 4, nil },
		CountUsersFunc:     func(ctx context.Context) (int64, error) { return 25, nil },
		CountTemplatesFunc: func(ctx context.Context) (int64, error) { return 6, nil },
		ProjectNamesFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{7: "Dashboard Harness", 12: "Idle Press"}, nil
		},
		TemplateNamesFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{100: "Final Inspection"}, nil
		},
		UserNamesFunc: func(ctx context.Context, ids []uint) (map[uint]string, error) {
			return map[uint]string{10: "amina"}, nil
		},
	}

	useCase := NewGetDashboardOverviewUseCase(statsRepo, catalogRepo, &mockLogger{})
	overview, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(120), overview.TotalChecklists)
	assert.Equal(t, int64(3), overview.ChecklistsToday)
	assert.Equal(t, int64(4), overview.TotalProjects)
	assert.Equal(t, int64(25), overview.TotalUsers)
	assert.Equal(t, int64(6), overview.TotalTemplates)
	assert.Equal(t, int64(8), overview.OpenActionPlans)
	assert.InDelta(t, 90.0, overview.OverallQualityRate, 0.001)

	require.Len(t, overview.TopProjects, 3)
	assert.Equal(t, "Dashboard Harness", overview.TopProjects[0].ProjectName)
	assert.InDelta(t, 75.0, overview.TopProjects[0].QualityRate, 0.001)
	// Missing catalog entry and empty tally both degrade gracefully.
	assert.Equal(t, "Unknown", overview.TopProjects[1].ProjectName)
	assert.Zero(t, overview.TopProjects[1].QualityRate)
	assert.Equal(t, "Idle Press", overview.TopProjects[2].ProjectName)
	assert.Zero(t, overview.TopProjects[2].ChecklistCount)
	assert.Zero(t, overview.TopProjects[2].QualityRate)

	require.Len(t, overview.RecentChecklists, 2)
	assert.Equal(t, "Final Inspection", overview.RecentChecklists[0].TemplateName)
	assert.Equal(t, "amina", overview.RecentChecklists[0].UserName)
	assert.Equal(t, 1, overview.RecentChecklists[0].NokAnswers)
	assert.Equal(t, "Unknown", overview.RecentChecklists[1].ProjectName)
	assert.Equal(t, "Unknown", overview.RecentChecklists[1].UserName)
}

func TestGetDashboardOverviewUseCase_Execute_EmptyDatabase(t *testing.T) {
	useCase := NewGetDashboardOverviewUseCase(&mockStatsRepository{}, &mockCatalogRepository{}, &mockLogger{})
	overview, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, overview.TotalChecklists)
	assert.Zero(t, overview.OverallQualityRate)
	assert.Empty(t, overview.TopProjects)
	assert.Empty(t, overview.RecentChecklists)
}

func TestGetDashboardOverviewUseCase_Execute_CountFailure(t *testing.T) {
	statsRepo := &mockStatsRepository{
		CountChecklistsFunc: func(ctx context.Context) (int64, error) {
			return 0, errors.NewInternalError("connection lost")
		},
	}

	useCase := NewGetDashboardOverviewUseCase(statsRepo, &mockCatalogRepository{}, &mockLogger{})
	_, err := useCase.Execute(context.Background())

	require.Error(t, err)
}
