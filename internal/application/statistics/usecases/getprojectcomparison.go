package usecases

import (
	"context"
	"time"

	"qcheck/internal/application/statistics/dto"
	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
	"qcheck/internal/shared/biztime"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
)

type GetProjectComparisonQuery struct {
	ProjectIDs []uint
	StartDate  *time.Time
	EndDate    *time.Time
}

// GetProjectComparisonUseCase puts several projects side by side over
// the same date window. The per-day average uses the window length when
// a window is given, otherwise the span from the project's first
// checklist to the current day.
type GetProjectComparisonUseCase struct {
	statsRepo   checklist.StatsRepository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewGetProjectComparisonUseCase(
	statsRepo checklist.StatsRepository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *GetProjectComparisonUseCase {
	return &GetProjectComparisonUseCase{
		statsRepo:   statsRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *GetProjectComparisonUseCase) Execute(ctx context.Context, query GetProjectComparisonQuery) (*dto.ProjectComparison, error) {
	if len(query.ProjectIDs) < 2 {
		return nil, errors.NewValidationError("at least two project IDs are required")
	}
	if query.StartDate != nil && query.EndDate != nil && query.EndDate.Before(*query.StartDate) {
		return nil, errors.NewValidationError("end date must not precede start date")
	}

	seen := make(map[uint]bool, len(query.ProjectIDs))
	for _, id := range query.ProjectIDs {
		if id == 0 {
			return nil, errors.NewValidationError("project ID is required")
		}
		if seen[id] {
			return nil, errors.NewValidationError("duplicate project ID in comparison")
		}
		seen[id] = true
	}

	names, err := uc.catalogRepo.ProjectNames(ctx, query.ProjectIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve project names", "error", err)
		return nil, errors.NewInternalError("failed to resolve project names")
	}
	for _, id := range query.ProjectIDs {
		if _, ok := names[id]; !ok {
			return nil, errors.NewNotFoundError("project not found")
		}
	}

	var start, end *time.Time
	if query.StartDate != nil {
		s := biztime.StartOfDayUTC(*query.StartDate)
		start = &s
	}
	if query.EndDate != nil {
		e := biztime.EndOfDayUTC(*query.EndDate)
		end = &e
	}

	comparison := &dto.ProjectComparison{
		Projects: make([]dto.ProjectComparisonEntry, 0, len(query.ProjectIDs)),
	}

	for _, id := range query.ProjectIDs {
		projectID := id
		checklists, err := uc.statsRepo.ListWithDetails(ctx, checklist.QueryFilter{
			ProjectID: &projectID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			uc.logger.Errorw("failed to load project checklists", "error", err, "project_id", id)
			return nil, errors.NewInternalError("failed to load project checklists")
		}

		comparison.Projects = append(comparison.Projects, uc.buildEntry(id, names[id], checklists, start, end))
	}

	return comparison, nil
}

func (uc *GetProjectComparisonUseCase) buildEntry(projectID uint, name string, checklists []*checklist.Checklist, start, end *time.Time) dto.ProjectComparisonEntry {
	entry := dto.ProjectComparisonEntry{
		ProjectID:   projectID,
		ProjectName: name,
	}

	var totalAnswers, okAnswers int64
	var earliest *time.Time
	for _, cl := range checklists {
		entry.TotalChecklists++
		if cl.Status() == vo.StatusCompleted {
			entry.CompletedChecklists++
		}

		for _, a := range cl.Answers() {
			totalAnswers++
			if a.Value().IsOK() {
				okAnswers++
			}
		}
		for _, p := range cl.ActionPlans() {
			if !p.Status().IsClosed() {
				entry.OpenActionPlans++
			}
		}

		if cl.Date() != nil {
			d := *cl.Date()
			if earliest == nil || d.Before(*earliest) {
				earliest = &d
			}
		}
	}

	entry.QualityRate = rate(okAnswers, totalAnswers)
	entry.AvgChecklistsPerDay = avgPerDay(entry.TotalChecklists, start, end, earliest)

	return entry
}

// avgPerDay divides the checklist count by the number of UTC calendar
// days covered, with both boundary days counted. Open boundaries fall
// back to the earliest checklist date and the current time, so a stale
// project's average keeps shrinking until a window pins it down.
func avgPerDay(count int64, start, end, earliest *time.Time) float64 {
	if count == 0 {
		return 0
	}

	from := start
	if from == nil {
		from = earliest
	}
	if from == nil {
		now := biztime.NowUTC()
		from = &now
	}
	to := end
	if to == nil {
		now := biztime.NowUTC()
		to = &now
	}

	days := int64(biztime.StartOfDayUTC(*to).Sub(biztime.StartOfDayUTC(*from)).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return float64(count) / float64(days)
}
