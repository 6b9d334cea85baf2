package usecases

import (
	"context"
	"sort"
	"time"

	"qcheck/internal/application/statistics/dto"
	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
	"qcheck/internal/shared/biztime"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
)

type GetProjectStatisticsQuery struct {
	ProjectID uint
	StartDate *time.Time
	EndDate   *time.Time
}

// GetProjectStatisticsUseCase aggregates one project's quality picture:
// totals, rates, a daily trend and breakdowns by template, line, user
// and shift. The end date is widened to the end of its UTC day so both
// boundary days are inclusive.
type GetProjectStatisticsUseCase struct {
	statsRepo   checklist.StatsRepository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewGetProjectStatisticsUseCase(
	statsRepo checklist.StatsRepository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *GetProjectStatisticsUseCase {
	return &GetProjectStatisticsUseCase{
		statsRepo:   statsRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *GetProjectStatisticsUseCase) Execute(ctx context.Context, query GetProjectStatisticsQuery) (*dto.ProjectStatistics, error) {
	if query.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}
	if query.StartDate != nil && query.EndDate != nil && query.EndDate.Before(*query.StartDate) {
		return nil, errors.NewValidationError("end date must not precede start date")
	}

	project, err := uc.catalogRepo.FindProject(ctx, query.ProjectID)
	if err != nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	filter := checklist.QueryFilter{ProjectID: &query.ProjectID}
	if query.StartDate != nil {
		start := biztime.StartOfDayUTC(*query.StartDate)
		filter.StartDate = &start
	}
	if query.EndDate != nil {
		end := biztime.EndOfDayUTC(*query.EndDate)
		filter.EndDate = &end
	}

	checklists, err := uc.statsRepo.ListWithDetails(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load project checklists", "error", err, "project_id", query.ProjectID)
		return nil, errors.NewInternalError("failed to load project statistics")
	}

	result := &dto.ProjectStatistics{
		ProjectID:   project.ID,
		ProjectName: project.Name,
	}

	uc.aggregateTotals(checklists, result)
	result.Trend = uc.buildTrend(checklists)
	uc.buildBreakdowns(ctx, checklists, result)

	return result, nil
}

func (uc *GetProjectStatisticsUseCase) aggregateTotals(checklists []*checklist.Checklist, result *dto.ProjectStatistics) {
	for _, cl := range checklists {
		result.TotalChecklists++
		if cl.Status() == vo.StatusCompleted {
			result.CompletedChecklists++
		}

		for _, a := range cl.Answers() {
			result.TotalAnswers++
			switch {
			case a.Value().IsOK():
				result.OKAnswers++
			case a.IsNOK():
				result.NokAnswers++
			}
			// Other free-text answers count toward the total only.
		}

		for _, p := range cl.ActionPlans() {
			result.TotalActionPlans++
			if p.Status().IsClosed() {
				result.ClosedActionPlans++
			} else {
				result.OpenActionPlans++
			}
		}
	}

	result.PendingChecklists = result.TotalChecklists - result.CompletedChecklists
	result.CompletionRate = rate(result.CompletedChecklists, result.TotalChecklists)
	result.OKRate = rate(result.OKAnswers, result.TotalAnswers)
	result.NokRate = rate(result.NokAnswers, result.TotalAnswers)
	result.ActionPlanClosureRate = rate(result.ClosedActionPlans, result.TotalActionPlans)
}

func (uc *GetProjectStatisticsUseCase) buildTrend(checklists []*checklist.Checklist) []dto.TrendPoint {
	type dayAgg struct {
		total     int64
		completed int64
		nok       int64
	}

	days := make(map[string]*dayAgg)
	for _, cl := range checklists {
		if cl.Date() == nil {
			continue
		}
		key := biztime.DateKeyUTC(*cl.Date())
		agg := days[key]
		if agg == nil {
			agg = &dayAgg{}
			days[key] = agg
		}
		agg.total++
		if cl.Status() == vo.StatusCompleted {
			agg.completed++
		}
		for _, a := range cl.Answers() {
			if a.IsNOK() {
				agg.nok++
			}
		}
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	trend := make([]dto.TrendPoint, 0, len(keys))
	for _, k := range keys {
		agg := days[k]
		trend = append(trend, dto.TrendPoint{
			Date:                k,
			TotalChecklists:     agg.total,
			CompletedChecklists: agg.completed,
			NokAnswers:          agg.nok,
		})
	}
	return trend
}

func (uc *GetProjectStatisticsUseCase) buildBreakdowns(ctx context.Context, checklists []*checklist.Checklist, result *dto.ProjectStatistics) {
	templateIDs := make([]uint, 0, len(checklists))
	lineIDs := make([]uint, 0, len(checklists))
	userIDs := make([]uint, 0, len(checklists))
	for _, cl := range checklists {
		templateIDs = append(templateIDs, cl.TemplateID())
		if cl.LineID() != nil {
			lineIDs = append(lineIDs, *cl.LineID())
		}
		userIDs = append(userIDs, cl.UserID())
	}

	templateNames, err := uc.catalogRepo.TemplateNames(ctx, templateIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve template names", "error", err)
	}
	lineNames, err := uc.catalogRepo.LineNames(ctx, lineIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve line names", "error", err)
	}
	userNames, err := uc.catalogRepo.UserNames(ctx, userIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve user names", "error", err)
	}

	result.TemplateUsage = buildTemplateUsage(checklists, templateNames)
	result.LinePerformance = buildLinePerformance(checklists, lineNames)
	result.UserProductivity = buildUserProductivity(checklists, userNames)
	result.ShiftDistribution = buildShiftDistribution(checklists)
}

// buildTemplateUsage groups checklists by template name and reports the
// usage count with the NOK rate across the group's answers, most used
// first.
func buildTemplateUsage(checklists []*checklist.Checklist, names map[uint]string) []dto.TemplateUsage {
	type agg struct {
		count int64
		total int64
		nok   int64
	}

	groups := make(map[string]*agg)
	order := make([]string, 0)
	for _, cl := range checklists {
		name := lookupName(names, cl.TemplateID())
		g := groups[name]
		if g == nil {
			g = &agg{}
			groups[name] = g
			order = append(order, name)
		}
		g.count++
		for _, a := range cl.Answers() {
			g.total++
			if a.IsNOK() {
				g.nok++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return groups[order[i]].count > groups[order[j]].count
	})

	result := make([]dto.TemplateUsage, 0, len(order))
	for _, name := range order {
		g := groups[name]
		result = append(result, dto.TemplateUsage{
			TemplateName:   name,
			UsageCount:     g.count,
			AverageNokRate: rate(g.nok, g.total),
		})
	}
	return result
}

// buildLinePerformance groups checklists by line name and reports the
// NOK count and rate, worst line first. Checklists without a line are
// skipped.
func buildLinePerformance(checklists []*checklist.Checklist, names map[uint]string) []dto.LinePerformance {
	type agg struct {
		count int64
		total int64
		nok   int64
	}

	groups := make(map[string]*agg)
	order := make([]string, 0)
	for _, cl := range checklists {
		if cl.LineID() == nil {
			continue
		}
		name := lookupName(names, *cl.LineID())
		g := groups[name]
		if g == nil {
			g = &agg{}
			groups[name] = g
			order = append(order, name)
		}
		g.count++
		for _, a := range cl.Answers() {
			g.total++
			if a.IsNOK() {
				g.nok++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return groups[order[i]].nok > groups[order[j]].nok
	})

	result := make([]dto.LinePerformance, 0, len(order))
	for _, name := range order {
		g := groups[name]
		result = append(result, dto.LinePerformance{
			LineName:        name,
			TotalChecklists: g.count,
			NokAnswers:      g.nok,
			NokRate:         rate(g.nok, g.total),
		})
	}
	return result
}

// buildUserProductivity groups checklists by the inspector's name and
// reports completed checklists and action plans created, most
// productive first.
func buildUserProductivity(checklists []*checklist.Checklist, names map[uint]string) []dto.UserProductivity {
	type agg struct {
		completed int64
		plans     int64
	}

	groups := make(map[string]*agg)
	order := make([]string, 0)
	for _, cl := range checklists {
		name := lookupName(names, cl.UserID())
		g := groups[name]
		if g == nil {
			g = &agg{}
			groups[name] = g
			order = append(order, name)
		}
		if cl.Status() == vo.StatusCompleted {
			g.completed++
		}
		g.plans += int64(len(cl.ActionPlans()))
	}

	sort.SliceStable(order, func(i, j int) bool {
		return groups[order[i]].completed > groups[order[j]].completed
	})

	result := make([]dto.UserProductivity, 0, len(order))
	for _, name := range order {
		g := groups[name]
		result = append(result, dto.UserProductivity{
			UserName:            name,
			CompletedChecklists: g.completed,
			ActionPlansCreated:  g.plans,
		})
	}
	return result
}

// buildShiftDistribution groups checklists by their shift label,
// skipping checklists without one.
func buildShiftDistribution(checklists []*checklist.Checklist) []dto.ShiftDistribution {
	type agg struct {
		count int64
		total int64
		nok   int64
	}

	groups := make(map[string]*agg)
	order := make([]string, 0)
	for _, cl := range checklists {
		if cl.Shift() == "" {
			continue
		}
		g := groups[cl.Shift()]
		if g == nil {
			g = &agg{}
			groups[cl.Shift()] = g
			order = append(order, cl.Shift())
		}
		g.count++
		for _, a := range cl.Answers() {
			g.total++
			if a.IsNOK() {
				g.nok++
			}
		}
	}

	result := make([]dto.ShiftDistribution, 0, len(order))
	for _, shift := range order {
		g := groups[shift]
		result = append(result, dto.ShiftDistribution{
			Shift:           shift,
			TotalChecklists: g.count,
			NokRate:         rate(g.nok, g.total),
		})
	}
	return result
}

func lookupName(names map[uint]string, id uint) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}

// rate is a guarded percentage: zero denominator yields zero.
func rate(numerator, denominator int64) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}
