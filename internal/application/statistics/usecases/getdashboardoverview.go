package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"qcheck/internal/application/statistics/dto"
	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	"qcheck/internal/shared/biztime"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
)

const (
	topProjectsLimit      = 5
	recentChecklistsLimit = 10
)

// GetDashboardOverviewUseCase builds the landing page snapshot: global
// counts, the overall quality rate, the busiest projects and the most
// recently completed checklists. The counts are fanned out
// concurrently; each read is independent.
type GetDashboardOverviewUseCase struct {
	statsRepo   checklist.StatsRepository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewGetDashboardOverviewUseCase(
	statsRepo checklist.StatsRepository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *GetDashboardOverviewUseCase {
	return &GetDashboardOverviewUseCase{
		statsRepo:   statsRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *GetDashboardOverviewUseCase) Execute(ctx context.Context) (*dto.DashboardOverview, error) {
	uc.logger.Debugw("fetching dashboard overview")

	var (
		totalChecklists int64
		todayChecklists int64
		totalProjects   int64
		totalUsers      int64
		totalTemplates  int64
		openPlans       int64
		tally           checklist.AnswerTally
		topCounts       []checklist.ProjectChecklistCount
		recent          []*checklist.Checklist
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := uc.statsRepo.CountChecklists(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count checklists")
		}
		totalChecklists = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.statsRepo.CountChecklistsOnDay(gctx, biztime.NowUTC())
		if err != nil {
			return errors.NewInternalError("failed to count today's checklists")
		}
		todayChecklists = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.catalogRepo.CountProjects(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count projects")
		}
		totalProjects = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.catalogRepo.CountUsers(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count users")
		}
		totalUsers = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.catalogRepo.CountTemplates(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count templates")
		}
		totalTemplates = count
		return nil
	})

	g.Go(func() error {
		count, err := uc.statsRepo.CountOpenActionPlans(gctx)
		if err != nil {
			return errors.NewInternalError("failed to count open action plans")
		}
		openPlans = count
		return nil
	})

	g.Go(func() error {
		t, err := uc.statsRepo.TallyAnswers(gctx)
		if err != nil {
			return errors.NewInternalError("failed to tally answers")
		}
		tally = t
		return nil
	})

	g.Go(func() error {
		counts, err := uc.statsRepo.TopProjectsByChecklistCount(gctx, topProjectsLimit)
		if err != nil {
			return errors.NewInternalError("failed to rank projects")
		}
		topCounts = counts
		return nil
	})

	g.Go(func() error {
		list, err := uc.statsRepo.RecentCompleted(gctx, recentChecklistsLimit)
		if err != nil {
			return errors.NewInternalError("failed to load recent checklists")
		}
		recent = list
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("dashboard overview failed", "error", err)
		return nil, err
	}

	overview := &dto.DashboardOverview{
		TotalChecklists:    totalChecklists,
		ChecklistsToday:    todayChecklists,
		TotalProjects:      totalProjects,
		TotalUsers:         totalUsers,
		TotalTemplates:     totalTemplates,
		OpenActionPlans:    openPlans,
		OverallQualityRate: rate(tally.OK, tally.Total),
	}

	topProjects, err := uc.buildTopProjects(ctx, topCounts)
	if err != nil {
		return nil, err
	}
	overview.TopProjects = topProjects

	overview.RecentChecklists = uc.buildRecent(ctx, recent)

	return overview, nil
}

// buildTopProjects pairs each busy project with its own quality rate.
// The rate is computed over the project's full history, independent of
// the checklist ranking.
func (uc *GetDashboardOverviewUseCase) buildTopProjects(ctx context.Context, counts []checklist.ProjectChecklistCount) ([]dto.ProjectHighlight, error) {
	ids := make([]uint, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.ProjectID)
	}

	names, err := uc.catalogRepo.ProjectNames(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve project names", "error", err)
	}

	highlights := make([]dto.ProjectHighlight, 0, len(counts))
	for _, c := range counts {
		tally, err := uc.statsRepo.TallyAnswersByProject(ctx, c.ProjectID)
		if err != nil {
			uc.logger.Errorw("failed to tally project answers", "error", err, "project_id", c.ProjectID)
			return nil, errors.NewInternalError("failed to tally project answers")
		}

		highlights = append(highlights, dto.ProjectHighlight{
			ProjectID:      c.ProjectID,
			ProjectName:    lookupName(names, c.ProjectID),
			ChecklistCount: c.ChecklistCount,
			QualityRate:    rate(tally.OK, tally.Total),
		})
	}
	return highlights, nil
}

func (uc *GetDashboardOverviewUseCase) buildRecent(ctx context.Context, recent []*checklist.Checklist) []dto.RecentChecklist {
	templateIDs := make([]uint, 0, len(recent))
	projectIDs := make([]uint, 0, len(recent))
	userIDs := make([]uint, 0, len(recent))
	for _, cl := range recent {
		templateIDs = append(templateIDs, cl.TemplateID())
		if cl.ProjectID() != nil {
			projectIDs = append(projectIDs, *cl.ProjectID())
		}
		userIDs = append(userIDs, cl.UserID())
	}

	templateNames, err := uc.catalogRepo.TemplateNames(ctx, templateIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve template names", "error", err)
	}
	projectNames, err := uc.catalogRepo.ProjectNames(ctx, projectIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve project names", "error", err)
	}
	userNames, err := uc.catalogRepo.UserNames(ctx, userIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve user names", "error", err)
	}

	result := make([]dto.RecentChecklist, 0, len(recent))
	for _, cl := range recent {
		entry := dto.RecentChecklist{
			ChecklistID:  cl.ID(),
			TemplateName: lookupName(templateNames, cl.TemplateID()),
			UserName:     lookupName(userNames, cl.UserID()),
			Date:         cl.Date(),
		}
		if cl.ProjectID() != nil {
			entry.ProjectName = lookupName(projectNames, *cl.ProjectID())
		} else {
			entry.ProjectName = "Unknown"
		}
		for _, a := range cl.Answers() {
			if a.IsNOK() {
				entry.NokAnswers++
			}
		}
		result = append(result, entry)
	}
	return result
}
