package usecases

import (
	"context"
	"time"

	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
	"qcheck/internal/shared/query"
)

type ListUserChecklistsQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type ChecklistSummary struct {
	ChecklistID  uint       `json:"checklist_id"`
	TemplateID   uint       `json:"template_id"`
	TemplateName string     `json:"template_name"`
	ProjectName  string     `json:"project_name"`
	LineName     string     `json:"line_name"`
	Status       string     `json:"status"`
	Date         *time.Time `json:"date"`
	Shift        string     `json:"shift"`
	NokCount     int        `json:"nok_count"`
	OpenPlans    int        `json:"open_plans"`
}

type ListUserChecklistsResult struct {
	Checklists []ChecklistSummary `json:"checklists"`
	Total      int                `json:"total"`
}

// ListUserChecklistsUseCase returns a user's checklists, newest first.
type ListUserChecklistsUseCase struct {
	checklistRepo checklist.Repository
	catalogRepo   catalog.Repository
	logger        logger.Interface
}

func NewListUserChecklistsUseCase(
	checklistRepo checklist.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *ListUserChecklistsUseCase {
	return &ListUserChecklistsUseCase{
		checklistRepo: checklistRepo,
		catalogRepo:   catalogRepo,
		logger:        logger,
	}
}

func (uc *ListUserChecklistsUseCase) Execute(ctx context.Context, q ListUserChecklistsQuery) (*ListUserChecklistsResult, error) {
	if q.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	page := query.PageFilter{Page: q.Page, PageSize: q.PageSize}
	checklists, err := uc.checklistRepo.ListByUser(ctx, q.UserID, page)
	if err != nil {
		uc.logger.Errorw("failed to list checklists", "error", err, "user_id", q.UserID)
		return nil, errors.NewInternalError("failed to list checklists")
	}

	templateIDs := make([]uint, 0, len(checklists))
	projectIDs := make([]uint, 0, len(checklists))
	lineIDs := make([]uint, 0, len(checklists))
	for _, cl := range checklists {
		templateIDs = append(templateIDs, cl.TemplateID())
		if cl.ProjectID() != nil {
			projectIDs = append(projectIDs, *cl.ProjectID())
		}
		if cl.LineID() != nil {
			lineIDs = append(lineIDs, *cl.LineID())
		}
	}

	templateNames, err := uc.catalogRepo.TemplateNames(ctx, templateIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve template names", "error", err)
	}
	projectNames, err := uc.catalogRepo.ProjectNames(ctx, projectIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve project names", "error", err)
	}
	lineNames, err := uc.catalogRepo.LineNames(ctx, lineIDs)
	if err != nil {
		uc.logger.Warnw("failed to resolve line names", "error", err)
	}

	summaries := make([]ChecklistSummary, 0, len(checklists))
	for _, cl := range checklists {
		summary := ChecklistSummary{
			ChecklistID:  cl.ID(),
			TemplateID:   cl.TemplateID(),
			TemplateName: nameOrUnknown(templateNames, cl.TemplateID()),
			Status:       cl.Status().String(),
			Date:         cl.Date(),
			Shift:        cl.Shift(),
		}
		if cl.ProjectID() != nil {
			summary.ProjectName = nameOrUnknown(projectNames, *cl.ProjectID())
		}
		if cl.LineID() != nil {
			summary.LineName = nameOrUnknown(lineNames, *cl.LineID())
		}
		for _, a := range cl.Answers() {
			if a.IsNOK() {
				summary.NokCount++
			}
		}
		for _, p := range cl.ActionPlans() {
			if !p.Status().IsClosed() {
				summary.OpenPlans++
			}
		}
		summaries = append(summaries, summary)
	}

	return &ListUserChecklistsResult{
		Checklists: summaries,
		Total:      len(summaries),
	}, nil
}
