package usecases

import (
	"context"
	"time"

	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
)

type GetChecklistDetailQuery struct {
	ChecklistID uint
}

type AnswerDetail struct {
	AnswerID     uint   `json:"answer_id"`
	QuestionID   uint   `json:"question_id"`
	QuestionText string `json:"question_text"`
	Value        string `json:"value"`
	IsNOK        bool   `json:"is_nok"`
}

type ActionPlanDetail struct {
	ActionPlanID   uint      `json:"action_plan_id"`
	QuestionID     uint      `json:"question_id"`
	NokPointNumber int       `json:"nok_point_number"`
	Actions        string    `json:"actions"`
	Responsables   string    `json:"responsables"`
	CreatedBy      string    `json:"created_by"`
	CreatedDate    time.Time `json:"created_date"`
	DateCloture    time.Time `json:"date_cloture"`
	Status         string    `json:"status"`
}

type ChecklistDetailResult struct {
	ChecklistID                 uint               `json:"checklist_id"`
	UserID                      uint               `json:"user_id"`
	UserName                    string             `json:"user_name"`
	TemplateID                  uint               `json:"template_id"`
	TemplateName                string             `json:"template_name"`
	ProjectID                   *uint              `json:"project_id"`
	ProjectName                 string             `json:"project_name"`
	LineID                      *uint              `json:"line_id"`
	LineName                    string             `json:"line_name"`
	Status                      string             `json:"status"`
	Date                        *time.Time         `json:"date"`
	Shift                       string             `json:"shift"`
	QualityOperatorMatricule    string             `json:"quality_operator_matricule"`
	ProductionOperatorMatricule string             `json:"production_operator_matricule"`
	Answers                     []AnswerDetail     `json:"answers"`
	ActionPlans                 []ActionPlanDetail `json:"action_plans"`
}

// GetChecklistDetailUseCase loads one checklist with its answers,
// action plans and resolved catalog names.
type GetChecklistDetailUseCase struct {
	checklistRepo checklist.Repository
	catalogRepo   catalog.Repository
	logger        logger.Interface
}

func NewGetChecklistDetailUseCase(
	checklistRepo checklist.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *GetChecklistDetailUseCase {
	return &GetChecklistDetailUseCase{
		checklistRepo: checklistRepo,
		catalogRepo:   catalogRepo,
		logger:        logger,
	}
}

func (uc *GetChecklistDetailUseCase) Execute(ctx context.Context, query GetChecklistDetailQuery) (*ChecklistDetailResult, error) {
	if query.ChecklistID == 0 {
		return nil, errors.NewValidationError("checklist ID is required")
	}

	cl, err := uc.checklistRepo.FindByID(ctx, query.ChecklistID)
	if err != nil {
		return nil, errors.NewNotFoundError("checklist not found")
	}

	result := &ChecklistDetailResult{
		ChecklistID:                 cl.ID(),
		UserID:                      cl.UserID(),
		TemplateID:                  cl.TemplateID(),
		ProjectID:                   cl.ProjectID(),
		LineID:                      cl.LineID(),
		Status:                      cl.Status().String(),
		Date:                        cl.Date(),
		Shift:                       cl.Shift(),
		QualityOperatorMatricule:    cl.QualityOperatorMatricule(),
		ProductionOperatorMatricule: cl.ProductionOperatorMatricule(),
	}

	uc.resolveNames(ctx, cl, result)

	questionTexts := make(map[uint]string)
	if questions, err := uc.catalogRepo.QuestionsOfTemplate(ctx, cl.TemplateID()); err != nil {
		uc.logger.Warnw("failed to load template questions", "template_id", cl.TemplateID(), "error", err)
	} else {
		for _, q := range questions {
			questionTexts[q.ID] = q.Text
		}
	}

	for _, a := range cl.Answers() {
		result.Answers = append(result.Answers, AnswerDetail{
			AnswerID:     a.ID(),
			QuestionID:   a.QuestionID(),
			QuestionText: questionTexts[a.QuestionID()],
			Value:        a.Value().String(),
			IsNOK:        a.IsNOK(),
		})
	}

	for _, p := range cl.ActionPlans() {
		result.ActionPlans = append(result.ActionPlans, ActionPlanDetail{
			ActionPlanID:   p.ID(),
			QuestionID:     p.QuestionID(),
			NokPointNumber: p.NokPointNumber(),
			Actions:        p.Actions(),
			Responsables:   p.Responsables(),
			CreatedBy:      p.CreatedBy(),
			CreatedDate:    p.CreatedDate(),
			DateCloture:    p.DateCloture(),
			Status:         p.Status().String(),
		})
	}

	return result, nil
}

// resolveNames fills in catalog names, falling back to "Unknown" when a
// referenced record has gone missing.
func (uc *GetChecklistDetailUseCase) resolveNames(ctx context.Context, cl *checklist.Checklist, result *ChecklistDetailResult) {
	templateNames, err := uc.catalogRepo.TemplateNames(ctx, []uint{cl.TemplateID()})
	if err != nil {
		uc.logger.Warnw("failed to resolve template name", "error", err)
	}
	result.TemplateName = nameOrUnknown(templateNames, cl.TemplateID())

	userNames, err := uc.catalogRepo.UserNames(ctx, []uint{cl.UserID()})
	if err != nil {
		uc.logger.Warnw("failed to resolve user name", "error", err)
	}
	result.UserName = nameOrUnknown(userNames, cl.UserID())

	if cl.ProjectID() != nil {
		projectNames, err := uc.catalogRepo.ProjectNames(ctx, []uint{*cl.ProjectID()})
		if err != nil {
			uc.logger.Warnw("failed to resolve project name", "error", err)
		}
		result.ProjectName = nameOrUnknown(projectNames, *cl.ProjectID())
	}

	if cl.LineID() != nil {
		lineNames, err := uc.catalogRepo.LineNames(ctx, []uint{*cl.LineID()})
		if err != nil {
			uc.logger.Warnw("failed to resolve line name", "error", err)
		}
		result.LineName = nameOrUnknown(lineNames, *cl.LineID())
	}
}

func nameOrUnknown(names map[uint]string, id uint) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}
