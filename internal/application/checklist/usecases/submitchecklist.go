package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
	"qcheck/internal/shared/biztime"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
)

// TransactionRunner is the slice of db.TransactionManager the
// submission workflow needs.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AnswerInput struct {
	QuestionID uint
	Value      string
}

type ActionPlanInput struct {
	QuestionID   uint
	Actions      string
	Responsables string
	DateCloture  time.Time
}

type SubmitChecklistCommand struct {
	ChecklistID         uint
	Username            string
	QualityMatricule    string
	ProductionMatricule string
	Answers             []AnswerInput
	ActionPlans         []ActionPlanInput
}

type SubmitChecklistResult struct {
	ChecklistID        uint   `json:"checklist_id"`
	Status             string `json:"status"`
	NokCount           int    `json:"nok_count"`
	ActionPlansCreated int    `json:"action_plans_created"`
}

// SubmitChecklistUseCase completes a checklist in a single transaction:
// it records the answers, requires exactly one action plan per NOK
// answer, and stamps the operator matricules. A checklist can only be
// submitted once.
type SubmitChecklistUseCase struct {
	checklistRepo checklist.Repository
	catalogRepo   catalog.Repository
	txManager     TransactionRunner
	logger        logger.Interface
}

func NewSubmitChecklistUseCase(
	checklistRepo checklist.Repository,
	catalogRepo catalog.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *SubmitChecklistUseCase {
	return &SubmitChecklistUseCase{
		checklistRepo: checklistRepo,
		catalogRepo:   catalogRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *SubmitChecklistUseCase) Execute(ctx context.Context, cmd SubmitChecklistCommand) (*SubmitChecklistResult, error) {
	uc.logger.Infow("executing submit checklist use case",
		"checklist_id", cmd.ChecklistID, "answers", len(cmd.Answers), "action_plans", len(cmd.ActionPlans))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid submit checklist command", "error", err)
		return nil, err
	}

	qualityMatricule, err := vo.NewMatricule(cmd.QualityMatricule)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("quality operator matricule: %s", err.Error()))
	}
	productionMatricule, err := vo.NewMatricule(cmd.ProductionMatricule)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("production operator matricule: %s", err.Error()))
	}

	var result *SubmitChecklistResult

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// The locking load serializes concurrent submitters on the
		// checklist row; the one that waited sees Completed here.
		cl, err := uc.checklistRepo.FindByIDForUpdate(txCtx, cmd.ChecklistID)
		if err != nil {
			return errors.NewNotFoundError("checklist not found")
		}

		if cl.Status() == vo.StatusCompleted {
			return errors.NewConflictError("checklist is already completed")
		}

		questions, err := uc.catalogRepo.QuestionsOfTemplate(txCtx, cl.TemplateID())
		if err != nil {
			uc.logger.Errorw("failed to load template questions", "error", err)
			return errors.NewInternalError("failed to load template questions")
		}

		// NOK point numbers come from the question's 1-based position
		// within the template, ordered by question ID.
		rankByQuestion := make(map[uint]int, len(questions))
		for i, q := range questions {
			rankByQuestion[q.ID] = i + 1
		}

		answers := make([]*checklist.Answer, 0, len(cmd.Answers))
		nokByQuestion := make(map[uint]bool)
		for _, in := range cmd.Answers {
			if _, ok := rankByQuestion[in.QuestionID]; !ok {
				return errors.NewValidationError(fmt.Sprintf("question %d does not belong to the checklist template", in.QuestionID))
			}

			value, err := vo.NewAnswerValue(in.Value)
			if err != nil {
				return errors.NewValidationError(fmt.Sprintf("question %d: %s", in.QuestionID, err.Error()))
			}

			answer, err := checklist.NewAnswer(cl.ID(), in.QuestionID, value)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			answers = append(answers, answer)

			if answer.IsNOK() {
				nokByQuestion[in.QuestionID] = true
			}
		}

		if err := uc.reconcilePlans(nokByQuestion, cmd.ActionPlans); err != nil {
			return err
		}

		if err := cl.Complete(qualityMatricule, productionMatricule, biztime.NowUTC()); err != nil {
			return errors.NewConflictError(err.Error())
		}

		if err := uc.checklistRepo.SaveAnswers(txCtx, answers); err != nil {
			uc.logger.Errorw("failed to save answers", "error", err)
			return errors.NewInternalError("failed to save answers")
		}

		answerByQuestion := make(map[uint]*checklist.Answer, len(answers))
		for _, a := range answers {
			answerByQuestion[a.QuestionID()] = a
		}

		plans := make([]*checklist.ActionPlan, 0, len(cmd.ActionPlans))
		for _, in := range cmd.ActionPlans {
			answer := answerByQuestion[in.QuestionID]
			rank, ok := rankByQuestion[in.QuestionID]
			if answer == nil || !ok {
				// Reconciliation already matched the sets, so this only
				// happens on template edits racing the submission.
				uc.logger.Warnw("skipping unresolvable action plan entry",
					"checklist_id", cl.ID(), "question_id", in.QuestionID)
				continue
			}

			plan, err := checklist.NewActionPlan(
				cl.ID(), answer.ID(), in.QuestionID, rank,
				cmd.Username, in.Actions, in.Responsables, in.DateCloture,
				biztime.NowUTC(),
			)
			if err != nil {
				return errors.NewValidationError(fmt.Sprintf("action plan for question %d: %s", in.QuestionID, err.Error()))
			}
			plans = append(plans, plan)
		}

		if err := uc.checklistRepo.SaveActionPlans(txCtx, plans); err != nil {
			uc.logger.Errorw("failed to save action plans", "error", err)
			return errors.NewInternalError("failed to save action plans")
		}

		if err := uc.checklistRepo.Update(txCtx, cl); err != nil {
			uc.logger.Errorw("failed to update checklist", "error", err)
			return errors.NewInternalError("failed to update checklist")
		}

		result = &SubmitChecklistResult{
			ChecklistID:        cl.ID(),
			Status:             cl.Status().String(),
			NokCount:           len(nokByQuestion),
			ActionPlansCreated: len(plans),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("checklist submitted",
		"checklist_id", result.ChecklistID, "nok_count", result.NokCount, "action_plans_created", result.ActionPlansCreated)

	return result, nil
}

// reconcilePlans enforces one action plan per NOK answer, no more and
// no fewer, and names the mismatched questions in the error.
func (uc *SubmitChecklistUseCase) reconcilePlans(nokByQuestion map[uint]bool, plans []ActionPlanInput) error {
	planByQuestion := make(map[uint]bool, len(plans))
	for _, p := range plans {
		if planByQuestion[p.QuestionID] {
			return errors.NewValidationError(fmt.Sprintf("duplicate action plan for question %d", p.QuestionID))
		}
		planByQuestion[p.QuestionID] = true
	}

	var missing, extra []uint
	for q := range nokByQuestion {
		if !planByQuestion[q] {
			missing = append(missing, q)
		}
	}
	for q := range planByQuestion {
		if !nokByQuestion[q] {
			extra = append(extra, q)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("NOK questions without an action plan: %s", formatIDs(missing)))
	}
	if len(extra) > 0 {
		parts = append(parts, fmt.Sprintf("action plans for non-NOK questions: %s", formatIDs(extra)))
	}
	return errors.NewValidationError(strings.Join(parts, "; "))
}

func (uc *SubmitChecklistUseCase) validateCommand(cmd SubmitChecklistCommand) error {
	if cmd.Username == "" {
		return errors.NewUnauthorizedError("username claim is required")
	}
	if cmd.ChecklistID == 0 {
		return errors.NewValidationError("checklist ID is required")
	}
	if len(cmd.Answers) == 0 {
		return errors.NewValidationError("at least one answer is required")
	}

	seen := make(map[uint]bool, len(cmd.Answers))
	for _, a := range cmd.Answers {
		if a.QuestionID == 0 {
			return errors.NewValidationError("answer question ID is required")
		}
		if seen[a.QuestionID] {
			return errors.NewValidationError(fmt.Sprintf("duplicate answer for question %d", a.QuestionID))
		}
		seen[a.QuestionID] = true
	}

	return nil
}

func formatIDs(ids []uint) string {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}
