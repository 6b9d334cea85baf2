package usecases

import (
	"context"

	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
)

type UpdateActionPlanStatusCommand struct {
	ActionPlanID uint
	Status       string
}

type UpdateActionPlanStatusResult struct {
	ActionPlanID uint   `json:"action_plan_id"`
	Status       string `json:"status"`
}

// UpdateActionPlanStatusUseCase moves an action plan through its
// lifecycle. Closed plans are final.
type UpdateActionPlanStatusUseCase struct {
	checklistRepo checklist.Repository
	logger        logger.Interface
}

func NewUpdateActionPlanStatusUseCase(
	checklistRepo checklist.Repository,
	logger logger.Interface,
) *UpdateActionPlanStatusUseCase {
	return &UpdateActionPlanStatusUseCase{
		checklistRepo: checklistRepo,
		logger:        logger,
	}
}

func (uc *UpdateActionPlanStatusUseCase) Execute(ctx context.Context, cmd UpdateActionPlanStatusCommand) (*UpdateActionPlanStatusResult, error) {
	if cmd.ActionPlanID == 0 {
		return nil, errors.NewValidationError("action plan ID is required")
	}

	status, err := vo.NewPlanStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	plan, err := uc.checklistRepo.FindActionPlanByID(ctx, cmd.ActionPlanID)
	if err != nil {
		return nil, errors.NewNotFoundError("action plan not found")
	}

	if err := plan.ChangeStatus(status); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.checklistRepo.UpdateActionPlan(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update action plan", "error", err, "action_plan_id", cmd.ActionPlanID)
		return nil, errors.NewInternalError("failed to update action plan")
	}

	uc.logger.Infow("action plan status updated",
		"action_plan_id", plan.ID(), "status", plan.Status().String())

	return &UpdateActionPlanStatusResult{
		ActionPlanID: plan.ID(),
		Status:       plan.Status().String(),
	}, nil
}
