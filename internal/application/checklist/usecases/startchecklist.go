package usecases

import (
	"context"
	"time"

	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	"qcheck/internal/shared/config"
	"qcheck/internal/shared/errors"
	"qcheck/internal/shared/logger"
)

type StartChecklistCommand struct {
	UserID     uint
	TemplateID uint
	ProjectID  *uint
	LineID     *uint
	Date       *time.Time
	Shift      string
}

type StartChecklistResult struct {
	ChecklistID uint       `json:"checklist_id"`
	Status      string     `json:"status"`
	Date        *time.Time `json:"date"`
}

// StartChecklistUseCase opens a pending checklist for a user against a
// template, optionally pinned to a project and production line.
type StartChecklistUseCase struct {
	checklistRepo checklist.Repository
	catalogRepo   catalog.Repository
	policy        config.ChecklistConfig
	logger        logger.Interface
}

func NewStartChecklistUseCase(
	checklistRepo checklist.Repository,
	catalogRepo catalog.Repository,
	policy config.ChecklistConfig,
	logger logger.Interface,
) *StartChecklistUseCase {
	return &StartChecklistUseCase{
		checklistRepo: checklistRepo,
		catalogRepo:   catalogRepo,
		policy:        policy,
		logger:        logger,
	}
}

func (uc *StartChecklistUseCase) Execute(ctx context.Context, cmd StartChecklistCommand) (*StartChecklistResult, error) {
	uc.logger.Infow("executing start checklist use case",
		"user_id", cmd.UserID, "template_id", cmd.TemplateID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid start checklist command", "error", err)
		return nil, err
	}

	exists, err := uc.catalogRepo.TemplateExists(ctx, cmd.TemplateID)
	if err != nil {
		uc.logger.Errorw("failed to check template", "error", err)
		return nil, errors.NewInternalError("failed to verify template")
	}
	if !exists {
		return nil, errors.NewValidationError("template not found")
	}

	if cmd.ProjectID != nil {
		exists, err := uc.catalogRepo.ProjectExists(ctx, *cmd.ProjectID)
		if err != nil {
			uc.logger.Errorw("failed to check project", "error", err)
			return nil, errors.NewInternalError("failed to verify project")
		}
		if !exists {
			return nil, errors.NewValidationError("project not found")
		}
	}

	if cmd.LineID != nil {
		exists, err := uc.catalogRepo.LineExists(ctx, *cmd.LineID)
		if err != nil {
			uc.logger.Errorw("failed to check line", "error", err)
			return nil, errors.NewInternalError("failed to verify line")
		}
		if !exists {
			return nil, errors.NewValidationError("line not found")
		}
	}

	newChecklist, err := checklist.NewChecklist(cmd.UserID, cmd.TemplateID, cmd.ProjectID, cmd.LineID, cmd.Date, cmd.Shift)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.checklistRepo.Save(ctx, newChecklist); err != nil {
		uc.logger.Errorw("failed to save checklist", "error", err)
		return nil, errors.NewInternalError("failed to save checklist")
	}

	uc.logger.Infow("checklist started", "checklist_id", newChecklist.ID())

	return &StartChecklistResult{
		ChecklistID: newChecklist.ID(),
		Status:      newChecklist.Status().String(),
		Date:        newChecklist.Date(),
	}, nil
}

func (uc *StartChecklistUseCase) validateCommand(cmd StartChecklistCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.TemplateID == 0 {
		return errors.NewValidationError("template ID is required")
	}
	if uc.policy.RequireProjectLine {
		if cmd.ProjectID == nil {
			return errors.NewValidationError("project ID is required")
		}
		if cmd.LineID == nil {
			return errors.NewValidationError("line ID is required")
		}
	}
	return nil
}
