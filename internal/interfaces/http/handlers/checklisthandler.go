package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"qcheck/internal/application/checklist/usecases"
	"qcheck/internal/shared/logger"
	"qcheck/internal/shared/utils"
)

type ChecklistHandler struct {
	startChecklistUC   usecases.StartChecklistExecutor
	submitChecklistUC  usecases.SubmitChecklistExecutor
	getDetailUC        usecases.GetChecklistDetailExecutor
	listUserUC         usecases.ListUserChecklistsExecutor
	updatePlanStatusUC usecases.UpdateActionPlanStatusExecutor
	logger             logger.Interface
}

func NewChecklistHandler(
	startChecklistUC usecases.StartChecklistExecutor,
	submitChecklistUC usecases.SubmitChecklistExecutor,
	getDetailUC usecases.GetChecklistDetailExecutor,
	listUserUC usecases.ListUserChecklistsExecutor,
	updatePlanStatusUC usecases.UpdateActionPlanStatusExecutor,
	logger logger.Interface,
) *ChecklistHandler {
	return &ChecklistHandler{
		startChecklistUC:   startChecklistUC,
		submitChecklistUC:  submitChecklistUC,
		getDetailUC:        getDetailUC,
		listUserUC:         listUserUC,
		updatePlanStatusUC: updatePlanStatusUC,
		logger:             logger,
	}
}

type StartChecklistRequest struct {
	TemplateID uint       `json:"template_id" binding:"required"`
	ProjectID  *uint      `json:"project_id"`
	LineID     *uint      `json:"line_id"`
	Date       *time.Time `json:"date"`
	Shift      string     `json:"shift"`
}

type AnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

type ActionPlanRequest struct {
	QuestionID   uint      `json:"question_id" binding:"required"`
	Actions      string    `json:"actions" binding:"required"`
	Responsables string    `json:"responsables" binding:"required"`
	DateCloture  time.Time `json:"date_cloture" binding:"required"`
}

type SubmitChecklistRequest struct {
	ChecklistID         uint                `json:"checklist_id" binding:"required"`
	QualityMatricule    string              `json:"quality_matricule" binding:"required"`
	ProductionMatricule string              `json:"production_matricule" binding:"required"`
	Answers             []AnswerRequest     `json:"answers" binding:"required,min=1,dive"`
	ActionPlans         []ActionPlanRequest `json:"action_plans" binding:"dive"`
}

type UpdateActionPlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress closed"`
}

func (h *ChecklistHandler) StartChecklist(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req StartChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for start checklist", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.StartChecklistCommand{
		UserID:     userID,
		TemplateID: req.TemplateID,
		ProjectID:  req.ProjectID,
		LineID:     req.LineID,
		Date:       req.Date,
		Shift:      req.Shift,
	}

	result, err := h.startChecklistUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Checklist started successfully")
}

func (h *ChecklistHandler) SubmitChecklist(c *gin.Context) {
	username, err := currentUsername(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit checklist", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.SubmitChecklistCommand{
		ChecklistID:         req.ChecklistID,
		Username:            username,
		QualityMatricule:    req.QualityMatricule,
		ProductionMatricule: req.ProductionMatricule,
		Answers:             make([]usecases.AnswerInput, 0, len(req.Answers)),
		ActionPlans:         make([]usecases.ActionPlanInput, 0, len(req.ActionPlans)),
	}
	for _, a := range req.Answers {
		cmd.Answers = append(cmd.Answers, usecases.AnswerInput{
			QuestionID: a.QuestionID,
			Value:      a.Value,
		})
	}
	for _, p := range req.ActionPlans {
		cmd.ActionPlans = append(cmd.ActionPlans, usecases.ActionPlanInput{
			QuestionID:   p.QuestionID,
			Actions:      p.Actions,
			Responsables: p.Responsables,
			DateCloture:  p.DateCloture,
		})
	}

	result, err := h.submitChecklistUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Checklist submitted successfully", result)
}

func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	checklistID, err := utils.ParseIDParam(c, "id", "checklist")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDetailUC.Execute(c.Request.Context(), usecases.GetChecklistDetailQuery{
		ChecklistID: checklistID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ChecklistHandler) GetMyChecklists(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listUserUC.Execute(c.Request.Context(), usecases.ListUserChecklistsQuery{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ChecklistHandler) UpdateActionPlanStatus(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id", "action plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateActionPlanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for action plan status update",
			"action_plan_id", planID,
			"error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updatePlanStatusUC.Execute(c.Request.Context(), usecases.UpdateActionPlanStatusCommand{
		ActionPlanID: planID,
		Status:       req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Action plan status updated successfully", result)
}
