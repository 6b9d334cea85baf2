package mappers

import (
	"time"

	"qcheck/internal/domain/checklist"
	vo "qcheck/internal/domain/checklist/valueobjects"
	"qcheck/internal/infrastructure/persistence/models"
)

// ChecklistMapper handles the conversion between checklist domain entities and persistence models.
type ChecklistMapper interface {
	// ToModel converts a checklist domain entity to a persistence model.
	ToModel(c *checklist.Checklist) *models.ChecklistModel

	// ToDomain converts a checklist persistence model to a domain entity.
	ToDomain(model *models.ChecklistModel) (*checklist.Checklist, error)

	// AnswerToModel converts an answer domain entity to a persistence model.
	AnswerToModel(a *checklist.Answer) *models.AnswerModel

	// AnswerToDomain converts an answer persistence model to a domain entity.
	AnswerToDomain(model *models.AnswerModel) (*checklist.Answer, error)

	// ActionPlanToModel converts an action plan domain entity to a persistence model.
	ActionPlanToModel(ap *checklist.ActionPlan) *models.ActionPlanModel

	// ActionPlanToDomain converts an action plan persistence model to a domain entity.
	ActionPlanToDomain(model *models.ActionPlanModel) (*checklist.ActionPlan, error)
}

// ChecklistMapperImpl is the concrete implementation of ChecklistMapper.
type ChecklistMapperImpl struct{}

// NewChecklistMapper creates a new ChecklistMapper.
func NewChecklistMapper() ChecklistMapper {
	return &ChecklistMapperImpl{}
}

// ToModel converts a checklist domain entity to a persistence model.
func (m *ChecklistMapperImpl) ToModel(c *checklist.Checklist) *models.ChecklistModel {
	model := &models.ChecklistModel{
		ID:                          c.ID(),
		UserID:                      c.UserID(),
		ProjectID:                   c.ProjectID(),
		LineID:                      c.LineID(),
		TemplateID:                  c.TemplateID(),
		Status:                      c.Status().String(),
		Shift:                       c.Shift(),
		NotificationStatus:          c.NotificationStatus(),
		QualityOperatorMatricule:    c.QualityOperatorMatricule(),
		ProductionOperatorMatricule: c.ProductionOperatorMatricule(),
		CreatedAt:                   c.CreatedAt().UnixMilli(),
		UpdatedAt:                   c.UpdatedAt().UnixMilli(),
	}

	if c.Date() != nil {
		d := c.Date().UnixMilli()
		model.Date = &d
	}

	return model
}

// ToDomain converts a checklist persistence model to a domain entity.
// Answers and action plans must be loaded separately by the repository.
func (m *ChecklistMapperImpl) ToDomain(model *models.ChecklistModel) (*checklist.Checklist, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var date *time.Time
	if model.Date != nil {
		d := checklistConvertMillisToTime(*model.Date)
		date = &d
	}

	return checklist.ReconstructChecklist(
		model.ID,
		model.UserID,
		model.ProjectID,
		model.LineID,
		model.TemplateID,
		status,
		date,
		model.Shift,
		model.NotificationStatus,
		model.QualityOperatorMatricule,
		model.ProductionOperatorMatricule,
		checklistConvertMillisToTime(model.CreatedAt),
		checklistConvertMillisToTime(model.UpdatedAt),
	)
}

// AnswerToModel converts an answer domain entity to a persistence model.
func (m *ChecklistMapperImpl) AnswerToModel(a *checklist.Answer) *models.AnswerModel {
	return &models.AnswerModel{
		ID:          a.ID(),
		ChecklistID: a.ChecklistID(),
		QuestionID:  a.QuestionID(),
		Value:       a.Value().String(),
	}
}

// AnswerToDomain converts an answer persistence model to a domain entity.
func (m *ChecklistMapperImpl) AnswerToDomain(model *models.AnswerModel) (*checklist.Answer, error) {
	value, err := vo.NewAnswerValue(model.Value)
	if err != nil {
		return nil, err
	}
	return checklist.ReconstructAnswer(model.ID, model.ChecklistID, model.QuestionID, value)
}

// ActionPlanToModel converts an action plan domain entity to a persistence model.
func (m *ChecklistMapperImpl) ActionPlanToModel(ap *checklist.ActionPlan) *models.ActionPlanModel {
	return &models.ActionPlanModel{
		ID:             ap.ID(),
		ChecklistID:    ap.ChecklistID(),
		AnswerID:       ap.AnswerID(),
		QuestionID:     ap.QuestionID(),
		NokPointNumber: ap.NokPointNumber(),
		CreatedDate:    ap.CreatedDate().UnixMilli(),
		CreatedBy:      ap.CreatedBy(),
		Actions:        ap.Actions(),
		Responsables:   ap.Responsables(),
		DateCloture:    ap.DateCloture().UnixMilli(),
		Status:         ap.Status().String(),
	}
}

// ActionPlanToDomain converts an action plan persistence model to a domain entity.
func (m *ChecklistMapperImpl) ActionPlanToDomain(model *models.ActionPlanModel) (*checklist.ActionPlan, error) {
	status, err := vo.NewPlanStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return checklist.ReconstructActionPlan(
		model.ID,
		model.ChecklistID,
		model.AnswerID,
		model.QuestionID,
		model.NokPointNumber,
		checklistConvertMillisToTime(model.CreatedDate),
		model.CreatedBy,
		model.Actions,
		model.Responsables,
		checklistConvertMillisToTime(model.DateCloture),
		status,
	)
}

func checklistConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
