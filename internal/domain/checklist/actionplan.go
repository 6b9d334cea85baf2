package checklist

import (
	"fmt"
	"time"

	vo "qcheck/internal/domain/checklist/valueobjects"
)

// ActionPlan is a corrective action record tied 1:1 to one NOK answer.
// nokPointNumber is the question's 1-based rank within its template's
// ordered question list, not the count of NOK answers.
type ActionPlan struct {
	id          uint
	checklistID uint
	answerID    uint
	questionID  uint

	nokPointNumber int
	createdDate    time.Time
	createdBy      string

	actions      string
	responsables string
	dateCloture  time.Time

	status vo.PlanStatus
}

// NewActionPlan creates an Open action plan for one NOK answer.
func NewActionPlan(
	checklistID, answerID, questionID uint,
	nokPointNumber int,
	createdBy string,
	actions, responsables string,
	dateCloture time.Time,
	now time.Time,
) (*ActionPlan, error) {
	if checklistID == 0 {
		return nil, fmt.Errorf("checklist ID is required")
	}
	if answerID == 0 {
		return nil, fmt.Errorf("answer ID is required")
	}
	if questionID == 0 {
		return nil, fmt.Errorf("question ID is required")
	}
	if nokPointNumber < 1 {
		return nil, fmt.Errorf("nok point number must be 1-based, got %d", nokPointNumber)
	}
	if createdBy == "" {
		return nil, fmt.Errorf("created by is required")
	}
	if len(actions) < 5 {
		return nil, fmt.Errorf("actions must be at least 5 characters")
	}
	if len(responsables) < 2 {
		return nil, fmt.Errorf("responsables must be at least 2 characters")
	}
	if dateCloture.IsZero() {
		return nil, fmt.Errorf("closure date is required")
	}

	return &ActionPlan{
		checklistID:    checklistID,
		answerID:       answerID,
		questionID:     questionID,
		nokPointNumber: nokPointNumber,
		createdDate:    now.UTC(),
		createdBy:      createdBy,
		actions:        actions,
		responsables:   responsables,
		dateCloture:    dateCloture,
		status:         vo.PlanStatusOpen,
	}, nil
}

// ReconstructActionPlan rebuilds an action plan from persisted state.
func ReconstructActionPlan(
	id, checklistID, answerID, questionID uint,
	nokPointNumber int,
	createdDate time.Time,
	createdBy string,
	actions, responsables string,
	dateCloture time.Time,
	status vo.PlanStatus,
) (*ActionPlan, error) {
	if id == 0 {
		return nil, fmt.Errorf("action plan ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid action plan status")
	}

	return &ActionPlan{
		id:             id,
		checklistID:    checklistID,
		answerID:       answerID,
		questionID:     questionID,
		nokPointNumber: nokPointNumber,
		createdDate:    createdDate,
		createdBy:      createdBy,
		actions:        actions,
		responsables:   responsables,
		dateCloture:    dateCloture,
		status:         status,
	}, nil
}

func (ap *ActionPlan) ID() uint {
	return ap.id
}

func (ap *ActionPlan) ChecklistID() uint {
	return ap.checklistID
}

func (ap *ActionPlan) AnswerID() uint {
	return ap.answerID
}

func (ap *ActionPlan) QuestionID() uint {
	return ap.questionID
}

func (ap *ActionPlan) NokPointNumber() int {
	return ap.nokPointNumber
}

func (ap *ActionPlan) CreatedDate() time.Time {
	return ap.createdDate
}

func (ap *ActionPlan) CreatedBy() string {
	return ap.createdBy
}

func (ap *ActionPlan) Actions() string {
	return ap.actions
}

func (ap *ActionPlan) Responsables() string {
	return ap.responsables
}

func (ap *ActionPlan) DateCloture() time.Time {
	return ap.dateCloture
}

func (ap *ActionPlan) Status() vo.PlanStatus {
	return ap.status
}

func (ap *ActionPlan) SetID(id uint) error {
	if ap.id != 0 {
		return fmt.Errorf("action plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("action plan ID cannot be zero")
	}
	ap.id = id
	return nil
}

// ChangeStatus applies a status transition per the plan lifecycle
// rules (open -> in_progress -> closed, or open -> closed).
func (ap *ActionPlan) ChangeStatus(newStatus vo.PlanStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid action plan status: %s", newStatus)
	}
	if ap.status == newStatus {
		return nil
	}
	if !ap.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition action plan from %s to %s", ap.status, newStatus)
	}
	ap.status = newStatus
	return nil
}
