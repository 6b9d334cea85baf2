package checklist

import (
	"fmt"
	"time"

	vo "qcheck/internal/domain/checklist/valueobjects"
)

// Checklist is one instance of an operator working through a template's
// questions for a line/project/shift. It owns its answers and action
// plans; both are created in bulk by the submission workflow and are
// immutable afterwards (plan status transitions excepted).
type Checklist struct {
	id                 uint
	userID             uint
	projectID          *uint
	lineID             *uint
	templateID         uint
	status             vo.Status
	date               *time.Time
	shift              string
	notificationStatus string

	qualityOperatorMatricule    string
	productionOperatorMatricule string

	createdAt time.Time
	updatedAt time.Time

	answers     []*Answer
	actionPlans []*ActionPlan
}

// NewChecklist starts a pending checklist. Project and line references
// are optional; when omitted the checklist exists unattached. The date
// defaults to now when not supplied.
func NewChecklist(userID, templateID uint, projectID, lineID *uint, date *time.Time, shift string) (*Checklist, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if templateID == 0 {
		return nil, fmt.Errorf("template ID is required")
	}
	if projectID != nil && *projectID == 0 {
		return nil, fmt.Errorf("project ID cannot be zero when provided")
	}
	if lineID != nil && *lineID == 0 {
		return nil, fmt.Errorf("line ID cannot be zero when provided")
	}

	now := time.Now().UTC()
	if date == nil {
		date = &now
	}

	return &Checklist{
		userID:             userID,
		projectID:          projectID,
		lineID:             lineID,
		templateID:         templateID,
		status:             vo.StatusPending,
		date:               date,
		shift:              shift,
		notificationStatus: "Pending",
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructChecklist rebuilds a checklist from persisted state.
func ReconstructChecklist(
	id uint,
	userID uint,
	projectID, lineID *uint,
	templateID uint,
	status vo.Status,
	date *time.Time,
	shift string,
	notificationStatus string,
	qualityMatricule, productionMatricule string,
	createdAt, updatedAt time.Time,
) (*Checklist, error) {
	if id == 0 {
		return nil, fmt.Errorf("checklist ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if templateID == 0 {
		return nil, fmt.Errorf("template ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Checklist{
		id:                          id,
		userID:                      userID,
		projectID:                   projectID,
		lineID:                      lineID,
		templateID:                  templateID,
		status:                      status,
		date:                        date,
		shift:                       shift,
		notificationStatus:          notificationStatus,
		qualityOperatorMatricule:    qualityMatricule,
		productionOperatorMatricule: productionMatricule,
		createdAt:                   createdAt,
		updatedAt:                   updatedAt,
	}, nil
}

func (c *Checklist) ID() uint {
	return c.id
}

func (c *Checklist) UserID() uint {
	return c.userID
}

func (c *Checklist) ProjectID() *uint {
	return c.projectID
}

func (c *Checklist) LineID() *uint {
	return c.lineID
}

func (c *Checklist) TemplateID() uint {
	return c.templateID
}

func (c *Checklist) Status() vo.Status {
	return c.status
}

func (c *Checklist) Date() *time.Time {
	return c.date
}

func (c *Checklist) Shift() string {
	return c.shift
}

func (c *Checklist) NotificationStatus() string {
	return c.notificationStatus
}

func (c *Checklist) QualityOperatorMatricule() string {
	return c.qualityOperatorMatricule
}

func (c *Checklist) ProductionOperatorMatricule() string {
	return c.productionOperatorMatricule
}

func (c *Checklist) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Checklist) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Checklist) Answers() []*Answer {
	answersCopy := make([]*Answer, len(c.answers))
	copy(answersCopy, c.answers)
	return answersCopy
}

func (c *Checklist) ActionPlans() []*ActionPlan {
	plansCopy := make([]*ActionPlan, len(c.actionPlans))
	copy(plansCopy, c.actionPlans)
	return plansCopy
}

func (c *Checklist) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("checklist ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("checklist ID cannot be zero")
	}
	c.id = id
	return nil
}

// AttachAnswers sets the loaded answer collection. Used by repositories
// when materializing a checklist with its dependents.
func (c *Checklist) AttachAnswers(answers []*Answer) {
	c.answers = answers
}

// AttachActionPlans sets the loaded action plan collection.
func (c *Checklist) AttachActionPlans(plans []*ActionPlan) {
	c.actionPlans = plans
}

// Complete transitions the checklist Pending -> Completed, recording
// both operator matricules and the completion time. A checklist may be
// completed at most once; the second attempt fails.
func (c *Checklist) Complete(quality, production vo.Matricule, now time.Time) error {
	if c.status.IsCompleted() {
		return fmt.Errorf("checklist is already completed")
	}
	if !c.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("cannot complete checklist with status %s", c.status)
	}

	c.qualityOperatorMatricule = quality.String()
	c.productionOperatorMatricule = production.String()
	c.status = vo.StatusCompleted
	completedAt := now.UTC()
	c.date = &completedAt
	c.updatedAt = completedAt

	return nil
}

// SetNotificationStatus records the status reported by the external
// notifier. The value is opaque to the workflow.
func (c *Checklist) SetNotificationStatus(status string) {
	c.notificationStatus = status
	c.updatedAt = time.Now().UTC()
}
