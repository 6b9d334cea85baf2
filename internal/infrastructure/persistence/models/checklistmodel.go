package models

type ChecklistModel struct {
	ID                          uint    `gorm:"primaryKey"`
	UserID                      uint    `gorm:"not null;index"`
	ProjectID                   *uint   `gorm:"index"`
	LineID                      *uint   `gorm:"index"`
	TemplateID                  uint    `gorm:"not null;index"`
	Status                      string  `gorm:"size:20;not null;index"`
	Date                        *int64  `gorm:"index"`
	Shift                       string  `gorm:"size:20"`
	NotificationStatus          string  `gorm:"size:20;not null;default:Pending"`
	QualityOperatorMatricule    string  `gorm:"size:50"`
	ProductionOperatorMatricule string  `gorm:"size:50"`
	CreatedAt                   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt                   int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ChecklistModel) TableName() string {
	return "checklists"
}

type AnswerModel struct {
	ID          uint   `gorm:"primaryKey"`
	ChecklistID uint   `gorm:"not null;index"`
	QuestionID  uint   `gorm:"not null;index"`
	Value       string `gorm:"size:50;not null"`
}

func (AnswerModel) TableName() string {
	return "answers"
}

type ActionPlanModel struct {
	ID             uint   `gorm:"primaryKey"`
	ChecklistID    uint   `gorm:"not null;index"`
	AnswerID       uint   `gorm:"not null;index"`
	QuestionID     uint   `gorm:"not null"`
	NokPointNumber int    `gorm:"not null"`
	CreatedDate    int64  `gorm:"not null"`
	CreatedBy      string `gorm:"size:100;not null"`
	Actions        string `gorm:"type:text;not null"`
	Responsables   string `gorm:"size:200;not null"`
	DateCloture    int64  `gorm:"not null"`
	Status         string `gorm:"size:20;not null;index"`
}

func (ActionPlanModel) TableName() string {
	return "action_plans"
}
