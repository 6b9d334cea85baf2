package models

type TemplateModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TemplateModel) TableName() string {
	return "templates"
}

type QuestionModel struct {
	ID         uint   `gorm:"primaryKey"`
	TemplateID uint   `gorm:"not null;index"`
	Text       string `gorm:"type:text;not null"`
	Category   string `gorm:"size:100"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

type ProjectModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:200;not null"`
	Code string `gorm:"size:50"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

type LineModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	ProjectID *uint  `gorm:"index"`
}

func (LineModel) TableName() string {
	return "lines"
}

type UserModel struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;size:100;not null"`
	FullName string `gorm:"size:200"`
	Role     string `gorm:"size:50;not null;default:User"`
}

func (UserModel) TableName() string {
	return "users"
}
