package migration

import (
	"fmt"

	"gorm.io/gorm"

	"qcheck/internal/infrastructure/persistence/models"
	"qcheck/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema straight from the model
// structs. Development only.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, extraModels ...interface{}) error {
	all := append(AllModels(), extraModels...)

	s.logger.Infow("starting gorm automigrate", "models_count", len(all))

	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	s.logger.Infow("gorm automigrate completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AllModels lists every persistence model the schema owns.
func AllModels() []interface{} {
	return []interface{}{
		&models.ChecklistModel{},
		&models.AnswerModel{},
		&models.ActionPlanModel{},
		&models.TemplateModel{},
		&models.QuestionModel{},
		&models.ProjectModel{},
		&models.LineModel{},
		&models.UserModel{},
	}
}
