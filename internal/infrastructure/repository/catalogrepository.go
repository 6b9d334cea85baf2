package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"qcheck/internal/domain/catalog"
	"qcheck/internal/infrastructure/persistence/models"
	db "qcheck/internal/shared/db"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) TemplateExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.TemplateModel{}, id, "template")
}

func (r *CatalogRepository) ProjectExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.ProjectModel{}, id, "project")
}

func (r *CatalogRepository) LineExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.LineModel{}, id, "line")
}

func (r *CatalogRepository) exists(ctx context.Context, model interface{}, id uint, name string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", name, err)
	}
	return count > 0, nil
}

func (r *CatalogRepository) QuestionsOfTemplate(ctx context.Context, templateID uint) ([]catalog.Question, error) {
	var modelList []models.QuestionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("template_id = ?", templateID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to load template questions: %w", err)
	}

	questions := make([]catalog.Question, 0, len(modelList))
	for _, m := range modelList {
		questions = append(questions, catalog.Question{
			ID:         m.ID,
			TemplateID: m.TemplateID,
			Text:       m.Text,
			Category:   m.Category,
		})
	}
	return questions, nil
}

func (r *CatalogRepository) FindProject(ctx context.Context, id uint) (*catalog.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return &catalog.Project{ID: model.ID, Name: model.Name, Code: model.Code}, nil
}

func (r *CatalogRepository) FindUserByUsername(ctx context.Context, username string) (*catalog.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &catalog.User{
		ID:       model.ID,
		Username: model.Username,
		FullName: model.FullName,
		Role:     model.Role,
	}, nil
}

func (r *CatalogRepository) TemplateNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	return r.names(ctx, "templates", ids)
}

func (r *CatalogRepository) ProjectNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	return r.names(ctx, "projects", ids)
}

func (r *CatalogRepository) LineNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	return r.names(ctx, "lines", ids)
}

func (r *CatalogRepository) UserNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	type row struct {
		ID       uint
		Username string
	}

	var rows []row
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Table("users").
		Select("id, username").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load user names: %w", err)
	}

	result := make(map[uint]string, len(rows))
	for _, u := range rows {
		result[u.ID] = u.Username
	}
	return result, nil
}

// names resolves id->name over any table with id and name columns.
func (r *CatalogRepository) names(ctx context.Context, table string, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	type row struct {
		ID   uint
		Name string
	}

	var rows []row
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Table(table).
		Select("id, name").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load names from %s: %w", table, err)
	}

	result := make(map[uint]string, len(rows))
	for _, n := range rows {
		result[n.ID] = n.Name
	}
	return result, nil
}

func (r *CatalogRepository) CountProjects(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.ProjectModel{}, "projects")
}

func (r *CatalogRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.UserModel{}, "users")
}

func (r *CatalogRepository) CountTemplates(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.TemplateModel{}, "templates")
}

func (r *CatalogRepository) count(ctx context.Context, model interface{}, name string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return count, nil
}

var _ catalog.Repository = (*CatalogRepository)(nil)
