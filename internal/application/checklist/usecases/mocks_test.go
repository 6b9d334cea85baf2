package usecases

import (
	"context"
	"time"

	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	"qcheck/internal/shared/logger"
	"qcheck/internal/shared/query"
)

type mockChecklistRepository struct {
	SaveFunc               func(ctx context.Context, c *checklist.Checklist) error
	UpdateFunc             func(ctx context.Context, c *checklist.Checklist) error
	FindByIDFunc           func(ctx context.Context, id uint) (*checklist.Checklist, error)
	FindByIDForUpdateFunc  func(ctx context.Context, id uint) (*checklist.Checklist, error)
	ListByUserFunc         func(ctx context.Context, userID uint, page query.PageFilter) ([]*checklist.Checklist, error)
	SaveAnswersFunc        func(ctx context.Context, answers []*checklist.Answer) error
	SaveActionPlansFunc    func(ctx context.Context, plans []*checklist.ActionPlan) error
	FindActionPlanByIDFunc func(ctx context.Context, id uint) (*checklist.ActionPlan, error)
	UpdateActionPlanFunc   func(ctx context.Context, plan *checklist.ActionPlan) error
}

func (m *mockChecklistRepository) Save(ctx context.Context, c *checklist.Checklist) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockChecklistRepository) Update(ctx context.Context, c *checklist.Checklist) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockChecklistRepository) FindByID(ctx context.Context, id uint) (*checklist.Checklist, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockChecklistRepository) FindByIDForUpdate(ctx context.Context, id uint) (*checklist.Checklist, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockChecklistRepository) ListByUser(ctx context.Context, userID uint, page query.PageFilter) ([]*checklist.Checklist, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, page)
	}
	return nil, nil
}

func (m *mockChecklistRepository) SaveAnswers(ctx context.Context, answers []*checklist.Answer) error {
	if m.SaveAnswersFunc != nil {
		return m.SaveAnswersFunc(ctx, answers)
	}
	return nil
}

func (m *mockChecklistRepository) SaveActionPlans(ctx context.Context, plans []*checklist.ActionPlan) error {
	if m.SaveActionPlansFunc != nil {
		return m.SaveActionPlansFunc(ctx, plans)
	}
	return nil
}

func (m *mockChecklistRepository) FindActionPlanByID(ctx context.Context, id uint) (*checklist.ActionPlan, error) {
	if m.FindActionPlanByIDFunc != nil {
		return m.FindActionPlanByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockChecklistRepository) UpdateActionPlan(ctx context.Context, plan *checklist.ActionPlan) error {
	if m.UpdateActionPlanFunc != nil {
		return m.UpdateActionPlanFunc(ctx, plan)
	}
	return nil
}

type mockCatalogRepository struct {
	TemplateExistsFunc      func(ctx context.Context, id uint) (bool, error)
	ProjectExistsFunc       func(ctx context.Context, id uint) (bool, error)
	LineExistsFunc          func(ctx context.Context, id uint) (bool, error)
	QuestionsOfTemplateFunc func(ctx context.Context, templateID uint) ([]catalog.Question, error)
	FindProjectFunc         func(ctx context.Context, id uint) (*catalog.Project, error)
	FindUserByUsernameFunc  func(ctx context.Context, username string) (*catalog.User, error)
	TemplateNamesFunc       func(ctx context.Context, ids []uint) (map[uint]string, error)
	ProjectNamesFunc        func(ctx context.Context, ids []uint) (map[uint]string, error)
	LineNamesFunc           func(ctx context.Context, ids []uint) (map[uint]string, error)
	UserNamesFunc           func(ctx context.Context, ids []uint) (map[uint]string, error)
	CountProjectsFunc       func(ctx context.Context) (int64, error)
	CountUsersFunc          func(ctx context.Context) (int64, error)
	CountTemplatesFunc      func(ctx context.Context) (int64, error)
}

func (m *mockCatalogRepository) TemplateExists(ctx context.Context, id uint) (bool, error) {
	if m.TemplateExistsFunc != nil {
		return m.TemplateExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockCatalogRepository) ProjectExists(ctx context.Context, id uint) (bool, error) {
	if m.ProjectExistsFunc != nil {
		return m.ProjectExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockCatalogRepository) LineExists(ctx context.Context, id uint) (bool, error) {
	if m.LineExistsFunc != nil {
		return m.LineExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *mockCatalogRepository) QuestionsOfTemplate(ctx context.Context, templateID uint) ([]catalog.Question, error) {
	if m.QuestionsOfTemplateFunc != nil {
		return m.QuestionsOfTemplateFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockCatalogRepository) FindProject(ctx context.Context, id uint) (*catalog.Project, error) {
	if m.FindProjectFunc != nil {
		return m.FindProjectFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalogRepository) FindUserByUsername(ctx context.Context, username string) (*catalog.User, error) {
	if m.FindUserByUsernameFunc != nil {
		return m.FindUserByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockCatalogRepository) TemplateNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.TemplateNamesFunc != nil {
		return m.TemplateNamesFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

func (m *mockCatalogRepository) ProjectNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.ProjectNamesFunc != nil {
		return m.ProjectNamesFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

func (m *mockCatalogRepository) LineNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.LineNamesFunc != nil {
		return m.LineNamesFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

func (m *mockCatalogRepository) UserNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	if m.UserNamesFunc != nil {
		return m.UserNamesFunc(ctx, ids)
	}
	return map[uint]string{}, nil
}

func (m *mockCatalogRepository) CountProjects(ctx context.Context) (int64, error) {
	if m.CountProjectsFunc != nil {
		return m.CountProjectsFunc(ctx)
	}
	return 0, nil
}

func (m *mockCatalogRepository) CountUsers(ctx context.Context) (int64, error) {
	if m.CountUsersFunc != nil {
		return m.CountUsersFunc(ctx)
	}
	return 0, nil
}

func (m *mockCatalogRepository) CountTemplates(ctx context.Context) (int64, error) {
	if m.CountTemplatesFunc != nil {
		return m.CountTemplatesFunc(ctx)
	}
	return 0, nil
}

// mockTxRunner executes the unit of work directly, without a database.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }

// helper builders shared across the use case tests

func buildPendingChecklist(id, userID, templateID uint, projectID *uint) *checklist.Checklist {
	c, err := checklist.NewChecklist(userID, templateID, projectID, nil, nil, "morning")
	if err != nil {
		panic(err)
	}
	if err := c.SetID(id); err != nil {
		panic(err)
	}
	return c
}

func timePtr(t time.Time) *time.Time { return &t }
