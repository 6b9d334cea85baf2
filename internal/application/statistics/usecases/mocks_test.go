package usecases

import (
	"context"
	"time"

	"qcheck/internal/domain/catalog"
	"qcheck/internal/domain/checklist"
	"qcheck/internal/shared/logger"
)

type mockStatsRepository struct {
	ListWithDetailsFunc             func(ctx context.Context, filter checklist.QueryFilter) ([]*checklist.Checklist, error)
	CountChecklistsFunc             func(ctx context.Context) (int64, error)
	CountChecklistsOnDayFunc        func(ctx context.Context, day time.Time) (int64, error)
	CountOpenActionPlansFunc        func(ctx context.Context) (int64, error)
	TallyAnswersFunc                func(ctx context.Context) (checklist.AnswerTally, error)
	TallyAnswersByProjectFunc       func(ctx context.Context, projectID uint) (checklist.AnswerTally, error)
	TopProjectsByChecklistCountFunc func(ctx context.Context, limit int) ([]checklist.ProjectChecklistCount, error)
	RecentCompletedFunc             func(ctx context.Context, limit int) ([]*checklist.Checklist, error)
}

func (m *mockStatsRepository) ListWithDetails(ctx context.Context, filter checklist.QueryFilter) ([]*checklist.Checklist, error) {
	if m.ListWithDetailsFunc != nil {
		return m.ListWithDetailsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockStatsRepository) CountChecklists(ctx context.Context) (int64, error) {
	if m.CountChecklistsFunc != nil {
		return m.CountChecklistsFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepository) CountChecklistsOnDay(ctx context.Context, day time.Time) (int64, error) {
	if m.CountChecklistsOnDayFunc != nil {
		return m.CountChecklistsOnDayFunc(ctx, day)
	}
	return 0, nil
}

func (m *mockStatsRepository) CountOpenActionPlans(ctx context.Context) (int64, error) {
	if m.CountOpenActionPlansFunc != nil {
		return m.CountOpenActionPlansFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepository) TallyAnswers(ctx context.Context) (checklist.AnswerTally, error) {
	if m.TallyAnswersFunc != nil {
		return m.TallyAnswersFunc(ctx)
	}
	return checklist.AnswerTally{}, nil
}

func (m *mockStatsRepository) TallyAnswersByProject(ctx context.Context, projectID uint) (checklist.AnswerTally, error) {
	if m.TallyAnswersByProjectFunc != nil {
		return m.TallyAnswersByProjectFunc(ctx, projectID)
	}
	return checklist.AnswerTally{}, nil
}

func (m *mockStatsRepository) TopProjectsByChecklistCount(ctx context.Context, limit int) ([]checklist.ProjectChecklistCount, error) {
	if m.TopProjectsByChecklistCountFunc != nil {
		return m.TopProjectsByChecklistCountFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStatsRepository) RecentCompleted(ctx context.Context, limit int) ([]*checklist.Checklist, error) {
	if m.RecentCompletedFunc != nil {
		return m.RecentCompletedFunc(ctx, limit)
	}
	return nil, nil
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
	return &catalog.Project{ID: id, Name: "Project"}, nil
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
