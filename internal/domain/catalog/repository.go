package catalog

import "context"

// Repository is the read contract over reference data.
type Repository interface {
	TemplateExists(ctx context.Context, id uint) (bool, error)
	ProjectExists(ctx context.Context, id uint) (bool, error)
	LineExists(ctx context.Context, id uint) (bool, error)

	// QuestionsOfTemplate returns the template's questions ordered by
	// ascending question ID. NOK point numbers are derived from this
	// ordering, so it must be stable.
	QuestionsOfTemplate(ctx context.Context, templateID uint) ([]Question, error)

	FindProject(ctx context.Context, id uint) (*Project, error)
	FindUserByUsername(ctx context.Context, username string) (*User, error)

	// Name lookups return id->name maps restricted to the given IDs.
	// Missing IDs are simply absent from the map.
	TemplateNames(ctx context.Context, ids []uint) (map[uint]string, error)
	ProjectNames(ctx context.Context, ids []uint) (map[uint]string, error)
	LineNames(ctx context.Context, ids []uint) (map[uint]string, error)
	UserNames(ctx context.Context, ids []uint) (map[uint]string, error)

	CountProjects(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountTemplates(ctx context.Context) (int64, error)
}
