package checklist

import (
	"context"
	"time"

	"qcheck/internal/shared/query"
)

// Repository persists checklists and their dependents. Mutating calls
// join an ambient transaction when one travels in the context.
type Repository interface {
	Save(ctx context.Context, c *Checklist) error
	Update(ctx context.Context, c *Checklist) error
	// FindByID loads a checklist with its answers and action plans.
	FindByID(ctx context.Context, id uint) (*Checklist, error)
	// FindByIDForUpdate loads a checklist holding a row lock until the
	// ambient transaction ends. Concurrent submitters serialize here, so
	// the loser reloads the completed row instead of a stale snapshot.
	FindByIDForUpdate(ctx context.Context, id uint) (*Checklist, error)
	// ListByUser returns the user's checklists newest first, one page
	// at a time.
	ListByUser(ctx context.Context, userID uint, page query.PageFilter) ([]*Checklist, error)

	SaveAnswers(ctx context.Context, answers []*Answer) error
	SaveActionPlans(ctx context.Context, plans []*ActionPlan) error

	FindActionPlanByID(ctx context.Context, id uint) (*ActionPlan, error)
	UpdateActionPlan(ctx context.Context, plan *ActionPlan) error
}

// QueryFilter bounds a statistics read. Dates are inclusive; EndDate is
// expected to already be an end-of-day instant.
type QueryFilter struct {
	ProjectID *uint
	StartDate *time.Time
	EndDate   *time.Time
}

// ProjectChecklistCount pairs a project with its checklist count.
type ProjectChecklistCount struct {
	ProjectID      uint
	ChecklistCount int64
}

// AnswerTally is an OK/total count over a set of answers.
type AnswerTally struct {
	Total int64
	OK    int64
}

// StatsRepository is the read-only view the statistics aggregator
// queries. It never mutates; reads tolerate mid-flight data.
type StatsRepository interface {
	// ListWithDetails loads the filtered checklists with their answers
	// and action plans attached.
	ListWithDetails(ctx context.Context, filter QueryFilter) ([]*Checklist, error)

	CountChecklists(ctx context.Context) (int64, error)
	// CountChecklistsOnDay counts checklists whose date falls on the
	// given UTC calendar day.
	CountChecklistsOnDay(ctx context.Context, day time.Time) (int64, error)
	CountOpenActionPlans(ctx context.Context) (int64, error)

	// TallyAnswers counts all answers and the OK ones, globally.
	TallyAnswers(ctx context.Context) (AnswerTally, error)
	// TallyAnswersByProject counts answers belonging to one project's
	// checklists, all-time.
	TallyAnswersByProject(ctx context.Context, projectID uint) (AnswerTally, error)

	// TopProjectsByChecklistCount returns the projects with the most
	// checklists, descending. Projects without checklists rank last
	// with a zero count rather than being dropped.
	TopProjectsByChecklistCount(ctx context.Context, limit int) ([]ProjectChecklistCount, error)

	// RecentCompleted returns the most recently completed checklists,
	// ordered by date descending.
	RecentCompleted(ctx context.Context, limit int) ([]*Checklist, error)
}
