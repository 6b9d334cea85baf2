package usecases

import "context"

type StartChecklistExecutor interface {
	Execute(ctx context.Context, cmd StartChecklistCommand) (*StartChecklistResult, error)
}

type SubmitChecklistExecutor interface {
	Execute(ctx context.Context, cmd SubmitChecklistCommand) (*SubmitChecklistResult, error)
}

type GetChecklistDetailExecutor interface {
	Execute(ctx context.Context, query GetChecklistDetailQuery) (*ChecklistDetailResult, error)
}

type ListUserChecklistsExecutor interface {
	Execute(ctx context.Context, query ListUserChecklistsQuery) (*ListUserChecklistsResult, error)
}

type UpdateActionPlanStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateActionPlanStatusCommand) (*UpdateActionPlanStatusResult, error)
}
