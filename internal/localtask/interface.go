package localtask

import (
	"context"

	"intelliassist/internal/model"
)

// UseCase defines the business logic interface for the local task store.
type UseCase interface {
	// CreateFromMessage parses a natural language message into a task via
	// the LLM and persists it.
	CreateFromMessage(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns tasks newest first, optionally including completed ones.
	List(ctx context.Context, includeCompleted bool) ([]model.LocalTask, error)

	// Pending returns incomplete tasks sorted by priority then due date.
	Pending(ctx context.Context) ([]model.LocalTask, error)

	// Overdue returns incomplete tasks whose due date has passed.
	Overdue(ctx context.Context) ([]model.LocalTask, error)

	// Complete marks the first incomplete task with the given title as done.
	Complete(ctx context.Context, sc model.Scope, title string) (model.LocalTask, error)

	// Summary returns task counts by state.
	Summary(ctx context.Context) (SummaryOutput, error)
}
