package dashboard

import (
	"context"

	"intelliassist/internal/model"
)

// UseCase aggregates the Google panels shown on the dashboard and owns the
// delete operations on their rows.
type UseCase interface {
	// Get assembles meetings, emails, tasks, and stats. Panels whose
	// backing service fails degrade to empty rather than failing the whole
	// dashboard.
	Get(ctx context.Context, sc model.Scope) (Output, error)

	// DeleteMeeting removes a calendar event.
	DeleteMeeting(ctx context.Context, sc model.Scope, eventID string) error

	// DeleteEmail moves a Gmail message to the trash.
	DeleteEmail(ctx context.Context, sc model.Scope, gmailID string) error

	// DeleteGoogleTask removes a task from the default Google Tasks list.
	DeleteGoogleTask(ctx context.Context, sc model.Scope, taskID string) error
}
