package assistant

import (
	"context"

	"intelliassist/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Chat processes one conversational message: records it in session
	// memory, routes the intent, and produces the assistant reply.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// Suggestions proposes next actions based on the time of day and the
	// local task situation.
	Suggestions(ctx context.Context) (SuggestionsOutput, error)

	// PriorityEmails returns unread emails ordered by priority together
	// with an LLM-written digest of what needs attention.
	PriorityEmails(ctx context.Context) (PriorityEmailsOutput, error)
}
