package usecase

import (
	"context"
	"time"

	"intelliassist/internal/assistant"
	"intelliassist/internal/auth"
	"intelliassist/internal/localtask"
	"intelliassist/internal/memory"
	"intelliassist/internal/router"
	"intelliassist/pkg/llmprovider"
	pkgLog "intelliassist/pkg/log"
)

const (
	// defaultSessionID groups chat turns when the caller sends no session.
	defaultSessionID = "default"

	// chatHistoryTurns is how many recent turns feed the general prompt.
	chatHistoryTurns = 4

	// chatMaxTokens bounds a conversational reply.
	chatMaxTokens = 300

	// maxSuggestions caps the suggestion list.
	maxSuggestions = 4

	// upcomingDays is the calendar lookahead for chat summaries.
	upcomingDays = 7

	// maxChatEvents caps the events listed in a chat reply.
	maxChatEvents = 10

	// maxChatEmails caps the unread emails listed in a chat reply.
	maxChatEmails = 5

	// maxPriorityEmails caps the unread fetch for priority analysis.
	maxPriorityEmails = 20

	// priorityDisplayLimit caps the priority email panel.
	priorityDisplayLimit = 10

	// maxInsightEmails caps the summaries sent to the LLM for insights.
	maxInsightEmails = 10
)

// Generator is the slice of the LLM provider manager this use case needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// ServiceProvider yields the current Google service clients.
type ServiceProvider interface {
	Services() auth.Services
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        Generator
	router     router.Router
	memory     *memory.Store
	provider   ServiceProvider
	localTasks localtask.UseCase
	location   *time.Location
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance. llm may be nil; intent
// routing then always falls back to general conversation with canned replies.
func New(
	l pkgLog.Logger,
	llm Generator,
	rt router.Router,
	mem *memory.Store,
	provider ServiceProvider,
	localTasks localtask.UseCase,
	timezone string,
) *implUseCase {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	return &implUseCase{
		l:          l,
		llm:        llm,
		router:     rt,
		memory:     mem,
		provider:   provider,
		localTasks: localTasks,
		location:   loc,
	}
}
