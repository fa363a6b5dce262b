package usecase

import (
	"context"

	"intelliassist/internal/localtask"
	"intelliassist/internal/localtask/repository"
	"intelliassist/pkg/datemath"
	"intelliassist/pkg/llmprovider"
	pkgLog "intelliassist/pkg/log"
)

// Generator is the slice of the LLM provider manager this use case needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      Generator
	repo     repository.Repository
	dateMath *datemath.Parser
	timezone string
}

var _ localtask.UseCase = (*implUseCase)(nil)

// New creates a new local task UseCase instance. llm may be nil, in which
// case CreateFromMessage returns ErrLLMUnavailable.
func New(
	l pkgLog.Logger,
	llm Generator,
	repo repository.Repository,
	dateMath *datemath.Parser,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		dateMath: dateMath,
		timezone: timezone,
	}
}
