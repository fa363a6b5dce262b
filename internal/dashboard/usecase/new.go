package usecase

import (
	"intelliassist/internal/auth"
	"intelliassist/internal/classifier"
	"intelliassist/internal/dashboard"
	"intelliassist/internal/localtask"
	pkgLog "intelliassist/pkg/log"
)

const (
	// upcomingDays is the calendar lookahead window.
	upcomingDays = 7

	// maxEvents caps the calendar fetch.
	maxEvents = 50

	// maxEmails caps the unread email fetch.
	maxEmails = 20

	// displayLimit caps the email and task panels.
	displayLimit = 10
)

// ServiceProvider yields the current Google service clients.
type ServiceProvider interface {
	Services() auth.Services
}

type implUseCase struct {
	l          pkgLog.Logger
	provider   ServiceProvider
	classifier *classifier.Classifier
	localTasks localtask.UseCase
}

var _ dashboard.UseCase = (*implUseCase)(nil)

// New creates a new dashboard UseCase instance. localTasks may be nil; the
// unauthenticated task count then stays zero.
func New(
	l pkgLog.Logger,
	provider ServiceProvider,
	cls *classifier.Classifier,
	localTasks localtask.UseCase,
) *implUseCase {
	return &implUseCase{
		l:          l,
		provider:   provider,
		classifier: cls,
		localTasks: localTasks,
	}
}
