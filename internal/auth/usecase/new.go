package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"

	"intelliassist/internal/auth"
	pkgLog "intelliassist/pkg/log"
)

const (
	// stateTTL bounds how long a started OAuth flow stays valid.
	stateTTL = 10 * time.Minute

	// maxPendingStates caps concurrent unfinished flows.
	maxPendingStates = 100
)

type implUseCase struct {
	l         pkgLog.Logger
	config    *oauth2.Config
	tokenPath string
	states    *expirable.LRU[string, struct{}]

	mu       sync.RWMutex
	services auth.Services
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates a new auth UseCase. config may be nil when no Google
// credentials are configured; Begin then fails with ErrNotConfigured.
// A previously saved token is loaded and the service clients rebuilt, so a
// restart does not log the user out.
func New(l pkgLog.Logger, config *oauth2.Config, tokenPath string) *implUseCase {
	uc := &implUseCase{
		l:         l,
		config:    config,
		tokenPath: tokenPath,
		states:    expirable.NewLRU[string, struct{}](maxPendingStates, nil, stateTTL),
	}

	if config != nil {
		uc.restoreFromSavedToken(context.Background())
	}
	return uc
}
