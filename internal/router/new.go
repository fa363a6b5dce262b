package router

import (
	"context"

	"intelliassist/pkg/log"
)

// TextClassifier is the externally supplied capability the router delegates
// to. Implementations send the prompt to a text-completion service and return
// its raw reply.
type TextClassifier interface {
	ClassifyIntent(ctx context.Context, prompt string) (string, error)
}

// Router is the interface for intent routing.
type Router interface {
	Route(ctx context.Context, message string) Intent
}

// IntentRouter dispatches free-text chat messages to one of the closed set of
// intents. It holds no per-request state and is safe for concurrent use.
type IntentRouter struct {
	classifier TextClassifier
	l          log.Logger
}

var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter. classifier may be nil when no text
// classification capability is configured; every message then routes to
// General.
func New(classifier TextClassifier, l log.Logger) *IntentRouter {
	return &IntentRouter{
		classifier: classifier,
		l:          l,
	}
}
