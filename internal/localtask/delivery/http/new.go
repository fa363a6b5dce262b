package http

import (
	"intelliassist/internal/localtask"
	"intelliassist/pkg/log"
)

type handler struct {
	l  log.Logger
	uc localtask.UseCase
}

// New creates a new HTTP handler for the local task domain.
func New(l log.Logger, uc localtask.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
