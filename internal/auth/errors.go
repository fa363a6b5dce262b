package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrNotConfigured    = errors.New("google OAuth client is not configured")
	ErrInvalidState     = errors.New("unknown or expired OAuth state")
	ErrMissingCode      = errors.New("authorization code is missing")
	ErrNotAuthenticated = errors.New("not connected to Google")
)
