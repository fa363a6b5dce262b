package dashboard

import "errors"

// Domain-specific errors for the dashboard package.
var (
	ErrNotAuthenticated = errors.New("google services are not connected")
	ErrMissingID        = errors.New("item id is required")
)
