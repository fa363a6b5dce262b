package assistant

import "errors"

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrNotAuthenticated = errors.New("google services are not connected")
)
