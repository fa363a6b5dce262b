package http

import (
	"intelliassist/internal/assistant"
	"intelliassist/pkg/response"
)

var errWrongBody = response.NewHTTPError(400, "request body is malformed")

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case assistant.ErrEmptyMessage:
		return response.NewHTTPError(400, "message cannot be empty")
	case assistant.ErrNotAuthenticated:
		return response.NewHTTPError(401, "connect Google to use this feature")
	default:
		return response.NewHTTPError(500, "assistant request failed")
	}
}
