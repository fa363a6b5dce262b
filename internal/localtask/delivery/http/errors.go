package http

import (
	"intelliassist/internal/localtask"
	"intelliassist/pkg/response"
)

var errWrongBody = response.NewHTTPError(400, "request body is malformed")

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case localtask.ErrEmptyInput:
		return response.NewHTTPError(400, "message is required")
	case localtask.ErrLLMUnavailable:
		return response.NewHTTPError(503, "no language model is configured")
	case localtask.ErrTaskNotFound:
		return response.NewHTTPError(404, "no pending task with that title")
	default:
		return response.NewHTTPError(500, "task request failed")
	}
}
