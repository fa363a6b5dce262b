package http

import (
	"intelliassist/internal/dashboard"
	"intelliassist/pkg/response"
)

var errWrongBody = response.NewHTTPError(400, "request body is malformed")

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case dashboard.ErrNotAuthenticated:
		return response.NewHTTPError(401, "connect Google to use this feature")
	case dashboard.ErrMissingID:
		return response.NewHTTPError(400, "id is required")
	default:
		return response.NewHTTPError(500, "dashboard request failed")
	}
}
