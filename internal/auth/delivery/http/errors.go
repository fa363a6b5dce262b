package http

import (
	"intelliassist/internal/auth"
	"intelliassist/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrNotConfigured:
		return response.NewHTTPError(503, "Google OAuth is not configured")
	case auth.ErrInvalidState:
		return response.NewHTTPError(400, "OAuth state is unknown or expired, restart the flow")
	case auth.ErrMissingCode:
		return response.NewHTTPError(400, "authorization code is missing")
	default:
		return response.NewHTTPError(500, "authentication failed")
	}
}
