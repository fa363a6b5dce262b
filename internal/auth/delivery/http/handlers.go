package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intelliassist/internal/auth"
	"intelliassist/pkg/response"
)

// Begin godoc
// @Summary     Start Google OAuth
// @Description Begins the Google OAuth web flow and returns the consent URL to open.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} beginResp
// @Failure     400 {object} response.Resp "OAuth not configured"
// @Router      /api/v1/auth/google [POST]
func (h *handler) Begin(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Begin(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Begin: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, beginResp{AuthURL: output.AuthURL})
}

// Callback godoc
// @Summary     Google OAuth callback
// @Description Completes the OAuth flow. Google redirects the browser here with state and code.
// @Tags        Auth
// @Produce     json
// @Param       state query string true "CSRF state from Begin"
// @Param       code  query string true "Authorization code"
// @Success     302 "Redirects to the app root"
// @Failure     400 {object} response.Resp "Invalid state or code"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	input := auth.CallbackInput{
		State: c.Query("state"),
		Code:  c.Query("code"),
	}

	if err := h.uc.Callback(ctx, input); err != nil {
		h.l.Errorf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	// The browser lands here from Google's redirect; send it back to the app.
	c.Redirect(http.StatusFound, "/")
}

// Status godoc
// @Summary     Connection status
// @Description Reports whether Google is connected and which services are available.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} auth.StatusOutput
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.uc.Status(c.Request.Context()))
}

// Disconnect godoc
// @Summary     Disconnect Google
// @Description Removes the saved token and tears down Google service clients.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/disconnect [POST]
func (h *handler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Disconnect(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Disconnect: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
