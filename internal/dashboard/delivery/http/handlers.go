package http

import (
	"github.com/gin-gonic/gin"

	"intelliassist/pkg/response"
)

// Get godoc
// @Summary     Dashboard data
// @Description Aggregates upcoming meetings, unread emails, today's tasks, and summary stats.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} dashboard.Output
// @Router      /api/v1/dashboard [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Get(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}

// DeleteMeeting godoc
// @Summary     Delete a meeting
// @Description Removes a calendar event by its Google event ID.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body deleteMeetingReq true "Event ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/meetings/delete [POST]
func (h *handler) DeleteMeeting(c *gin.Context) {
	ctx := c.Request.Context()

	var req deleteMeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "invalid delete meeting request: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	if err := h.uc.DeleteMeeting(ctx, h.scope(c), req.EventID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteMeeting: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// DeleteEmail godoc
// @Summary     Delete an email
// @Description Moves a Gmail message to trash by its Gmail ID.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body deleteEmailReq true "Gmail message ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/emails/delete [POST]
func (h *handler) DeleteEmail(c *gin.Context) {
	ctx := c.Request.Context()

	var req deleteEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "invalid delete email request: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	if err := h.uc.DeleteEmail(ctx, h.scope(c), req.EmailID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEmail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// DeleteGoogleTask godoc
// @Summary     Delete a Google task
// @Description Removes a task from the default Google Tasks list.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body deleteTaskReq true "Google task ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/tasks/delete [POST]
func (h *handler) DeleteGoogleTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req deleteTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "invalid delete task request: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	if err := h.uc.DeleteGoogleTask(ctx, h.scope(c), req.TaskID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteGoogleTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
