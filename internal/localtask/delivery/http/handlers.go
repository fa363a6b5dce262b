package http

import (
	"github.com/gin-gonic/gin"

	"intelliassist/internal/localtask"
	"intelliassist/internal/model"
	"intelliassist/pkg/response"
)

// List godoc
// @Summary     List local tasks
// @Description Returns pending tasks ordered by priority and due date, plus summary counts. Pass include_completed=true for the full list.
// @Tags        Tasks
// @Produce     json
// @Param       include_completed query bool false "Include completed tasks"
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		tasks []model.LocalTask
		err   error
	)
	if c.Query("include_completed") == "true" {
		tasks, err = h.uc.List(ctx, true)
	} else {
		tasks, err = h.uc.Pending(ctx)
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	summary, err := h.uc.Summary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, listResp{Tasks: tasks, Summary: summary})
}

// Create godoc
// @Summary     Create a task from natural language
// @Description Parses a free-text message into a task with title, priority, and due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task description"
// @Success     200 {object} localtask.CreateOutput
// @Failure     400 {object} response.Resp
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "invalid create task request: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	output, err := h.uc.CreateFromMessage(ctx, h.scope(c), localtask.CreateInput{Message: req.Message})
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the first pending task whose title matches as completed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body completeReq true "Task title"
// @Success     200 {object} model.LocalTask
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "invalid complete task request: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	task, err := h.uc.Complete(ctx, h.scope(c), req.Title)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, task)
}
