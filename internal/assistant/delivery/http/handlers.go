package http

import (
	"github.com/gin-gonic/gin"

	"intelliassist/internal/assistant"
	"intelliassist/pkg/response"
)

// Chat godoc
// @Summary     Conversational assistant
// @Description Routes the message by intent (calendar, email, task, general) and returns the reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} assistant.ChatOutput
// @Failure     400 {object} response.Resp
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "invalid chat request: %v", err)
		response.Error(c, errWrongBody, nil)
		return
	}

	output, err := h.uc.Chat(ctx, h.scope(c, req.SessionID), assistant.ChatInput{Message: req.Message})
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}

// Suggestions godoc
// @Summary     Smart suggestions
// @Description Proposes next actions based on the time of day and local task deadlines.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} assistant.SuggestionsOutput
// @Router      /api/v1/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Suggestions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggestions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}

// PriorityEmails godoc
// @Summary     Priority email digest
// @Description Returns unread emails ordered most urgent first with an LLM digest.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} assistant.PriorityEmailsOutput
// @Failure     401 {object} response.Resp
// @Router      /api/v1/emails/priority [GET]
func (h *handler) PriorityEmails(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.PriorityEmails(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.PriorityEmails: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, output)
}
