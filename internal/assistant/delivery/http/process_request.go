package http

import (
	"github.com/gin-gonic/gin"

	"intelliassist/internal/model"
)

// scope builds the request scope. The chat body's session wins over the
// transport header when both are set.
func (h *handler) scope(c *gin.Context, sessionID string) model.Scope {
	if sessionID == "" {
		sessionID = c.GetHeader("X-Session-ID")
	}
	return model.Scope{
		SessionID: sessionID,
	}
}
