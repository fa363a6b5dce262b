package http

import (
	"github.com/gin-gonic/gin"

	"intelliassist/internal/model"
)

// scope builds the request scope from transport metadata.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{
		SessionID: c.GetHeader("X-Session-ID"),
	}
}
