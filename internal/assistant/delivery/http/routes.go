package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)
	rg.GET("/suggestions", h.Suggestions)
	rg.GET("/emails/priority", h.PriorityEmails)
}
