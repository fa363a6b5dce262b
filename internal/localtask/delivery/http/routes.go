package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/tasks", h.List)
	rg.POST("/tasks", h.Create)
	rg.POST("/tasks/complete", h.Complete)
}
