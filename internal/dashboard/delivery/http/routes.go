package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/dashboard", h.Get)
	rg.POST("/meetings/delete", h.DeleteMeeting)
	rg.POST("/emails/delete", h.DeleteEmail)
	rg.POST("/tasks/delete", h.DeleteGoogleTask)
}
