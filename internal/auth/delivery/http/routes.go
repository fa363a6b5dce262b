package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/auth/google", h.Begin)
	rg.GET("/auth/google/callback", h.Callback)
	rg.POST("/auth/disconnect", h.Disconnect)
	rg.GET("/status", h.Status)
}
