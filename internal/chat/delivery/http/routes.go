package http

import (
	"chat-orchestrator/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.GET("/history", h.History)
	rg.POST("/clear", h.Clear)
	rg.GET("/status", h.Status)
}
