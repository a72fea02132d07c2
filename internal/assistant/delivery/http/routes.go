package http

import (
	"github.com/gin-gonic/gin"

	"compliance-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires the gateway identity headers and counts against the per-user
// rate budget.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/assistant")
	{
		g.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
		g.POST("/commands", mw.Auth(), mw.RateLimit(), h.ExecuteCommand)
		g.GET("/suggestions", mw.Auth(), mw.RateLimit(), h.GetSuggestions)
		g.GET("/sessions/:id/history", mw.Auth(), mw.RateLimit(), h.GetHistory)
		g.POST("/feedback", mw.Auth(), mw.RateLimit(), h.SubmitFeedback)
	}
}
