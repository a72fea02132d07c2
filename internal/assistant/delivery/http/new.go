package http

import (
	"github.com/gin-gonic/gin"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/pkg/log"
)

// Handler is the public surface of the assistant HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ExecuteCommand(c *gin.Context)
	GetSuggestions(c *gin.Context)
	GetHistory(c *gin.Context)
	SubmitFeedback(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates the HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
