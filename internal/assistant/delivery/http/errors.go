package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/pkg/response"
)

// respondError translates use-case errors onto the wire. Domain errors carry
// messages that are safe to show the caller; everything else is reported as
// an internal fault with the details kept in the logs.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrEmptyCommand),
		errors.Is(err, assistant.ErrEmptySessionID),
		errors.Is(err, assistant.ErrEmptyFeedback),
		errors.Is(err, assistant.ErrSessionNotFound):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
