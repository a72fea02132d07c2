package http

import (
	"github.com/gin-gonic/gin"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/middleware"
	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/response"
)

// requestScope returns the identity stored by the Auth middleware. On a
// missing scope it writes the 401 itself so handlers only need to return.
func (h *handler) requestScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processExecuteCommandReq binds and validates the command request body.
func (h *handler) processExecuteCommandReq(c *gin.Context) (executeCommandReq, error) {
	var req executeCommandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSuggestionsReq binds the optional UI context query parameters.
func (h *handler) processSuggestionsReq(c *gin.Context) (suggestionsReq, error) {
	var req suggestionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processHistoryReq binds the limit query parameter and the session URI param.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, assistant.ErrEmptySessionID
	}
	return req, req.validate()
}

// processFeedbackReq binds and validates the feedback request body.
func (h *handler) processFeedbackReq(c *gin.Context) (feedbackReq, error) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
