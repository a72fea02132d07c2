package http

import (
	"github.com/gin-gonic/gin"

	"compliance-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one conversational turn: the message is classified, workspace context is gathered, an action is dispatched or the language model consulted, and the reply comes back with follow-up suggestions.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID      header string true "Caller user ID (set by the gateway)"
// @Param       X-Workspace-ID header string true "Workspace ID (set by the gateway)"
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.requestScope(c)
	if !ok {
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ExecuteCommand godoc
// @Summary     Execute a direct command
// @Description Runs a command straight through intent detection and the action executor. No conversation state is read or written.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID      header string true "Caller user ID (set by the gateway)"
// @Param       X-Workspace-ID header string true "Workspace ID (set by the gateway)"
// @Param       body body executeCommandReq true "Command to run"
// @Success     200 {object} executeCommandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/commands [POST]
func (h *handler) ExecuteCommand(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.requestScope(c)
	if !ok {
		return
	}

	req, err := h.processExecuteCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExecuteCommand(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExecuteCommand: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExecuteCommandResp(output))
}

// GetSuggestions godoc
// @Summary     Get proactive suggestions
// @Description Returns ranked next-step suggestions derived from the current workspace state, without any conversation.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID          header string true  "Caller user ID (set by the gateway)"
// @Param       X-Workspace-ID     header string true  "Workspace ID (set by the gateway)"
// @Param       current_page       query  string false "Current UI page"
// @Param       selected_documents query  []string false "Selected document IDs" collectionFormat(multi)
// @Success     200 {object} suggestionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/suggestions [GET]
func (h *handler) GetSuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.requestScope(c)
	if !ok {
		return
	}

	req, err := h.processSuggestionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetSuggestions(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSuggestions: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSuggestionsResp(output))
}

// GetHistory godoc
// @Summary     Get session history
// @Description Returns the persisted messages of one conversation session in chronological order.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID      header string true  "Caller user ID (set by the gateway)"
// @Param       X-Workspace-ID header string true  "Workspace ID (set by the gateway)"
// @Param       id    path  string true  "Session ID"
// @Param       limit query int    false "Max messages to return (default: 50)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions/{id}/history [GET]
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.requestScope(c)
	if !ok {
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetHistory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetHistory: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// SubmitFeedback godoc
// @Summary     Submit message feedback
// @Description Records user feedback on an assistant message in the semantic learning timeline. Every polarity is persisted.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID      header string true "Caller user ID (set by the gateway)"
// @Param       X-Workspace-ID header string true "Workspace ID (set by the gateway)"
// @Param       body body feedbackReq true "Feedback"
// @Success     200 {object} feedbackResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/feedback [POST]
func (h *handler) SubmitFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.requestScope(c)
	if !ok {
		return
	}

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SubmitFeedback(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitFeedback: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newFeedbackResp(output))
}
