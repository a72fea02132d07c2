package http

import (
	"time"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/model"
)

// --- Request DTOs ---

type chatContextReq struct {
	CurrentPage       string   `json:"current_page"       binding:"max=255"`
	RecentActions     []string `json:"recent_actions"     binding:"omitempty,max=20"`
	SelectedDocuments []string `json:"selected_documents" binding:"omitempty,max=50"`
}

func (r chatContextReq) toClientContext() assistant.ClientContext {
	return assistant.ClientContext{
		CurrentPage:       r.CurrentPage,
		RecentActions:     r.RecentActions,
		SelectedDocuments: r.SelectedDocuments,
	}
}

type chatReq struct {
	Message   string          `json:"message"    binding:"required,min=1,max=4000"`
	SessionID string          `json:"session_id" binding:"omitempty,max=64"`
	Context   *chatContextReq `json:"context"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() assistant.ChatInput {
	in := assistant.ChatInput{
		Message:   r.Message,
		SessionID: r.SessionID,
	}
	if r.Context != nil {
		in.Context = r.Context.toClientContext()
	}
	return in
}

// ---

type executeCommandReq struct {
	Command    string                 `json:"command" binding:"required,min=1,max=1000"`
	Parameters map[string]interface{} `json:"parameters"`
}

func (r executeCommandReq) validate() error { return nil }

func (r executeCommandReq) toInput() assistant.ExecuteCommandInput {
	return assistant.ExecuteCommandInput{
		Command:    r.Command,
		Parameters: r.Parameters,
	}
}

// ---

type suggestionsReq struct {
	CurrentPage       string   `form:"current_page"`
	SelectedDocuments []string `form:"selected_documents"`
}

func (r suggestionsReq) validate() error { return nil }

func (r suggestionsReq) toInput() assistant.SuggestionsInput {
	return assistant.SuggestionsInput{
		Context: assistant.ClientContext{
			CurrentPage:       r.CurrentPage,
			SelectedDocuments: r.SelectedDocuments,
		},
	}
}

// ---

type historyReq struct {
	SessionID string `json:"-"` // populated from URI param
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (r historyReq) validate() error { return nil }

func (r historyReq) toInput() assistant.HistoryInput {
	return assistant.HistoryInput{
		SessionID: r.SessionID,
		Limit:     r.Limit,
	}
}

// ---

type feedbackReq struct {
	SessionID string `json:"session_id" binding:"required,max=64"`
	MessageID string `json:"message_id" binding:"required,max=64"`
	Feedback  string `json:"feedback"   binding:"required,min=1,max=2000"`
}

func (r feedbackReq) validate() error { return nil }

func (r feedbackReq) toInput() assistant.FeedbackInput {
	return assistant.FeedbackInput{
		SessionID: r.SessionID,
		MessageID: r.MessageID,
		Feedback:  r.Feedback,
	}
}

// --- Response DTOs ---

type clientActionResp struct {
	Type     string                 `json:"type"`
	Target   string                 `json:"target,omitempty"`
	Endpoint string                 `json:"endpoint,omitempty"`
	Method   string                 `json:"method,omitempty"`
	Payload  map[string]interface{} `json:"payload,omitempty"`
	URL      string                 `json:"url,omitempty"`
	Filename string                 `json:"filename,omitempty"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

func newClientActionResp(a model.ClientAction) clientActionResp {
	return clientActionResp{
		Type:     string(a.Type),
		Target:   a.Target,
		Endpoint: a.Endpoint,
		Method:   a.Method,
		Payload:  a.Payload,
		URL:      a.URL,
		Filename: a.Filename,
		Data:     a.Data,
	}
}

func newClientActionResps(actions []model.ClientAction) []clientActionResp {
	if len(actions) == 0 {
		return nil
	}
	out := make([]clientActionResp, len(actions))
	for i, a := range actions {
		out[i] = newClientActionResp(a)
	}
	return out
}

type entityResp struct {
	Type       string      `json:"type"`
	Value      interface{} `json:"value"`
	Confidence float64     `json:"confidence"`
}

type chatContextResp struct {
	Intent     string       `json:"intent"`
	Confidence float64      `json:"confidence"`
	Entities   []entityResp `json:"entities,omitempty"`
}

type chatResp struct {
	SessionID   string             `json:"session_id"`
	Message     string             `json:"message"`
	Actions     []clientActionResp `json:"actions,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
	Context     chatContextResp    `json:"context"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	var suggestions []string
	for _, s := range out.Suggestions {
		suggestions = append(suggestions, s.Message)
	}

	var entities []entityResp
	for _, e := range out.Context.Entities {
		entities = append(entities, entityResp{
			Type:       e.Type,
			Value:      e.Value,
			Confidence: e.Confidence,
		})
	}

	return chatResp{
		SessionID:   out.SessionID,
		Message:     out.Message,
		Actions:     newClientActionResps(out.Actions),
		Suggestions: suggestions,
		Context: chatContextResp{
			Intent:     out.Context.Intent,
			Confidence: out.Context.Confidence,
			Entities:   entities,
		},
	}
}

type executeCommandResp struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Actions []clientActionResp     `json:"actions,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func (h *handler) newExecuteCommandResp(out assistant.ExecuteCommandOutput) executeCommandResp {
	return executeCommandResp{
		Success: out.Success,
		Message: out.Message,
		Actions: newClientActionResps(out.Actions),
		Data:    out.Data,
	}
}

type suggestionCommandResp struct {
	Label   string `json:"label"`
	Command string `json:"command"`
}

type suggestionResp struct {
	Priority string                  `json:"priority"`
	Type     string                  `json:"type"`
	Message  string                  `json:"message"`
	Commands []suggestionCommandResp `json:"commands,omitempty"`
}

func newSuggestionResp(s model.Suggestion) suggestionResp {
	var commands []suggestionCommandResp
	for _, cmd := range s.Commands {
		commands = append(commands, suggestionCommandResp{
			Label:   cmd.Label,
			Command: cmd.Command,
		})
	}
	return suggestionResp{
		Priority: string(s.Priority),
		Type:     string(s.Type),
		Message:  s.Message,
		Commands: commands,
	}
}

type contextSummaryResp struct {
	WorkspaceID      string `json:"workspace_id"`
	ComplianceScore  int    `json:"compliance_score"`
	UnresolvedIssues int    `json:"unresolved_issues"`
	PendingDocuments int    `json:"pending_documents"`
}

type suggestionsResp struct {
	Suggestions []suggestionResp   `json:"suggestions"`
	Context     contextSummaryResp `json:"context"`
}

func (h *handler) newSuggestionsResp(out assistant.SuggestionsOutput) suggestionsResp {
	suggestions := make([]suggestionResp, 0, len(out.Suggestions))
	for _, s := range out.Suggestions {
		suggestions = append(suggestions, newSuggestionResp(s))
	}
	return suggestionsResp{
		Suggestions: suggestions,
		Context: contextSummaryResp{
			WorkspaceID:      out.Context.WorkspaceID,
			ComplianceScore:  out.Context.ComplianceScore,
			UnresolvedIssues: out.Context.UnresolvedIssues,
			PendingDocuments: out.Context.PendingDocuments,
		},
	}
}

type messageResp struct {
	ID        string                 `json:"id"`
	Role      string                 `json:"role"`
	Content   string                 `json:"content"`
	Timestamp time.Time              `json:"timestamp"`
	Intent    string                 `json:"intent,omitempty"`
	Entities  map[string]interface{} `json:"entities,omitempty"`
	Actions   []clientActionResp     `json:"actions,omitempty"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Intent:    m.Intent,
		Entities:  m.Entities,
		Actions:   newClientActionResps(m.Actions),
	}
}

type historyResp struct {
	SessionID     string        `json:"session_id"`
	Messages      []messageResp `json:"messages"`
	TotalMessages int           `json:"total_messages"`
}

func (h *handler) newHistoryResp(out assistant.HistoryOutput) historyResp {
	messages := make([]messageResp, 0, len(out.Messages))
	for _, m := range out.Messages {
		messages = append(messages, newMessageResp(m))
	}
	return historyResp{
		SessionID:     out.SessionID,
		Messages:      messages,
		TotalMessages: out.TotalMessages,
	}
}

type feedbackResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *handler) newFeedbackResp(out assistant.FeedbackOutput) feedbackResp {
	return feedbackResp{
		Success: out.Success,
		Message: out.Message,
	}
}
