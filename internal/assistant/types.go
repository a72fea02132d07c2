package assistant

import "compliance-assistant/internal/model"

// ClientContext carries UI hints forwarded with a chat request. All fields
// are optional; they sharpen context gathering and suggestion ranking.
type ClientContext struct {
	CurrentPage       string
	RecentActions     []string
	SelectedDocuments []string
}

// ChatInput is the input for one conversational turn.
type ChatInput struct {
	Message   string
	SessionID string // empty starts a new session
	Context   ClientContext
}

// Entity is one extracted parameter surfaced back to the client.
type Entity struct {
	Type       string      `json:"type"`
	Value      interface{} `json:"value"`
	Confidence float64     `json:"confidence"`
}

// ChatContext summarizes how the message was understood.
type ChatContext struct {
	Intent     string   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Entities   []Entity `json:"entities"`
}

// ChatOutput is the result of one conversational turn.
type ChatOutput struct {
	SessionID   string
	Message     string
	Actions     []model.ClientAction
	Suggestions []model.Suggestion
	Context     ChatContext
}

// ExecuteCommandInput is the input for direct command execution.
type ExecuteCommandInput struct {
	Command    string
	Parameters map[string]interface{} // merged over extracted entities
}

// ExecuteCommandOutput is the result of direct command execution.
// Success=false with a Message is the normal shape for commands that do
// not map to an executable action.
type ExecuteCommandOutput struct {
	Success bool
	Message string
	Actions []model.ClientAction
	Data    map[string]interface{}
}

// SuggestionsInput is the input for proactive suggestion generation.
type SuggestionsInput struct {
	Context ClientContext
}

// ContextSummary is the workspace state snapshot returned alongside
// suggestions.
type ContextSummary struct {
	WorkspaceID      string `json:"workspace_id"`
	ComplianceScore  int    `json:"compliance_score"`
	UnresolvedIssues int    `json:"unresolved_issues"`
	PendingDocuments int    `json:"pending_documents"`
}

// SuggestionsOutput is the result of proactive suggestion generation.
type SuggestionsOutput struct {
	Suggestions []model.Suggestion
	Context     ContextSummary
}

// HistoryInput is the input for history retrieval.
type HistoryInput struct {
	SessionID string
	Limit     int // default 50
}

// HistoryOutput is the persisted conversation of one session.
type HistoryOutput struct {
	SessionID     string
	Messages      []model.Message
	TotalMessages int // total in the durable log, may exceed len(Messages)
}

// FeedbackInput is the input for message feedback.
type FeedbackInput struct {
	SessionID string
	MessageID string
	Feedback  string // e.g. "helpful", "unhelpful", or free text
}

// FeedbackOutput is the result of feedback submission.
type FeedbackOutput struct {
	Success bool
	Message string
}
