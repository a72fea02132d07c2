package model

// Action names recognized by the executor's dispatch table. The classifier
// only ever emits names listed here.
const (
	ActionRunComplianceCheck    = "run_compliance_check"
	ActionPrepareDocumentUpload = "prepare_document_upload"
	ActionSearchDocuments       = "search_documents"
	ActionGenerateReport        = "generate_report"
	ActionListIssues            = "list_issues"
	ActionAssignTask            = "assign_task"
	ActionResolveIssue          = "resolve_issue"
	ActionGetAnalytics          = "get_analytics"
	ActionGetTrends             = "get_trends"
	ActionScheduleTask          = "schedule_task"
	ActionTeamOperations        = "team_operations"
)

// ClientActionType tells the caller what to do with a returned action.
type ClientActionType string

const (
	ClientActionNavigate ClientActionType = "navigate"
	ClientActionAPICall  ClientActionType = "api_call"
	ClientActionDownload ClientActionType = "download"
	ClientActionDisplay  ClientActionType = "display"
)

// ClientAction is a follow-up operation for the caller to perform.
type ClientAction struct {
	Type     ClientActionType       `json:"type"`
	Target   string                 `json:"target,omitempty"`   // navigate
	Endpoint string                 `json:"endpoint,omitempty"` // api_call
	Method   string                 `json:"method,omitempty"`   // api_call
	Payload  map[string]interface{} `json:"payload,omitempty"`  // api_call
	URL      string                 `json:"url,omitempty"`      // download
	Filename string                 `json:"filename,omitempty"` // download
	Data     map[string]interface{} `json:"data,omitempty"`     // display
}

// ActionResult is the normalized outcome of dispatching an intent to its
// handler. Transient; folded into the assistant Message for persistence.
type ActionResult struct {
	Success bool
	Action  string
	Error   string // non-empty exactly when Success is false
	Data    map[string]interface{}
	Actions []ClientAction
}
