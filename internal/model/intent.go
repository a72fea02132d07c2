package model

// IntentName is a classified user goal. Closed set: the classifier only
// ever emits names listed here, and the action executor's dispatch table
// covers every action-requiring one.
type IntentName string

const (
	IntentCheckCompliance IntentName = "check_compliance"
	IntentUploadDocument  IntentName = "upload_document"
	IntentSearchDocuments IntentName = "search_documents"
	IntentGenerateReport  IntentName = "generate_report"
	IntentFindIssues      IntentName = "find_issues"
	IntentAssignTask      IntentName = "assign_task"
	IntentResolveIssue    IntentName = "resolve_issue"
	IntentGetAnalytics    IntentName = "get_analytics"
	IntentGetTrends       IntentName = "get_trends"
	IntentScheduleTask    IntentName = "schedule_task"
	IntentGetHelp         IntentName = "get_help"
	IntentTeamOperations  IntentName = "team_operations"
	IntentGeneralQuestion IntentName = "general_question"
	IntentUnknown         IntentName = "unknown"
)

// Intent is a classification result. Produced fresh per message; never
// persisted standalone, only embedded in a Message.
type Intent struct {
	Name           IntentName
	Confidence     float64 // 0..1
	RequiresAction bool
	Action         string                 // dispatch-table key, empty when RequiresAction is false
	Parameters     map[string]interface{} // extracted entities, nil when none
}

// NLPHint is an optional classification hint from an external NLP
// collaborator, consulted only when no local pattern matches.
type NLPHint struct {
	Intent     IntentName
	Confidence float64
	Entities   map[string]interface{}
}
