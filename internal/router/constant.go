package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are the intent router for a compliance workspace assistant. Analyze the message and determine the user's intent.

Current message: "%s"

Possible intents:
1. check_compliance: run or review a compliance check against frameworks like GDPR, HIPAA, SOC 2
2. upload_document: upload or attach a policy, evidence file, or other document
3. search_documents: search for or locate existing documents
4. generate_report: produce a compliance or audit report
5. find_issues: list open issues, gaps, or violations
6. assign_task: assign work to a teammate
7. resolve_issue: resolve or close an existing issue
8. get_analytics: workspace statistics for a recent period
9. get_trends: compliance score history over months
10. schedule_task: schedule work or set a reminder
11. team_operations: invite, remove, or list workspace members
12. get_help: ask what the assistant can do
13. general_question: greetings, definitions, and everything else

Return JSON with this format:
{
  "intent": "<one of the intents above>",
  "confidence": 0-100,
  "entities": {"frameworks": ["gdpr"], "assignee": "name"},
  "reasoning": "One short sentence"
}

Only include entity keys you actually found in the message.`

	PromptHistoryPrefix = "Recent conversation:\n"
)

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterFallbackIntent     = "general_question"
	RouterFallbackConfidence = 50
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to general_question"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to general_question"
)

// Fallback reasons
const (
	ReasonParsingError  = "Fallback due to parsing error"
	ReasonEmptyResponse = "Fallback due to empty response"
)
