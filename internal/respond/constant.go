package respond

// Score bands for compliance summaries.
const (
	scoreExcellent = 90
	scoreGood      = 75
	scoreFair      = 60
)

// LLM parameters for free-form answers.
const (
	queryTemperature = 0.3
	queryMaxTokens   = 512

	// historyWindow is the number of messages (5 turns) carried into the
	// prompt as conversational grounding.
	historyWindow = 10
)

// Fallback replies.
const (
	// FallbackReply is returned when the provider chain fails or answers
	// with empty text.
	FallbackReply = "I couldn't process that right now. Please try again in a moment, or ask me something else."

	// genericSuccessReply covers action results with no dedicated template.
	genericSuccessReply = "Done. Let me know if you need anything else."
)

// Clarifying questions for intents whose required parameter was missing.
const (
	clarifyAssignTask   = `Who should I assign this to? Try something like "Assign the access review to sarah".`
	clarifyResolveIssue = `Which issue should I resolve? Give me a reference, for example "resolve issue #42".`
	clarifyGeneric      = "I need a bit more detail to do that. Could you rephrase with the specifics?"
)
