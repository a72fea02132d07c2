package model

// SuggestionPriority ranks a suggestion.
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// SuggestionType categorizes a suggestion.
type SuggestionType string

const (
	SuggestionAction      SuggestionType = "action"
	SuggestionInsight     SuggestionType = "insight"
	SuggestionReminder    SuggestionType = "reminder"
	SuggestionDeadline    SuggestionType = "deadline"
	SuggestionAchievement SuggestionType = "achievement"
)

// SuggestionCommand is an executable follow-up attached to a suggestion.
// Command is a free-text message the client can feed back through chat or
// the command endpoint.
type SuggestionCommand struct {
	Label   string `json:"label"`
	Command string `json:"command"`
}

// Suggestion is a ranked next-step prompt. Computed per response; never
// persisted.
type Suggestion struct {
	Priority SuggestionPriority  `json:"priority"`
	Type     SuggestionType      `json:"type"`
	Message  string              `json:"message"`
	Commands []SuggestionCommand `json:"commands,omitempty"`
}
