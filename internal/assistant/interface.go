package assistant

import (
	"context"

	"compliance-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Chat handles one conversational turn: classify the message, gather
	// workspace context, dispatch an action or answer via the LLM, persist
	// the turn, and return the reply with follow-up suggestions.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// ExecuteCommand runs a direct command without conversation persistence.
	ExecuteCommand(ctx context.Context, sc model.Scope, input ExecuteCommandInput) (ExecuteCommandOutput, error)

	// GetSuggestions returns proactive next-step suggestions from the
	// current workspace state.
	GetSuggestions(ctx context.Context, sc model.Scope, input SuggestionsInput) (SuggestionsOutput, error)

	// GetHistory returns the persisted messages of one session.
	GetHistory(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)

	// SubmitFeedback records user feedback on an assistant message in the
	// semantic learning timeline.
	SubmitFeedback(ctx context.Context, sc model.Scope, input FeedbackInput) (FeedbackOutput, error)
}
