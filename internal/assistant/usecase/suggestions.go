package usecase

import (
	"context"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/model"
)

// GetSuggestions computes proactive next steps from the current workspace
// state, outside any conversation.
func (uc *implUseCase) GetSuggestions(ctx context.Context, sc model.Scope, input assistant.SuggestionsInput) (assistant.SuggestionsOutput, error) {
	uc.l.Infof(ctx, "GetSuggestions: user=%s workspace=%s", sc.UserID, sc.WorkspaceID)

	snapshot := uc.aggregator.Gather(ctx, sc, clientHints(input.Context))
	suggestions := uc.suggester.Generate("", snapshot, model.Intent{Name: model.IntentUnknown}, nil)

	return assistant.SuggestionsOutput{
		Suggestions: suggestions,
		Context: assistant.ContextSummary{
			WorkspaceID:      sc.WorkspaceID,
			ComplianceScore:  snapshot.ComplianceScore,
			UnresolvedIssues: snapshot.UnresolvedIssues,
			PendingDocuments: snapshot.PendingDocuments,
		},
	}, nil
}
