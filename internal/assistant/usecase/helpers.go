package usecase

import (
	"context"
	"fmt"
	"sort"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/model"
	"compliance-assistant/internal/workspace"
)

// entitiesFromParameters flattens extracted parameters into the client
// entity shape, sorted by key so output is stable.
func entitiesFromParameters(intent model.Intent) []assistant.Entity {
	if len(intent.Parameters) == 0 {
		return nil
	}

	keys := make([]string, 0, len(intent.Parameters))
	for k := range intent.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entities := make([]assistant.Entity, 0, len(keys))
	for _, k := range keys {
		entities = append(entities, assistant.Entity{
			Type:       k,
			Value:      intent.Parameters[k],
			Confidence: intent.Confidence,
		})
	}
	return entities
}

// mergeParameters overlays caller-supplied parameters on the extracted
// ones, caller winning on conflicts.
func mergeParameters(extracted, overrides map[string]interface{}) map[string]interface{} {
	if len(extracted) == 0 && len(overrides) == 0 {
		return nil
	}

	merged := make(map[string]interface{}, len(extracted)+len(overrides))
	for k, v := range extracted {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// routerHint asks the semantic router for a second opinion on the message.
// Optional and best effort: a nil router or a failed call yields a nil
// hint, which the pattern classifier works without.
func (uc *implUseCase) routerHint(ctx context.Context, message string, history []model.Message) *model.NLPHint {
	if uc.router == nil {
		return nil
	}

	recent := history
	if len(recent) > routerHistoryWindow {
		recent = recent[len(recent)-routerHistoryWindow:]
	}
	lines := make([]string, 0, len(recent))
	for _, msg := range recent {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}

	out, err := uc.router.Classify(ctx, message, lines)
	if err != nil {
		uc.l.Warnf(ctx, "assistant: semantic routing failed: %v", err)
		return nil
	}
	return out.Hint()
}

// clientHints converts the transport-level context block into aggregator
// hints.
func clientHints(c assistant.ClientContext) workspace.Hints {
	return workspace.Hints{
		CurrentPage:       c.CurrentPage,
		RecentActions:     c.RecentActions,
		SelectedDocuments: c.SelectedDocuments,
	}
}
