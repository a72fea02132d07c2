package usecase

import (
	"context"
	"errors"
	"fmt"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/model"
)

// GetHistory returns the persisted messages of one session, most recent
// first capped at the limit, re-ordered chronologically.
func (uc *implUseCase) GetHistory(ctx context.Context, sc model.Scope, input assistant.HistoryInput) (assistant.HistoryOutput, error) {
	if input.SessionID == "" {
		return assistant.HistoryOutput{}, assistant.ErrEmptySessionID
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	uc.l.Infof(ctx, "GetHistory: user=%s session=%s limit=%d", sc.UserID, input.SessionID, limit)

	session, err := uc.logRepo.GetSession(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return assistant.HistoryOutput{}, assistant.ErrSessionNotFound
		}
		return assistant.HistoryOutput{}, fmt.Errorf("failed to load session: %w", err)
	}
	// Sessions from other workspaces do not exist as far as the caller is
	// concerned.
	if session.WorkspaceID != sc.WorkspaceID {
		return assistant.HistoryOutput{}, assistant.ErrSessionNotFound
	}

	messages, err := uc.loadHistory(ctx, input.SessionID, limit)
	if err != nil {
		return assistant.HistoryOutput{}, fmt.Errorf("failed to load history: %w", err)
	}

	total, err := uc.logRepo.CountMessages(ctx, input.SessionID)
	if err != nil {
		uc.l.Warnf(ctx, "GetHistory: count unavailable for session %s: %v", input.SessionID, err)
		total = len(messages)
	}

	return assistant.HistoryOutput{
		SessionID:     input.SessionID,
		Messages:      messages,
		TotalMessages: total,
	}, nil
}
