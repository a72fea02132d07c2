package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/model"
)

// SubmitFeedback records feedback on an assistant message in the semantic
// learning timeline. Every polarity is persisted; negative feedback is as
// valuable as praise.
func (uc *implUseCase) SubmitFeedback(ctx context.Context, sc model.Scope, input assistant.FeedbackInput) (assistant.FeedbackOutput, error) {
	if strings.TrimSpace(input.Feedback) == "" {
		return assistant.FeedbackOutput{}, assistant.ErrEmptyFeedback
	}
	if input.SessionID == "" {
		return assistant.FeedbackOutput{}, assistant.ErrEmptySessionID
	}

	uc.l.Infof(ctx, "SubmitFeedback: user=%s session=%s message=%s", sc.UserID, input.SessionID, input.MessageID)

	event := repository.FeedbackEvent{
		ID:          uuid.NewString(),
		SessionID:   input.SessionID,
		MessageID:   input.MessageID,
		UserID:      sc.UserID,
		WorkspaceID: sc.WorkspaceID,
		Feedback:    input.Feedback,
		Timestamp:   uc.now().UTC(),
	}
	if err := uc.semRepo.AppendFeedback(ctx, event); err != nil {
		return assistant.FeedbackOutput{}, fmt.Errorf("failed to record feedback: %w", err)
	}

	return assistant.FeedbackOutput{
		Success: true,
		Message: "Thanks for the feedback. It helps me improve.",
	}, nil
}
