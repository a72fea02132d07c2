package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/model"
)

// Chat handles one conversational turn end to end: session, context,
// classification, dispatch or free-form answer, persistence, suggestions.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	uc.l.Infof(ctx, "Chat: user=%s workspace=%s session=%q", sc.UserID, sc.WorkspaceID, input.SessionID)

	// Step 1: Resolve the session before anything is persisted.
	session, err := uc.resolveSession(ctx, sc, input.SessionID)
	if err != nil {
		return assistant.ChatOutput{}, err
	}

	// Step 2: History and workspace context have no ordering dependency;
	// fetch them concurrently. Neither failure aborts the turn.
	var (
		history  []model.Message
		snapshot model.ContextSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var histErr error
		history, histErr = uc.loadHistory(gctx, session.ID, defaultHistoryLimit)
		if histErr != nil {
			uc.l.Warnf(gctx, "Chat: history unavailable for session %s: %v", session.ID, histErr)
		}
		return nil
	})
	g.Go(func() error {
		snapshot = uc.aggregator.Gather(gctx, sc, clientHints(input.Context))
		return nil
	})
	if err := g.Wait(); err != nil {
		return assistant.ChatOutput{}, err
	}

	// Step 3: Classify, with a best-effort semantic hint.
	hint := uc.routerHint(ctx, message, history)
	intent := uc.classifier.Detect(ctx, message, hint)

	// Step 4: Persist the user turn. A message that cannot be logged
	// fails the turn before any action fires.
	userMsg := model.Message{
		ID:        newMessageID(),
		SessionID: session.ID,
		Role:      model.RoleUser,
		Content:   message,
		Timestamp: uc.now().UTC(),
		Intent:    string(intent.Name),
		Entities:  intent.Parameters,
	}
	if err := uc.appendTurn(ctx, sc, userMsg); err != nil {
		return assistant.ChatOutput{}, fmt.Errorf("failed to append user message: %w", err)
	}

	// Step 5: Dispatch an action, ask for the missing parameter, or
	// answer through the provider chain.
	var (
		reply         string
		clientActions []model.ClientAction
	)
	switch {
	case intent.RequiresAction && !uc.classifier.ValidateParameters(intent):
		reply = uc.responder.Clarify(intent)
	case intent.RequiresAction:
		result := uc.executor.Execute(ctx, sc, intent.Action, intent.Parameters, snapshot)
		reply = uc.responder.FromAction(result, snapshot)
		clientActions = result.Actions
	default:
		reply = uc.responder.FromQuery(ctx, message, snapshot, history, hint)
	}

	// Step 6: Persist the assistant turn. On failure, leave an explicit
	// error turn so the user message is not dangling, then surface the
	// failure. The error turn survives caller disconnects.
	assistantMsg := model.Message{
		ID:        newMessageID(),
		SessionID: session.ID,
		Role:      model.RoleAssistant,
		Content:   reply,
		Timestamp: uc.now().UTC(),
		Intent:    string(intent.Name),
		Actions:   clientActions,
	}
	if err := uc.appendTurn(ctx, sc, assistantMsg); err != nil {
		uc.l.Errorf(ctx, "Chat: failed to append assistant message for session %s: %v", session.ID, err)
		uc.appendErrorTurn(context.WithoutCancel(ctx), sc, session.ID)
		return assistant.ChatOutput{}, fmt.Errorf("failed to append assistant message: %w", err)
	}

	// Step 7: Follow-up suggestions, then the assembled reply.
	suggestions := uc.suggester.Generate(reply, snapshot, intent, hint)

	return assistant.ChatOutput{
		SessionID:   session.ID,
		Message:     reply,
		Actions:     clientActions,
		Suggestions: suggestions,
		Context: assistant.ChatContext{
			Intent:     string(intent.Name),
			Confidence: intent.Confidence,
			Entities:   entitiesFromParameters(intent),
		},
	}, nil
}
