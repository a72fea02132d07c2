package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/model"
)

// resolveSession returns the session a turn belongs to, creating one when
// the caller supplied no id. A supplied id this instance has never seen is
// recreated under the same id (log rotated, migrated workspace) so the
// conversation keeps its identity.
func (uc *implUseCase) resolveSession(ctx context.Context, sc model.Scope, sessionID string) (model.Session, error) {
	if sessionID == "" {
		return uc.createSession(ctx, sc, uc.newSessionID())
	}

	session, err := uc.logRepo.GetSession(ctx, sessionID)
	if err == nil {
		if session.WorkspaceID != sc.WorkspaceID {
			return model.Session{}, assistant.ErrSessionNotFound
		}
		return session, nil
	}
	if !errors.Is(err, repository.ErrSessionNotFound) {
		return model.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	uc.l.Warnf(ctx, "assistant: unknown session %s, recreating", sessionID)
	return uc.createSession(ctx, sc, sessionID)
}

func (uc *implUseCase) createSession(ctx context.Context, sc model.Scope, id string) (model.Session, error) {
	now := uc.now().UTC()
	session := model.Session{
		ID:           id,
		UserID:       sc.UserID,
		WorkspaceID:  sc.WorkspaceID,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := uc.logRepo.CreateSession(ctx, session); err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// newSessionID builds a client-visible id: a sortable millisecond prefix
// plus a random suffix.
func (uc *implUseCase) newSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("sess_%d_%s", uc.now().UnixMilli(), suffix)
}

func newMessageID() string {
	return uuid.NewString()
}

// appendTurn writes one turn durable-first. The durable log is
// authoritative; the activity touch and the semantic mirror are best
// effort.
func (uc *implUseCase) appendTurn(ctx context.Context, sc model.Scope, msg model.Message) error {
	opt := repository.AppendMessageOptions{
		Message:     msg,
		UserID:      sc.UserID,
		WorkspaceID: sc.WorkspaceID,
	}

	if err := uc.logRepo.AppendMessage(ctx, opt); err != nil {
		return fmt.Errorf("failed to append message to log: %w", err)
	}
	if err := uc.logRepo.TouchSession(ctx, msg.SessionID, msg.Timestamp); err != nil {
		uc.l.Warnf(ctx, "assistant: failed to touch session %s: %v", msg.SessionID, err)
	}
	if err := uc.semRepo.AppendMessage(ctx, opt); err != nil {
		uc.l.Warnf(ctx, "assistant: semantic mirror write failed for session %s: %v", msg.SessionID, err)
	}
	return nil
}

// loadHistory reads a conversation, semantic store first with the durable
// log as the authoritative fallback. The returned error reflects only the
// durable read; semantic failures are logged and absorbed.
func (uc *implUseCase) loadHistory(ctx context.Context, sessionID string, limit int) ([]model.Message, error) {
	opt := repository.ListMessagesOptions{SessionID: sessionID, Limit: limit}

	messages, err := uc.semRepo.ListMessages(ctx, opt)
	if err != nil {
		uc.l.Warnf(ctx, "assistant: semantic history read failed for session %s, falling back: %v", sessionID, err)
	} else if len(messages) > 0 {
		return messages, nil
	}

	return uc.logRepo.ListMessages(ctx, opt)
}

// appendErrorTurn leaves an explicit error reply so a logged user message
// is never left dangling. Callers pass a detached context when the request
// context is already gone.
func (uc *implUseCase) appendErrorTurn(ctx context.Context, sc model.Scope, sessionID string) {
	msg := model.Message{
		ID:        newMessageID(),
		SessionID: sessionID,
		Role:      model.RoleAssistant,
		Content:   errorTurnReply,
		Timestamp: uc.now().UTC(),
	}
	opt := repository.AppendMessageOptions{
		Message:     msg,
		UserID:      sc.UserID,
		WorkspaceID: sc.WorkspaceID,
	}
	if err := uc.logRepo.AppendMessage(ctx, opt); err != nil {
		uc.l.Errorf(ctx, "assistant: failed to append error turn for session %s: %v", sessionID, err)
	}
}
