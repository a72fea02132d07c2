package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/model"
)

func seedConversation(f *fixture, sessionID string, n int) {
	f.logRepo.sessions[sessionID] = model.Session{ID: sessionID, UserID: "user-1", WorkspaceID: "ws-1"}
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		f.logRepo.messages = append(f.logRepo.messages, model.Message{
			ID:        string(rune('a' + i)),
			SessionID: sessionID,
			Role:      role,
			Content:   []string{"first", "second", "third", "fourth"}[i%4],
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
	}
}

func TestGetHistory(t *testing.T) {
	t.Run("EmptySessionID", func(t *testing.T) {
		f := newFixture()
		_, err := f.useCase().GetHistory(context.Background(), testScope, assistant.HistoryInput{})
		if !errors.Is(err, assistant.ErrEmptySessionID) {
			t.Errorf("expected ErrEmptySessionID, got %v", err)
		}
	})

	t.Run("UnknownSession", func(t *testing.T) {
		f := newFixture()
		_, err := f.useCase().GetHistory(context.Background(), testScope, assistant.HistoryInput{SessionID: "sess_missing"})
		if !errors.Is(err, assistant.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("ForeignWorkspaceSessionHidden", func(t *testing.T) {
		f := newFixture()
		f.logRepo.sessions["sess_2"] = model.Session{ID: "sess_2", UserID: "user-9", WorkspaceID: "ws-other"}

		_, err := f.useCase().GetHistory(context.Background(), testScope, assistant.HistoryInput{SessionID: "sess_2"})
		if !errors.Is(err, assistant.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("ReturnsMostRecentWithTotal", func(t *testing.T) {
		f := newFixture()
		seedConversation(f, "sess_1", 3)

		out, err := f.useCase().GetHistory(context.Background(), testScope, assistant.HistoryInput{SessionID: "sess_1", Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalMessages != 3 {
			t.Errorf("expected total 3, got %d", out.TotalMessages)
		}
		if len(out.Messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(out.Messages))
		}
		// Most recent two, still chronological.
		if out.Messages[0].Content != "second" || out.Messages[1].Content != "third" {
			t.Errorf("unexpected window: %+v", out.Messages)
		}
	})

	t.Run("DefaultLimitIsFifty", func(t *testing.T) {
		f := newFixture()
		seedConversation(f, "sess_1", 2)

		if _, err := f.useCase().GetHistory(context.Background(), testScope, assistant.HistoryInput{SessionID: "sess_1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.logRepo.listCalls) != 1 || f.logRepo.listCalls[0].Limit != 50 {
			t.Errorf("expected one durable read with limit 50, got %+v", f.logRepo.listCalls)
		}
	})

	t.Run("SemanticStoreServesTheRead", func(t *testing.T) {
		f := newFixture()
		seedConversation(f, "sess_1", 2)
		f.semRepo.listFunc = func(opt repository.ListMessagesOptions) ([]model.Message, error) {
			return []model.Message{
				{ID: "a", SessionID: "sess_1", Role: model.RoleUser, Content: "first"},
				{ID: "b", SessionID: "sess_1", Role: model.RoleAssistant, Content: "second"},
			}, nil
		}

		out, err := f.useCase().GetHistory(context.Background(), testScope, assistant.HistoryInput{SessionID: "sess_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Messages) != 2 {
			t.Errorf("expected the semantic result, got %+v", out.Messages)
		}
		if len(f.logRepo.listCalls) != 0 {
			t.Errorf("durable log must not be read when the semantic store answers")
		}
	})

	t.Run("CountFailureFallsBackToWindowSize", func(t *testing.T) {
		f := newFixture()
		seedConversation(f, "sess_1", 2)
		f.logRepo.countErr = errors.New("table locked")

		out, err := f.useCase().GetHistory(context.Background(), testScope, assistant.HistoryInput{SessionID: "sess_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalMessages != 2 {
			t.Errorf("expected the window size as total, got %d", out.TotalMessages)
		}
	})
}
