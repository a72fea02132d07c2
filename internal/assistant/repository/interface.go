package repository

import (
	"context"
	"time"

	"compliance-assistant/internal/model"
)

// MessageStore is the capability shared by both conversation backends:
// append ordered turns, retrieve them by session. ListMessages returns up
// to Limit most recent messages in chronological order.
type MessageStore interface {
	AppendMessage(ctx context.Context, opt AppendMessageOptions) error
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, error)
}

// LogRepository is the durable conversation log (SQLite). It is the source
// of truth: writes here are authoritative and ordering between concurrent
// appends is whatever the log assigns.
type LogRepository interface {
	MessageStore

	CreateSession(ctx context.Context, session model.Session) error
	GetSession(ctx context.Context, id string) (model.Session, error)
	// TouchSession moves last_activity forward. Updates that would move it
	// backwards are ignored.
	TouchSession(ctx context.Context, id string, at time.Time) error
	CountMessages(ctx context.Context, sessionID string) (int, error)
}

// SemanticRepository is the vector-store mirror (Qdrant). Best-effort:
// callers treat write failures as non-fatal and fall back to the durable
// log on read failures.
type SemanticRepository interface {
	MessageStore

	// AppendFeedback records a feedback event on the learning timeline.
	AppendFeedback(ctx context.Context, event FeedbackEvent) error
}
