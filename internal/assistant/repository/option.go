package repository

import (
	"time"

	"compliance-assistant/internal/model"
)

// AppendMessageOptions holds the parameters for appending one turn.
// UserID and WorkspaceID scope the semantic-store payload; the durable log
// keeps them on the session row only.
type AppendMessageOptions struct {
	Message     model.Message
	UserID      string
	WorkspaceID string
}

// ListMessagesOptions holds the parameters for reading a conversation.
type ListMessagesOptions struct {
	SessionID string
	Limit     int // max messages (default 50)
}

// FeedbackEvent is one feedback record on the semantic learning timeline.
type FeedbackEvent struct {
	ID          string
	SessionID   string
	MessageID   string
	UserID      string
	WorkspaceID string
	Feedback    string
	Timestamp   time.Time
}
