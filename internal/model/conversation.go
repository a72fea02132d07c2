package model

import "time"

// Role is the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Session identifies one ongoing conversation. Exactly one durable-log row
// exists per session; LastActivity must only move forward. Sessions are
// never deleted by this service (retention is an external policy).
type Session struct {
	ID           string
	UserID       string
	WorkspaceID  string
	CreatedAt    time.Time
	LastActivity time.Time
}

// Message is one conversation turn. Immutable once written. Ordering is
// defined by Timestamp with durable-log insertion order as the tie-break.
type Message struct {
	ID        string
	SessionID string
	Role      Role
	Content   string
	Timestamp time.Time
	Intent    string                 // intent name, empty for plain turns
	Entities  map[string]interface{} // extracted parameters, nil when absent
	Actions   []ClientAction         // actions returned with the turn, nil when absent
}
