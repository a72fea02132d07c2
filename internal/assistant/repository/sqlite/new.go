package sqlite

import (
	"database/sql"
	"fmt"

	"compliance-assistant/internal/assistant/repository"
	pkgLog "compliance-assistant/pkg/log"
)

// schema is applied on startup. IF NOT EXISTS keeps restarts idempotent.
// seq is the insertion-order tie-break for messages sharing a timestamp.
const schema = `
CREATE TABLE IF NOT EXISTS conversation_sessions (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	workspace_id  TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL,
	last_activity TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS conversation_messages (
	seq           INTEGER PRIMARY KEY AUTOINCREMENT,
	id            TEXT NOT NULL UNIQUE,
	session_id    TEXT NOT NULL,
	role          TEXT NOT NULL,
	content       TEXT NOT NULL,
	timestamp     TIMESTAMP NOT NULL,
	intent        TEXT NOT NULL DEFAULT '',
	entities_json TEXT NOT NULL DEFAULT '',
	actions_json  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_conversation_messages_session
	ON conversation_messages (session_id, timestamp);
`

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates the durable conversation log backed by SQLite and applies
// the schema.
func New(db *sql.DB, l pkgLog.Logger) (repository.LogRepository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply conversation schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}
