package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/model"
)

// CreateSession inserts the session row. created_at and last_activity start
// equal.
func (r *implRepository) CreateSession(ctx context.Context, session model.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO conversation_sessions (id, user_id, workspace_id, created_at, last_activity)
		 VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.UserID, session.WorkspaceID,
		session.CreatedAt.UTC(), session.LastActivity.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to create session %s: %v", session.ID, err)
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.l.Infof(ctx, "sqlite repository: created session %s (workspace=%s)", session.ID, session.WorkspaceID)
	return nil
}

// GetSession loads one session row by id.
func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	var session model.Session
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, workspace_id, created_at, last_activity
		 FROM conversation_sessions WHERE id = ?`, id,
	).Scan(&session.ID, &session.UserID, &session.WorkspaceID, &session.CreatedAt, &session.LastActivity)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, repository.ErrSessionNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to get session %s: %v", id, err)
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// TouchSession refreshes last_activity. The WHERE clause keeps it
// monotonic under concurrent appends.
func (r *implRepository) TouchSession(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE conversation_sessions SET last_activity = ?
		 WHERE id = ? AND last_activity < ?`,
		at.UTC(), id, at.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to touch session %s: %v", id, err)
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}
