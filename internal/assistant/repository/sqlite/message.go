package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/model"
)

const defaultListLimit = 50

// AppendMessage inserts one turn. Entities and actions are serialized as
// JSON text columns; an empty string marks absence.
func (r *implRepository) AppendMessage(ctx context.Context, opt repository.AppendMessageOptions) error {
	msg := opt.Message

	entitiesJSON, err := marshalOptional(msg.Entities)
	if err != nil {
		return fmt.Errorf("failed to serialize entities: %w", err)
	}
	actionsJSON, err := marshalOptional(msg.Actions)
	if err != nil {
		return fmt.Errorf("failed to serialize actions: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO conversation_messages (id, session_id, role, content, timestamp, intent, entities_json, actions_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.SessionID, string(msg.Role), msg.Content,
		msg.Timestamp.UTC(), msg.Intent, entitiesJSON, actionsJSON,
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to append message %s: %v", msg.ID, err)
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ListMessages returns up to Limit most recent messages of a session in
// chronological order. The read is reverse-chronological (timestamp with
// seq as insertion-order tie-break) and reversed before returning.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, timestamp, intent, entities_json, actions_json
		 FROM conversation_messages
		 WHERE session_id = ?
		 ORDER BY timestamp DESC, seq DESC
		 LIMIT ?`,
		opt.SessionID, limit,
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to list messages for %s: %v", opt.SessionID, err)
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.Message, 0, limit)
	for rows.Next() {
		var (
			msg          model.Message
			role         string
			entitiesJSON string
			actionsJSON  string
		)
		if err := rows.Scan(&msg.ID, &msg.SessionID, &role, &msg.Content, &msg.Timestamp, &msg.Intent, &entitiesJSON, &actionsJSON); err != nil {
			r.l.Errorf(ctx, "sqlite repository: failed to scan message row: %v", err)
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msg.Role = model.Role(role)

		if entitiesJSON != "" {
			if err := json.Unmarshal([]byte(entitiesJSON), &msg.Entities); err != nil {
				r.l.Warnf(ctx, "sqlite repository: dropping malformed entities for message %s: %v", msg.ID, err)
			}
		}
		if actionsJSON != "" {
			if err := json.Unmarshal([]byte(actionsJSON), &msg.Actions); err != nil {
				r.l.Warnf(ctx, "sqlite repository: dropping malformed actions for message %s: %v", msg.ID, err)
			}
		}

		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}

	// Oldest first for callers.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// CountMessages returns the total number of messages in a session.
func (r *implRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversation_messages WHERE session_id = ?`, sessionID,
	).Scan(&count)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: failed to count messages for %s: %v", sessionID, err)
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

// marshalOptional serializes v unless it is empty.
func marshalOptional(v interface{}) (string, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		if len(val) == 0 {
			return "", nil
		}
	case []model.ClientAction:
		if len(val) == 0 {
			return "", nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
