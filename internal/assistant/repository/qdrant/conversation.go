package qdrant

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/model"
	pkgQdrant "compliance-assistant/pkg/qdrant"
)

// Payload kinds on the conversation timeline.
const (
	kindMessage  = "message"
	kindFeedback = "feedback"
)

const (
	defaultListLimit   = 50
	scrollPageSize     = 100
	embeddingTextLimit = 1000
)

// AppendMessage embeds one turn and upserts it. The point id is derived
// deterministically from the message id, so replays overwrite instead of
// duplicating.
func (r *implRepository) AppendMessage(ctx context.Context, opt repository.AppendMessageOptions) error {
	msg := opt.Message

	vectors, err := r.embedder.Embed(ctx, []string{embeddingText(msg)})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to embed message %s: %v", msg.ID, err)
		return fmt.Errorf("failed to generate embedding: %w", err)
	}

	point := pkgQdrant.Point{
		ID:     recordIDToUUID(msg.ID),
		Vector: vectors[0],
		Payload: map[string]interface{}{
			"message_id":   msg.ID,
			"session_id":   msg.SessionID,
			"workspace_id": opt.WorkspaceID,
			"user_id":      opt.UserID,
			"role":         string(msg.Role),
			"content":      msg.Content,
			"timestamp":    msg.Timestamp.UTC().Format(time.RFC3339Nano),
			"intent":       msg.Intent,
			"kind":         kindMessage,
		},
	}

	req := pkgQdrant.UpsertPointsRequest{Points: []pkgQdrant.Point{point}}
	if err := r.client.UpsertPoints(ctx, r.collectionName, req); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert message %s: %v", msg.ID, err)
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// ListMessages scrolls the session timeline by payload filter (no vector
// scoring) and returns up to Limit most recent messages in chronological
// order.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	filter := map[string]interface{}{
		"must": []map[string]interface{}{
			{"key": "session_id", "match": map[string]interface{}{"value": opt.SessionID}},
			{"key": "kind", "match": map[string]interface{}{"value": kindMessage}},
		},
	}

	var (
		messages []model.Message
		offset   interface{}
	)
	for {
		resp, err := r.client.ScrollPoints(ctx, r.collectionName, pkgQdrant.ScrollRequest{
			Filter:      filter,
			Limit:       scrollPageSize,
			Offset:      offset,
			WithPayload: true,
		})
		if err != nil {
			r.l.Errorf(ctx, "qdrant repository: failed to scroll session %s: %v", opt.SessionID, err)
			return nil, fmt.Errorf("failed to scroll points: %w", err)
		}

		for _, point := range resp.Result.Points {
			msg, ok := messageFromPayload(point.Payload)
			if !ok {
				r.l.Warnf(ctx, "qdrant repository: skipping malformed payload for point %v", point.ID)
				continue
			}
			messages = append(messages, msg)
		}

		if resp.Result.NextPageOffset == nil {
			break
		}
		offset = resp.Result.NextPageOffset
	}

	// Scroll order is storage order; re-establish chronology.
	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].Timestamp.Equal(messages[j].Timestamp) {
			return messages[i].Timestamp.Before(messages[j].Timestamp)
		}
		return messages[i].ID < messages[j].ID
	})
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	return messages, nil
}

// AppendFeedback records a feedback event on the same timeline with
// kind=feedback, so recall over the session surfaces what the user liked
// or disliked.
func (r *implRepository) AppendFeedback(ctx context.Context, event repository.FeedbackEvent) error {
	vectors, err := r.embedder.Embed(ctx, []string{truncate("feedback: "+event.Feedback, embeddingTextLimit)})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to embed feedback %s: %v", event.ID, err)
		return fmt.Errorf("failed to generate embedding: %w", err)
	}

	point := pkgQdrant.Point{
		ID:     recordIDToUUID(event.ID),
		Vector: vectors[0],
		Payload: map[string]interface{}{
			"feedback_id":  event.ID,
			"message_id":   event.MessageID,
			"session_id":   event.SessionID,
			"workspace_id": event.WorkspaceID,
			"user_id":      event.UserID,
			"content":      event.Feedback,
			"timestamp":    event.Timestamp.UTC().Format(time.RFC3339Nano),
			"kind":         kindFeedback,
		},
	}

	req := pkgQdrant.UpsertPointsRequest{Points: []pkgQdrant.Point{point}}
	if err := r.client.UpsertPoints(ctx, r.collectionName, req); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert feedback %s: %v", event.ID, err)
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: recorded feedback %s for message %s", event.ID, event.MessageID)
	return nil
}

// recordIDToUUID converts a record id (arbitrary string) to UUID for
// Qdrant. Qdrant requires point ids to be UUID or uint64; UUID v5 keeps
// the mapping deterministic.
func recordIDToUUID(id string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // DNS namespace
	return uuid.NewSHA1(namespace, []byte(id)).String()
}

// messageFromPayload rebuilds a message from a scrolled payload.
func messageFromPayload(payload map[string]interface{}) (model.Message, bool) {
	id, ok := payloadString(payload, "message_id")
	if !ok {
		return model.Message{}, false
	}
	sessionID, ok := payloadString(payload, "session_id")
	if !ok {
		return model.Message{}, false
	}
	role, ok := payloadString(payload, "role")
	if !ok {
		return model.Message{}, false
	}
	content, ok := payloadString(payload, "content")
	if !ok {
		return model.Message{}, false
	}
	rawTimestamp, ok := payloadString(payload, "timestamp")
	if !ok {
		return model.Message{}, false
	}
	timestamp, err := time.Parse(time.RFC3339Nano, rawTimestamp)
	if err != nil {
		return model.Message{}, false
	}

	intent, _ := payloadString(payload, "intent")

	return model.Message{
		ID:        id,
		SessionID: sessionID,
		Role:      model.Role(role),
		Content:   content,
		Timestamp: timestamp,
		Intent:    intent,
	}, true
}

func payloadString(payload map[string]interface{}, key string) (string, bool) {
	raw, exists := payload[key]
	if !exists {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

// embeddingText builds the text to embed for one turn. Role prefix keeps
// user and assistant phrasings distinguishable in vector space.
func embeddingText(msg model.Message) string {
	return truncate(string(msg.Role)+": "+msg.Content, embeddingTextLimit)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
