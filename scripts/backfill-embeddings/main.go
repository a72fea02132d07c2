package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"compliance-assistant/config"
	"compliance-assistant/internal/assistant/repository"
	qdrantRepo "compliance-assistant/internal/assistant/repository/qdrant"
	sqliteRepo "compliance-assistant/internal/assistant/repository/sqlite"
	"compliance-assistant/pkg/log"
	pkgQdrant "compliance-assistant/pkg/qdrant"
	"compliance-assistant/pkg/voyage"
)

// Re-mirrors the durable conversation log into the Qdrant semantic store.
// Run after the collection was recreated or the mirror drifted (the mirror
// is best-effort, so individual writes may have been dropped).
//
// Usage: go run scripts/backfill-embeddings/main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Durable log (source of truth)
	db, err := sql.Open("sqlite", cfg.SQLite.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open conversation log: %v", err)
	}
	defer db.Close()

	logRepo, err := sqliteRepo.New(db, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize conversation log: %v", err)
	}

	// Semantic mirror
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	semRepo := qdrantRepo.New(qdrantClient, embeddingClient, cfg.Qdrant.CollectionName, logger)

	logger.Info(ctx, "Starting backfill process...")

	rows, err := db.QueryContext(ctx, `SELECT id, user_id, workspace_id FROM conversation_sessions ORDER BY created_at`)
	if err != nil {
		logger.Fatalf(ctx, "Failed to list sessions: %v", err)
	}

	type sessionRow struct {
		id          string
		userID      string
		workspaceID string
	}
	var sessions []sessionRow
	for rows.Next() {
		var s sessionRow
		if err := rows.Scan(&s.id, &s.userID, &s.workspaceID); err != nil {
			rows.Close()
			logger.Fatalf(ctx, "Failed to scan session row: %v", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		logger.Fatalf(ctx, "Failed to iterate sessions: %v", err)
	}
	rows.Close()

	logger.Infof(ctx, "Found %d sessions to mirror", len(sessions))

	mirrored, failed := 0, 0
	for _, s := range sessions {
		messages, err := logRepo.ListMessages(ctx, repository.ListMessagesOptions{
			SessionID: s.id,
			Limit:     1000, // Adjust as needed
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to list messages for session %s: %v", s.id, err)
			continue
		}

		for _, msg := range messages {
			if err := semRepo.AppendMessage(ctx, repository.AppendMessageOptions{
				Message:     msg,
				UserID:      s.userID,
				WorkspaceID: s.workspaceID,
			}); err != nil {
				logger.Errorf(ctx, "Failed to embed message %s: %v", msg.ID, err)
				failed++
				continue
			}
			mirrored++
		}
		logger.Infof(ctx, "Session %s: %d messages mirrored", s.id, len(messages))
	}

	logger.Infof(ctx, "Backfill complete! %d messages mirrored, %d failed.", mirrored, failed)
}
