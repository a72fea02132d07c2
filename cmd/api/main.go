package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"compliance-assistant/config"
	_ "compliance-assistant/docs" // Swagger docs
	"compliance-assistant/internal/httpserver"
	"compliance-assistant/pkg/datemath"
	"compliance-assistant/pkg/gcalendar"
	"compliance-assistant/pkg/llmprovider"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
	"compliance-assistant/pkg/qdrant"
	"compliance-assistant/pkg/voyage"
)

// @title       Compliance Assistant API
// @description Conversational assistant for compliance workspaces: chat, direct commands, proactive suggestions, session history, and feedback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Compliance Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Durable conversation log (SQLite)
	if dir := filepath.Dir(cfg.SQLite.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error(ctx, "Failed to create database directory: ", err)
			return
		}
	}

	db, err := sql.Open("sqlite", cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open conversation log: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping conversation log: ", err)
		return
	}
	logger.Infof(ctx, "Conversation log ready at %s", cfg.SQLite.Path)

	// 4. Semantic store (Qdrant + Voyage embeddings)
	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	if err := qdrantClient.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name: cfg.Qdrant.CollectionName,
		Vectors: qdrant.VectorConfig{
			Size:     cfg.Qdrant.VectorSize,
			Distance: "Cosine",
		},
	}); err != nil {
		// An existing collection also lands here; the mirror is best-effort
		// either way, so startup continues.
		logger.Warnf(ctx, "Qdrant collection setup: %v", err)
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}
	// Conversation turns are stored content, so embed them as documents.
	embedder.WithInputType(voyage.InputTypeDocument)
	if cfg.Voyage.Model != "" {
		embedder.WithModel(cfg.Voyage.Model)
	}

	// 5. Compliance platform client
	platformClient := platform.NewClient(cfg.Platform.URL, cfg.Platform.APIKey)

	// 6. LLM provider chain
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 7. Relative-date parsing
	timezone := cfg.Environment.Timezone
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		dates, _ = datemath.NewParser(timezone)
	}
	// Downstream consumers read the effective timezone from the config.
	cfg.Environment.Timezone = timezone

	// 8. Google Calendar (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 9. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:   logger,
		Config:   cfg,
		DB:       db,
		Qdrant:   qdrantClient,
		Embedder: embedder,
		Platform: platformClient,
		LLM:      llmManager,
		Calendar: calendarClient,
		Dates:    dates,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run until interrupted
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDurationOr parses a config duration, keeping the fallback when the
// value is empty or malformed.
func parseDurationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
