package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"compliance-assistant/config"
	"compliance-assistant/pkg/datemath"
	"compliance-assistant/pkg/gcalendar"
	"compliance-assistant/pkg/llmprovider"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
	"compliance-assistant/pkg/qdrant"
	"compliance-assistant/pkg/voyage"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin *gin.Engine
	l   log.Logger
	cfg *config.Config

	// Conversation stores
	db       *sql.DB
	qdrant   *qdrant.Client
	embedder *voyage.Client

	// Collaborators handed to the assistant domain
	platform platform.IPlatform
	llm      *llmprovider.Manager
	calendar *gcalendar.Client // optional
	dates    *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger log.Logger
	Config *config.Config

	// Conversation stores
	DB       *sql.DB
	Qdrant   *qdrant.Client
	Embedder *voyage.Client

	// Collaborators
	Platform platform.IPlatform
	LLM      *llmprovider.Manager
	Calendar *gcalendar.Client // optional
	Dates    *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Config == nil {
		return nil, errors.New("config is required")
	}
	gin.SetMode(cfg.Config.HTTPServer.Mode)

	srv := &HTTPServer{
		l:        logger,
		gin:      gin.New(),
		cfg:      cfg.Config,
		db:       cfg.DB,
		qdrant:   cfg.Qdrant,
		embedder: cfg.Embedder,
		platform: cfg.Platform,
		llm:      cfg.LLM,
		calendar: cfg.Calendar,
		dates:    cfg.Dates,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg.HTTPServer.Mode == "" {
		return errors.New("mode is required")
	}
	if srv.cfg.HTTPServer.Port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.qdrant == nil {
		return errors.New("qdrant client is required")
	}
	if srv.embedder == nil {
		return errors.New("embedding client is required")
	}
	if srv.platform == nil {
		return errors.New("platform client is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
