package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"compliance-assistant/internal/actions"
	assistantHTTP "compliance-assistant/internal/assistant/delivery/http"
	qdrantRepo "compliance-assistant/internal/assistant/repository/qdrant"
	sqliteRepo "compliance-assistant/internal/assistant/repository/sqlite"
	"compliance-assistant/internal/assistant/usecase"
	"compliance-assistant/internal/classifier"
	"compliance-assistant/internal/middleware"
	"compliance-assistant/internal/respond"
	"compliance-assistant/internal/router"
	"compliance-assistant/internal/suggest"
	"compliance-assistant/internal/workspace"
)

// setupAssistantDomain initializes the assistant domain and registers its
// routes.
//
// Pattern: conversation stores, then pipeline components, then use case,
// then HTTP handler and routes.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Conversation stores
	logRepo, err := sqliteRepo.New(srv.db, srv.l)
	if err != nil {
		return err
	}
	semRepo := qdrantRepo.New(srv.qdrant, srv.embedder, srv.cfg.Qdrant.CollectionName, srv.l)

	// 2. Pipeline components
	cls := classifier.New(srv.dates, srv.l)

	var rt router.Router
	if srv.cfg.Router.Enabled {
		rt = router.New(srv.llm, srv.l)
	}

	aggregator := workspace.New(srv.platform, srv.l)

	registry := actions.NewRegistry()
	registry.Register(actions.NewComplianceCheckHandler(srv.platform, srv.l))
	registry.Register(actions.NewUploadDocumentHandler(srv.platform, srv.l))
	registry.Register(actions.NewSearchDocumentsHandler(srv.platform, srv.l))
	registry.Register(actions.NewGenerateReportHandler(srv.platform, srv.l))
	registry.Register(actions.NewListIssuesHandler(srv.platform, srv.l))
	registry.Register(actions.NewAssignTaskHandler(srv.platform, srv.l))
	registry.Register(actions.NewResolveIssueHandler(srv.platform, srv.l))
	registry.Register(actions.NewGetAnalyticsHandler(srv.platform, srv.l))
	registry.Register(actions.NewGetTrendsHandler(srv.platform, srv.l))
	registry.Register(actions.NewTeamOperationsHandler(srv.platform, srv.l))

	// Keep the interface nil when no calendar client is configured so the
	// handler's nil check works.
	var calendar actions.CalendarWriter
	if srv.calendar != nil {
		calendar = srv.calendar
	}
	registry.Register(actions.NewScheduleTaskHandler(srv.platform, calendar, srv.cfg.GoogleCalendar.CalendarID, srv.cfg.Environment.Timezone, srv.l))

	executor := actions.New(registry, srv.l)
	responder := respond.New(srv.llm, srv.l)
	suggester := suggest.New()

	// 3. UseCase
	uc := usecase.New(srv.l, logRepo, semRepo, cls, rt, aggregator, executor, responder, suggester)

	// 4. HTTP handler + routes: registers /api/v1/assistant/*
	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered (router enabled: %v, calendar configured: %v)", srv.cfg.Router.Enabled, srv.calendar != nil)
	return nil
}
