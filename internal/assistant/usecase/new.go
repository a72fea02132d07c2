package usecase

import (
	"time"

	"compliance-assistant/internal/actions"
	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/classifier"
	"compliance-assistant/internal/respond"
	"compliance-assistant/internal/router"
	"compliance-assistant/internal/suggest"
	"compliance-assistant/internal/workspace"
	"compliance-assistant/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	logRepo    repository.LogRepository
	semRepo    repository.SemanticRepository
	classifier classifier.Classifier
	router     router.Router // optional, nil disables semantic hints
	aggregator workspace.Aggregator
	executor   actions.Executor
	responder  respond.Generator
	suggester  suggest.Engine
	now        func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l log.Logger,
	logRepo repository.LogRepository,
	semRepo repository.SemanticRepository,
	cls classifier.Classifier,
	rt router.Router,
	aggregator workspace.Aggregator,
	executor actions.Executor,
	responder respond.Generator,
	suggester suggest.Engine,
) *implUseCase {
	return &implUseCase{
		l:          l,
		logRepo:    logRepo,
		semRepo:    semRepo,
		classifier: cls,
		router:     rt,
		aggregator: aggregator,
		executor:   executor,
		responder:  responder,
		suggester:  suggester,
		now:        time.Now,
	}
}
