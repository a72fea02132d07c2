package router

import (
	"context"

	"compliance-assistant/pkg/llmprovider"
	"compliance-assistant/pkg/log"
)

// ContentGenerator is the slice of the LLM provider manager the router needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Router is the interface for semantic intent routing
type Router interface {
	Classify(ctx context.Context, message string, conversationHistory []string) (RouterOutput, error)
}

// SemanticRouter classifies user intent using LLM. It backs the pattern
// classifier: the orchestrator only consults it when no pattern hits.
type SemanticRouter struct {
	llm ContentGenerator
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm ContentGenerator, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
