package respond

import (
	"context"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/llmprovider"
	"compliance-assistant/pkg/log"
)

// ContentGenerator is the slice of the LLM provider chain used for
// free-form replies.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Generator renders assistant replies.
type Generator interface {
	// FromAction renders a deterministic reply for an action result.
	FromAction(result model.ActionResult, snapshot model.ContextSnapshot) string

	// FromQuery answers a free-form question grounded in the workspace
	// snapshot and recent history. Collaborator failures degrade to a
	// generic reply, never an error.
	FromQuery(ctx context.Context, text string, snapshot model.ContextSnapshot, history []model.Message, hint *model.NLPHint) string

	// Clarify asks for the parameter that kept an action from dispatching.
	Clarify(intent model.Intent) string
}

// ResponseGenerator renders replies from templates and the provider chain.
type ResponseGenerator struct {
	llm ContentGenerator
	l   log.Logger
}

var _ Generator = (*ResponseGenerator)(nil)

// New creates a new ResponseGenerator
func New(llm ContentGenerator, l log.Logger) *ResponseGenerator {
	return &ResponseGenerator{
		llm: llm,
		l:   l,
	}
}
