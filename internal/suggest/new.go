package suggest

import (
	"time"

	"compliance-assistant/internal/model"
)

// Engine is the interface for deriving next-step prompts.
type Engine interface {
	Generate(reply string, snapshot model.ContextSnapshot, intent model.Intent, hint *model.NLPHint) []model.Suggestion
}

// SuggestionEngine derives ranked suggestions from workspace state, the
// just-handled intent, and the time of day. Pure: no I/O, and it never
// mutates its inputs.
type SuggestionEngine struct {
	now func() time.Time
}

var _ Engine = (*SuggestionEngine)(nil)

// New creates a new SuggestionEngine.
func New() *SuggestionEngine {
	return &SuggestionEngine{now: time.Now}
}
