package classifier

import (
	"context"
	"time"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/datemath"
	"compliance-assistant/pkg/log"
)

// Classifier is the interface for pattern-based intent detection.
type Classifier interface {
	Detect(ctx context.Context, text string, hint *model.NLPHint) model.Intent
	ValidateParameters(intent model.Intent) bool
}

// IntentClassifier matches messages against an ordered intent table.
type IntentClassifier struct {
	definitions []definition
	byIntent    map[model.IntentName]definition
	dates       *datemath.Parser
	now         func() time.Time
	l           log.Logger
}

var _ Classifier = (*IntentClassifier)(nil)

// New creates a new IntentClassifier. The date parser is optional; without
// it due-date phrases are left unextracted.
func New(dates *datemath.Parser, l log.Logger) *IntentClassifier {
	c := &IntentClassifier{
		dates: dates,
		now:   time.Now,
		l:     l,
	}
	c.definitions = c.buildDefinitions()
	c.byIntent = make(map[model.IntentName]definition, len(c.definitions))
	for _, def := range c.definitions {
		c.byIntent[def.intent] = def
	}
	return c
}
