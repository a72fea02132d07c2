package classifier

import (
	"context"
	"strings"

	"compliance-assistant/internal/model"
)

// Detect matches the message against the intent table. The first definition
// whose pattern set hits wins. When nothing hits, an external NLP hint that
// names an intent is trusted with its own confidence; otherwise the result
// is unknown with confidence 0.
// Pure over the text and static tables; the context is only used for logging.
func (c *IntentClassifier) Detect(ctx context.Context, text string, hint *model.NLPHint) model.Intent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Intent{Name: model.IntentUnknown, Confidence: 0, RequiresAction: false}
	}

	for _, def := range c.definitions {
		for _, pattern := range def.patterns {
			span := pattern.FindStringIndex(trimmed)
			if span == nil {
				continue
			}

			intent := model.Intent{
				Name:           def.intent,
				Confidence:     scoreConfidence(len(trimmed), span[1]-span[0]),
				RequiresAction: def.requiresAction,
				Action:         def.action,
			}
			if def.extract != nil {
				intent.Parameters = def.extract(trimmed)
			}
			c.l.Debugf(ctx, "classifier: matched %s (confidence %.2f)", intent.Name, intent.Confidence)
			return intent
		}
	}

	if hint != nil && hint.Intent != "" {
		name := model.IntentName(hint.Intent)
		intent := model.Intent{
			Name:       name,
			Confidence: hint.Confidence,
			Parameters: hint.Entities,
		}
		// Hints outside the dispatch table never trigger actions.
		if def, ok := c.byIntent[name]; ok {
			intent.RequiresAction = def.requiresAction
			intent.Action = def.action
		}
		c.l.Debugf(ctx, "classifier: no pattern hit, trusting hint %s (confidence %.2f)", name, hint.Confidence)
		return intent
	}

	return model.Intent{Name: model.IntentUnknown, Confidence: 0, RequiresAction: false}
}

// ValidateParameters reports whether the intent carries every parameter its
// action needs. A false return short-circuits into a clarifying reply
// instead of a dispatch.
func (c *IntentClassifier) ValidateParameters(intent model.Intent) bool {
	for _, key := range requiredParameters[intent.Name] {
		val, ok := intent.Parameters[key]
		if !ok {
			return false
		}
		if s, ok := val.(string); ok && strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// scoreConfidence rates a pattern hit: base 0.8, up to +0.15 for the share
// of the input the matched span covers, -0.1 for inputs shorter than 10
// characters, clamped to [0,1]. A heuristic, not a calibrated probability.
func scoreConfidence(textLen, spanLen int) float64 {
	coverage := float64(spanLen) / float64(textLen)
	confidence := baseConfidence + coverageBonus*coverage
	if textLen < shortInputLength {
		confidence -= shortInputPenalty
	}
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
