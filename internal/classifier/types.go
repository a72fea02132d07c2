package classifier

import (
	"regexp"

	"compliance-assistant/internal/model"
)

// extractFunc pulls intent-specific parameters out of the raw message text.
type extractFunc func(text string) map[string]interface{}

// definition is one entry in the ordered intent table. Definitions are
// evaluated top to bottom and the scan stops at the first pattern hit, so
// overlapping patterns across intents are prioritized by list position.
type definition struct {
	intent         model.IntentName
	action         string
	requiresAction bool
	patterns       []*regexp.Regexp
	extract        extractFunc
}

// requiredParameters lists the parameters an intent cannot dispatch without.
// Intents absent from this map dispatch with whatever was extracted.
var requiredParameters = map[model.IntentName][]string{
	model.IntentAssignTask:   {"assignee"},
	model.IntentResolveIssue: {"issue"},
}
