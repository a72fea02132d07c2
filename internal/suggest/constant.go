package suggest

import "time"

const (
	// maxSuggestions caps every Generate result.
	maxSuggestions = 5

	// clarifyLimit applies when the reply asks the user a question; the
	// list stays short so the question keeps focus.
	clarifyLimit = 2
)

// Score thresholds. Below lowScore the workspace gets an urgent check
// prompt, at excellentScore and above an achievement one.
const (
	lowScore       = 70
	excellentScore = 90
)

// deadlineHorizon selects which upcoming deadlines are worth a prompt;
// urgentDeadline upgrades them to high priority.
const (
	deadlineHorizon = 7 * 24 * time.Hour
	urgentDeadline  = 3 * 24 * time.Hour
)

// Windows for the time-of-day prompts.
const (
	mondayPlanningHour = 12
	fridayReviewHour   = 14
)
