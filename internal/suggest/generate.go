package suggest

import (
	"fmt"
	"strings"
	"time"

	"compliance-assistant/internal/model"
)

// Generate assembles at most maxSuggestions prompts, ranked context-driven
// first, then intent-driven, then time-of-day. Prompts that would trigger
// the same command are collapsed to the highest-ranked one.
func (e *SuggestionEngine) Generate(reply string, snapshot model.ContextSnapshot, intent model.Intent, hint *model.NLPHint) []model.Suggestion {
	candidates := e.contextSuggestions(snapshot)
	candidates = append(candidates, intentSuggestions(intent, hint)...)
	candidates = append(candidates, e.timeSuggestions()...)

	limit := maxSuggestions
	if strings.Contains(reply, "?") {
		// The assistant just asked the user something. Answering it beats
		// any next step we could propose.
		limit = clarifyLimit
	}

	out := make([]model.Suggestion, 0, limit)
	seen := make(map[string]bool, len(candidates))
	for _, s := range candidates {
		key := suggestionKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

// suggestionKey collapses prompts sharing a primary command.
func suggestionKey(s model.Suggestion) string {
	if len(s.Commands) > 0 {
		return s.Commands[0].Command
	}
	return s.Message
}

func (e *SuggestionEngine) contextSuggestions(snapshot model.ContextSnapshot) []model.Suggestion {
	var out []model.Suggestion

	// A zero score means the overview collaborator was unavailable, not
	// that the workspace is failing.
	if snapshot.ComplianceScore > 0 && snapshot.ComplianceScore < lowScore {
		out = append(out, model.Suggestion{
			Priority: model.PriorityHigh,
			Type:     model.SuggestionAction,
			Message:  fmt.Sprintf("Your compliance score is %d/100. A fresh check would pinpoint what to fix first.", snapshot.ComplianceScore),
			Commands: []model.SuggestionCommand{{Label: "Run compliance check", Command: "Run a full compliance check"}},
		})
	}

	if snapshot.CriticalIssues > 0 {
		out = append(out, model.Suggestion{
			Priority: model.PriorityHigh,
			Type:     model.SuggestionAction,
			Message: fmt.Sprintf("%d critical %s %s open and should come before anything else.",
				snapshot.CriticalIssues,
				plural(snapshot.CriticalIssues, "issue", "issues"),
				plural(snapshot.CriticalIssues, "is", "are")),
			Commands: []model.SuggestionCommand{{Label: "Review critical issues", Command: "Show me critical issues"}},
		})
	}

	if snapshot.PendingDocuments > 0 {
		out = append(out, model.Suggestion{
			Priority: model.PriorityMedium,
			Type:     model.SuggestionReminder,
			Message: fmt.Sprintf("%d %s waiting for review in the document queue.",
				snapshot.PendingDocuments,
				plural(snapshot.PendingDocuments, "document is", "documents are")),
			Commands: []model.SuggestionCommand{{Label: "Open document queue", Command: "Show me pending documents"}},
		})
	}

	if s, ok := e.deadlineSuggestion(snapshot.UpcomingDeadlines); ok {
		out = append(out, s)
	}

	if snapshot.ComplianceScore >= excellentScore {
		out = append(out, model.Suggestion{
			Priority: model.PriorityLow,
			Type:     model.SuggestionAchievement,
			Message:  fmt.Sprintf("Your compliance score is %d/100. Worth capturing in a report for stakeholders.", snapshot.ComplianceScore),
			Commands: []model.SuggestionCommand{{Label: "Generate report", Command: "Generate a compliance report"}},
		})
	}

	return out
}

// deadlineSuggestion surfaces the nearest deadline inside the horizon. The
// slice is scanned, never reordered.
func (e *SuggestionEngine) deadlineSuggestion(deadlines []model.Deadline) (model.Suggestion, bool) {
	now := e.now()
	nearest := -1
	for i, d := range deadlines {
		if d.DueAt.Before(now) || d.DueAt.Sub(now) > deadlineHorizon {
			continue
		}
		if nearest < 0 || d.DueAt.Before(deadlines[nearest].DueAt) {
			nearest = i
		}
	}
	if nearest < 0 {
		return model.Suggestion{}, false
	}

	d := deadlines[nearest]
	until := d.DueAt.Sub(now)
	priority := model.PriorityMedium
	if until <= urgentDeadline {
		priority = model.PriorityHigh
	}
	return model.Suggestion{
		Priority: priority,
		Type:     model.SuggestionDeadline,
		Message:  fmt.Sprintf("%s (%s) is %s.", d.Title, d.Framework, dueWording(until)),
		Commands: []model.SuggestionCommand{{Label: "Check readiness", Command: fmt.Sprintf("Check %s compliance", d.Framework)}},
	}, true
}

func dueWording(until time.Duration) string {
	days := int(until.Hours() / 24)
	switch {
	case days <= 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	default:
		return fmt.Sprintf("due in %d days", days)
	}
}

// intentSuggestions proposes the natural follow-up to the turn just
// handled. When local classification missed, the router hint substitutes.
func intentSuggestions(intent model.Intent, hint *model.NLPHint) []model.Suggestion {
	name := intent.Name
	if name == model.IntentUnknown && hint != nil {
		name = hint.Intent
	}

	switch name {
	case model.IntentCheckCompliance:
		return []model.Suggestion{
			{
				Priority: model.PriorityMedium,
				Type:     model.SuggestionAction,
				Message:  "Want a shareable summary of these results?",
				Commands: []model.SuggestionCommand{{Label: "Generate report", Command: "Generate a compliance report"}},
			},
			{
				Priority: model.PriorityMedium,
				Type:     model.SuggestionAction,
				Message:  "I can walk through the open issues one by one.",
				Commands: []model.SuggestionCommand{{Label: "Show issues", Command: "Show me open issues"}},
			},
		}
	case model.IntentUploadDocument:
		return []model.Suggestion{{
			Priority: model.PriorityMedium,
			Type:     model.SuggestionAction,
			Message:  "Once the document finishes processing, a check will pick up its controls.",
			Commands: []model.SuggestionCommand{{Label: "Run compliance check", Command: "Run a compliance check"}},
		}}
	case model.IntentFindIssues:
		return []model.Suggestion{{
			Priority: model.PriorityMedium,
			Type:     model.SuggestionAction,
			Message:  "I can hand the worst of these to someone on the team.",
			Commands: []model.SuggestionCommand{{Label: "Assign a task", Command: "Assign the top issue to someone"}},
		}}
	case model.IntentResolveIssue:
		return []model.Suggestion{{
			Priority: model.PriorityMedium,
			Type:     model.SuggestionAction,
			Message:  "Re-running the check folds the resolution into your score.",
			Commands: []model.SuggestionCommand{{Label: "Run compliance check", Command: "Run a compliance check"}},
		}}
	case model.IntentGenerateReport:
		return []model.Suggestion{{
			Priority: model.PriorityLow,
			Type:     model.SuggestionInsight,
			Message:  "Reports are point-in-time. A scheduled review keeps the score current.",
			Commands: []model.SuggestionCommand{{Label: "Schedule review", Command: "Schedule a compliance review for next week"}},
		}}
	case model.IntentGetAnalytics:
		return []model.Suggestion{{
			Priority: model.PriorityLow,
			Type:     model.SuggestionInsight,
			Message:  "The trend view shows how this period compares with the last six months.",
			Commands: []model.SuggestionCommand{{Label: "View trends", Command: "Show me compliance trends"}},
		}}
	case model.IntentAssignTask:
		return []model.Suggestion{{
			Priority: model.PriorityLow,
			Type:     model.SuggestionReminder,
			Message:  "I can put a follow-up on the calendar so the task doesn't slip.",
			Commands: []model.SuggestionCommand{{Label: "Schedule follow-up", Command: "Schedule a follow-up review for next week"}},
		}}
	case model.IntentGetHelp:
		return []model.Suggestion{{
			Priority: model.PriorityLow,
			Type:     model.SuggestionInsight,
			Message:  "Try a compliance check, an issue search, or a report to start.",
			Commands: []model.SuggestionCommand{{Label: "Run compliance check", Command: "Run a compliance check"}},
		}}
	default:
		return nil
	}
}

// timeSuggestions covers the Monday-planning and Friday-wrap-up windows.
func (e *SuggestionEngine) timeSuggestions() []model.Suggestion {
	now := e.now()
	switch {
	case now.Weekday() == time.Monday && now.Hour() < mondayPlanningHour:
		return []model.Suggestion{{
			Priority: model.PriorityLow,
			Type:     model.SuggestionInsight,
			Message:  "Start of the week. A quick check surfaces anything that drifted over the weekend.",
			Commands: []model.SuggestionCommand{{Label: "Run compliance check", Command: "Run a compliance check"}},
		}}
	case now.Weekday() == time.Friday && now.Hour() >= fridayReviewHour:
		return []model.Suggestion{{
			Priority: model.PriorityLow,
			Type:     model.SuggestionReminder,
			Message:  "End of the week. A summary report captures where things stand.",
			Commands: []model.SuggestionCommand{{Label: "Generate report", Command: "Generate a compliance report"}},
		}}
	default:
		return nil
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
