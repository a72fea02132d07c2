package classifier

import (
	"regexp"

	"compliance-assistant/internal/model"
)

// buildDefinitions returns the intent table in priority order. Specific
// action intents come first, help and small talk last, so a message like
// "how do I upload a document" lands on upload_document rather than help.
func (c *IntentClassifier) buildDefinitions() []definition {
	return []definition{
		{
			intent:         model.IntentCheckCompliance,
			action:         model.ActionRunComplianceCheck,
			requiresAction: true,
			patterns: compile(
				`\b(check|run|audit|assess|verify)\b.*\bcomplian(ce|t)\b`,
				`\bcompliance\s+(check|status|audit|scan)\b`,
				`\bhow\s+compliant\b`,
				`\bam\s+i\b.*\bcompliant\b`,
			),
			extract: c.extractComplianceParams,
		},
		{
			intent:         model.IntentUploadDocument,
			action:         model.ActionPrepareDocumentUpload,
			requiresAction: true,
			patterns: compile(
				`\b(upload|attach|import)\b.*\b(document|doc|file|policy|evidence|report)s?\b`,
				`\badd\b.*\b(document|doc|file|policy|evidence)s?\b`,
				`\b(upload|attach)\b`,
			),
			extract: c.extractUploadParams,
		},
		{
			intent:         model.IntentSearchDocuments,
			action:         model.ActionSearchDocuments,
			requiresAction: true,
			patterns: compile(
				`\b(search|find|locate|look(ing)?\s+for)\b.*\b(document|doc|file|policy|policies|contract|evidence)s?\b`,
				`\bwhere\s+(is|are)\b.*\b(document|doc|file|policy|policies|contract)s?\b`,
			),
			extract: c.extractSearchParams,
		},
		{
			intent:         model.IntentGenerateReport,
			action:         model.ActionGenerateReport,
			requiresAction: true,
			patterns: compile(
				`\b(generate|create|make|build|prepare|export)\b.*\breports?\b`,
				`\breport\s+(for|on)\b`,
				`\b(audit|compliance)\s+report\b`,
			),
			extract: c.extractReportParams,
		},
		{
			intent:         model.IntentResolveIssue,
			action:         model.ActionResolveIssue,
			requiresAction: true,
			patterns: compile(
				`\b(resolve|fix|close|remediate)\b.*\b(issue|problem|finding|violation)s?\b`,
				`\bmark\b.*\b(resolved|fixed|done)\b`,
			),
			extract: c.extractResolveParams,
		},
		{
			intent:         model.IntentFindIssues,
			action:         model.ActionListIssues,
			requiresAction: true,
			patterns: compile(
				`\b(show|list|find|view|any|what)\b.*\b(issues?|problems?|gaps?|violations?|findings?)\b`,
				`\bwhat('s|\s+is)\s+(wrong|failing|broken)\b`,
				`\b(critical|high|open|unresolved)\s+(issues?|findings?)\b`,
			),
			extract: c.extractIssueParams,
		},
		{
			intent:         model.IntentAssignTask,
			action:         model.ActionAssignTask,
			requiresAction: true,
			patterns: compile(
				`\b(assign|delegate|give)\b.*\bto\s+\w+`,
				`\bassign\b.*\btask\b`,
				`\b(assign|delegate)\b`,
			),
			extract: c.extractAssignParams,
		},
		{
			intent:         model.IntentScheduleTask,
			action:         model.ActionScheduleTask,
			requiresAction: true,
			patterns: compile(
				`\b(schedule|remind\s+me|set\s+a?\s*reminder|book)\b`,
				`\b(add|put)\b.*\b(calendar|schedule)\b`,
			),
			extract: c.extractScheduleParams,
		},
		{
			intent:         model.IntentGetTrends,
			action:         model.ActionGetTrends,
			requiresAction: true,
			patterns: compile(
				`\btrends?\b`,
				`\b(score|compliance)\b.*\bover\s+time\b`,
				`\b(history|progress)\s+of\b.*\bscore\b`,
			),
			extract: c.extractTrendParams,
		},
		{
			intent:         model.IntentGetAnalytics,
			action:         model.ActionGetAnalytics,
			requiresAction: true,
			patterns: compile(
				`\banalytics\b`,
				`\b(stats|statistics|metrics)\b`,
				`\bhow\s+(are\s+we|is\s+the\s+workspace)\s+doing\b`,
				`\b(summary|overview)\s+of\b.*\b(week|month|quarter|period)\b`,
			),
			extract: c.extractAnalyticsParams,
		},
		{
			intent:         model.IntentTeamOperations,
			action:         model.ActionTeamOperations,
			requiresAction: true,
			patterns: compile(
				`\b(invite|add|remove)\b.*\b(member|teammate|user|person|people|team|workspace)s?\b`,
				`\binvite\b`,
				`\bteam\s+members?\b`,
				`\bwho('s|\s+is)\s+on\s+(the\s+)?team\b`,
			),
			extract: c.extractTeamParams,
		},
		{
			intent:         model.IntentGetHelp,
			action:         "",
			requiresAction: false,
			patterns: compile(
				`^\s*help\b`,
				`\bwhat\s+can\s+you\s+do\b`,
				`\bhow\s+do\s+(i|you)\b`,
				`\b(available\s+)?commands\b`,
			),
		},
		{
			intent:         model.IntentGeneralQuestion,
			action:         "",
			requiresAction: false,
			patterns: compile(
				`^\s*(hi|hello|hey|good\s+(morning|afternoon|evening)|thanks|thank\s+you)\b`,
				`\b(what|why|when|who|where|which)\s+(is|are|does|do|was|were)\b`,
				`\b(explain|tell\s+me\s+about|describe)\b`,
				`\?\s*$`,
			),
		},
	}
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}
