package respond

import (
	"fmt"
	"strings"

	"compliance-assistant/internal/model"
)

// FromAction selects a deterministic template keyed on the action name.
func (g *ResponseGenerator) FromAction(result model.ActionResult, snapshot model.ContextSnapshot) string {
	if !result.Success {
		return failureReply(result)
	}

	switch result.Action {
	case model.ActionRunComplianceCheck:
		return complianceReply(result)
	case model.ActionPrepareDocumentUpload:
		return uploadReply(result, snapshot)
	case model.ActionSearchDocuments:
		return searchReply(result)
	case model.ActionGenerateReport:
		return reportReply(result)
	case model.ActionListIssues:
		return issuesReply(result)
	case model.ActionAssignTask:
		return assignReply(result)
	case model.ActionResolveIssue:
		return resolveReply(result)
	case model.ActionGetAnalytics:
		return analyticsReply(result)
	case model.ActionGetTrends:
		return trendsReply(result)
	case model.ActionScheduleTask:
		return scheduleReply(result)
	case model.ActionTeamOperations:
		return teamReply(result)
	default:
		return genericSuccessReply
	}
}

// Clarify asks for the missing parameter instead of dispatching.
func (g *ResponseGenerator) Clarify(intent model.Intent) string {
	switch intent.Name {
	case model.IntentAssignTask:
		return clarifyAssignTask
	case model.IntentResolveIssue:
		return clarifyResolveIssue
	default:
		return clarifyGeneric
	}
}

func failureReply(result model.ActionResult) string {
	if result.Error != "" {
		return fmt.Sprintf("Sorry, I couldn't complete that: %s. You can retry, or do it directly from the dashboard.", result.Error)
	}
	return "Sorry, I couldn't complete that. You can retry, or do it directly from the dashboard."
}

func complianceReply(result model.ActionResult) string {
	score := dataInt(result.Data, "score")
	issues := dataInt(result.Data, "issues_found")
	critical := dataInt(result.Data, "critical_issues")

	reply := fmt.Sprintf("Compliance check complete. Your workspace scored %d/100 (%s) with %d open %s.",
		score, scoreBand(score), issues, plural(issues, "issue", "issues"))
	if critical > 0 {
		reply += fmt.Sprintf(" %d %s critical and should be addressed first.", critical, plural(critical, "is", "are"))
	}
	return reply
}

// scoreBand maps a compliance score to its wording.
func scoreBand(score int) string {
	switch {
	case score >= scoreExcellent:
		return "excellent"
	case score >= scoreGood:
		return "good"
	case score >= scoreFair:
		return "needs attention"
	default:
		return "at risk"
	}
}

func uploadReply(result model.ActionResult, snapshot model.ContextSnapshot) string {
	var b strings.Builder
	filename := dataString(result.Data, "filename")
	if filename != "" {
		b.WriteString(fmt.Sprintf("I've prepared an upload slot for %s.", filename))
	} else {
		b.WriteString("I've prepared an upload slot for your document.")
	}
	b.WriteString(" After upload it goes through virus scanning, text extraction, and compliance indexing before it shows up in search.")
	if len(snapshot.ActiveFrameworks) > 0 {
		b.WriteString(fmt.Sprintf(" Once it's processed I'd recommend a %s check.", strings.Join(snapshot.ActiveFrameworks, "/")))
	}
	return b.String()
}

func searchReply(result model.ActionResult) string {
	count := dataInt(result.Data, "count")
	query := dataString(result.Data, "query")
	if count == 0 {
		return fmt.Sprintf("I couldn't find any documents matching %q. Try different keywords, or upload the document if it isn't in the workspace yet.", query)
	}
	return fmt.Sprintf("Found %d %s matching %q. The results are on the documents page.",
		count, plural(count, "document", "documents"), query)
}

func reportReply(result model.ActionResult) string {
	pages := dataInt(result.Data, "pages")
	format := strings.ToUpper(dataString(result.Data, "format"))
	sections := dataStringSlice(result.Data, "sections")

	reply := fmt.Sprintf("Your %s report is ready: %d %s", format, pages, plural(pages, "page", "pages"))
	if len(sections) > 0 {
		reply += fmt.Sprintf(" covering %s", strings.Join(sections, ", "))
	}
	reply += ". Use the download link to grab it."
	return reply
}

// severityOrder fixes the rendering order of issue groups.
var severityOrder = []string{"critical", "high", "medium", "low"}

func issuesReply(result model.ActionResult) string {
	count := dataInt(result.Data, "count")
	if count == 0 {
		return "No open issues match that filter. Nicely done."
	}

	bySeverity := dataCountMap(result.Data, "by_severity")
	groups := make([]string, 0, len(severityOrder))
	for _, severity := range severityOrder {
		if n := bySeverity[severity]; n > 0 {
			groups = append(groups, fmt.Sprintf("%d %s", n, severity))
		}
	}

	reply := fmt.Sprintf("Found %d open %s", count, plural(count, "issue", "issues"))
	if len(groups) > 0 {
		reply += fmt.Sprintf(" (%s)", strings.Join(groups, ", "))
	}
	reply += ". The issues page has the full list."
	return reply
}

func assignReply(result model.ActionResult) string {
	title := dataString(result.Data, "title")
	assignee := dataString(result.Data, "assignee")
	reply := fmt.Sprintf("Done. I've assigned %q to %s", title, assignee)
	if due := dataString(result.Data, "due_at"); due != "" {
		reply += fmt.Sprintf(", due %s", due[:10])
	}
	return reply + "."
}

func resolveReply(result model.ActionResult) string {
	title := dataString(result.Data, "title")
	if title != "" {
		return fmt.Sprintf("Marked %q as resolved. The compliance score will reflect it after the next check.", title)
	}
	return "Issue resolved. The compliance score will reflect it after the next check."
}

func analyticsReply(result model.ActionResult) string {
	period := dataString(result.Data, "period")
	score := dataInt(result.Data, "compliance_score")
	change := dataInt(result.Data, "score_change")
	resolved := dataInt(result.Data, "issues_resolved")
	opened := dataInt(result.Data, "issues_opened")

	trend := "held steady"
	if change > 0 {
		trend = fmt.Sprintf("went up %d %s", change, plural(change, "point", "points"))
	} else if change < 0 {
		trend = fmt.Sprintf("dropped %d %s", -change, plural(-change, "point", "points"))
	}

	return fmt.Sprintf("Over the last %s your compliance score %s to %d/100, with %d %s resolved and %d opened.",
		period, trend, score, resolved, plural(resolved, "issue", "issues"), opened)
}

func trendsReply(result model.ActionResult) string {
	months := dataInt(result.Data, "months")
	direction := dataString(result.Data, "direction")

	switch direction {
	case "improving":
		return fmt.Sprintf("Your compliance score has been improving over the last %d months. Keep it up.", months)
	case "declining":
		return fmt.Sprintf("Your compliance score has been declining over the last %d months. Worth a look at the open issues.", months)
	default:
		return fmt.Sprintf("Your compliance score has been stable over the last %d months.", months)
	}
}

func scheduleReply(result model.ActionResult) string {
	title := dataString(result.Data, "title")
	reply := fmt.Sprintf("Scheduled %q", title)
	if due := dataString(result.Data, "due_at"); due != "" {
		reply += fmt.Sprintf(" for %s", due[:10])
	}
	reply += "."
	if dataString(result.Data, "calendar_link") != "" {
		reply += " I've also added it to your calendar."
	}
	return reply
}

func teamReply(result model.ActionResult) string {
	switch dataString(result.Data, "operation") {
	case "invite":
		return fmt.Sprintf("Invitation sent to %s. They'll appear in the team list once they accept.", dataString(result.Data, "email"))
	default:
		count := dataInt(result.Data, "count")
		return fmt.Sprintf("Your workspace has %d %s. The team page has roles and statuses.",
			count, plural(count, "member", "members"))
	}
}
