package classifier

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	filenamePattern   = regexp.MustCompile(`(?i)\b([\w-]+\.(?:pdf|docx?|xlsx?|csv|txt|md))\b`)
	severityPattern   = regexp.MustCompile(`(?i)\b(critical|high|medium|low)\b`)
	assigneePattern   = regexp.MustCompile(`(?i)\bto\s+([A-Za-z0-9._@-]+)`)
	issueRefPattern   = regexp.MustCompile(`(?i)\b(?:issue|finding|violation)\s*#?\s*([A-Za-z0-9-]+)`)
	monthsPattern     = regexp.MustCompile(`(?i)\b(?:last|past)\s+(\d{1,2})\s+months?\b`)
	emailPattern      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	datePhrasePattern = regexp.MustCompile(`(?i)\b(tomorrow|today|next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|week)|in\s+\d+\s+(?:days?|weeks?|months?))\b`)

	searchVerbPattern   = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:search(?:\s+for)?|find(?:\s+me)?|locate|look(?:ing)?\s+for|where\s+(?:is|are))\s+`)
	assignVerbPattern   = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:assign|delegate|give)\s+`)
	scheduleVerbPattern = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:schedule|remind\s+me\s+(?:to\s+)?|set\s+a?\s*reminder\s+(?:to\s+|for\s+)?|book)\s*`)
	dueConnectorPattern = regexp.MustCompile(`(?i)\s*\b(?:by|before|due|for|on)\s*$`)
)

// issueRefStopwords are captures of issueRefPattern that are connective
// words rather than references, e.g. "resolve the issue about retention".
var issueRefStopwords = map[string]bool{
	"about": true, "regarding": true, "on": true, "for": true,
	"with": true, "now": true, "please": true, "in": true,
}

func (c *IntentClassifier) extractComplianceParams(text string) map[string]interface{} {
	frameworks := extractFrameworks(text)
	if len(frameworks) == 0 {
		frameworks = []string{DefaultFramework}
	}
	return map[string]interface{}{"frameworks": frameworks}
}

func (c *IntentClassifier) extractUploadParams(text string) map[string]interface{} {
	params := map[string]interface{}{}
	if frameworks := extractFrameworks(text); len(frameworks) > 0 {
		params["frameworks"] = frameworks
	}
	if m := filenamePattern.FindStringSubmatch(text); len(m) > 1 {
		params["filename"] = m[1]
	}
	return params
}

func (c *IntentClassifier) extractSearchParams(text string) map[string]interface{} {
	query := strings.TrimSpace(searchVerbPattern.ReplaceAllString(text, ""))
	if query == "" {
		query = strings.TrimSpace(text)
	}
	params := map[string]interface{}{"query": query}
	if frameworks := extractFrameworks(text); len(frameworks) > 0 {
		params["frameworks"] = frameworks
	}
	return params
}

func (c *IntentClassifier) extractReportParams(text string) map[string]interface{} {
	framework := DefaultFramework
	if frameworks := extractFrameworks(text); len(frameworks) > 0 {
		framework = frameworks[0]
	}
	format := DefaultReportFormat
	if strings.Contains(strings.ToLower(text), "html") {
		format = "html"
	}
	return map[string]interface{}{"framework": framework, "format": format}
}

func (c *IntentClassifier) extractIssueParams(text string) map[string]interface{} {
	params := map[string]interface{}{}
	if m := severityPattern.FindStringSubmatch(text); len(m) > 1 {
		params["severity"] = strings.ToLower(m[1])
	}
	if frameworks := extractFrameworks(text); len(frameworks) > 0 {
		params["framework"] = frameworks[0]
	}
	return params
}

func (c *IntentClassifier) extractResolveParams(text string) map[string]interface{} {
	params := map[string]interface{}{}
	if m := issueRefPattern.FindStringSubmatch(text); len(m) > 1 && !issueRefStopwords[strings.ToLower(m[1])] {
		params["issue"] = m[1]
	}
	return params
}

func (c *IntentClassifier) extractAssignParams(text string) map[string]interface{} {
	params := map[string]interface{}{}

	loc := assigneePattern.FindStringSubmatchIndex(text)
	if loc != nil {
		params["assignee"] = text[loc[2]:loc[3]]

		// Title is what sits between the assign verb and "to <assignee>".
		title := strings.TrimSpace(assignVerbPattern.ReplaceAllString(text[:loc[0]], ""))
		if title != "" {
			params["title"] = title
		}
	}

	if due := c.extractDueDate(text); due != "" {
		params["due_date"] = due
	}
	return params
}

func (c *IntentClassifier) extractScheduleParams(text string) map[string]interface{} {
	params := map[string]interface{}{}

	title := scheduleVerbPattern.ReplaceAllString(text, "")
	if loc := datePhrasePattern.FindStringIndex(title); loc != nil {
		title = title[:loc[0]] + title[loc[1]:]
	}
	title = strings.TrimSpace(dueConnectorPattern.ReplaceAllString(strings.TrimSpace(title), ""))
	if title != "" {
		params["title"] = title
	}

	if due := c.extractDueDate(text); due != "" {
		params["due_date"] = due
	}
	return params
}

func (c *IntentClassifier) extractTrendParams(text string) map[string]interface{} {
	months := DefaultTrendMonths
	if m := monthsPattern.FindStringSubmatch(text); len(m) > 1 {
		if parsed, err := strconv.Atoi(m[1]); err == nil && parsed > 0 {
			months = parsed
		}
	}
	return map[string]interface{}{"months": months}
}

func (c *IntentClassifier) extractAnalyticsParams(text string) map[string]interface{} {
	period := DefaultPeriod
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "week"):
		period = "7d"
	case strings.Contains(lower, "quarter"):
		period = "90d"
	case strings.Contains(lower, "year"):
		period = "365d"
	}
	return map[string]interface{}{"period": period}
}

func (c *IntentClassifier) extractTeamParams(text string) map[string]interface{} {
	lower := strings.ToLower(text)
	operation := "list"
	switch {
	case strings.Contains(lower, "invite") || strings.Contains(lower, "add"):
		operation = "invite"
	case strings.Contains(lower, "remove"):
		operation = "remove"
	}
	params := map[string]interface{}{"operation": operation}
	if email := emailPattern.FindString(text); email != "" {
		params["email"] = email
	}
	return params
}

// extractDueDate resolves a relative date phrase like "tomorrow" or
// "in 3 days" to RFC 3339, or returns "" when none is found.
func (c *IntentClassifier) extractDueDate(text string) string {
	if c.dates == nil {
		return ""
	}
	phrase := datePhrasePattern.FindString(text)
	if phrase == "" {
		return ""
	}
	due, err := c.dates.Parse(phrase, c.now())
	if err != nil {
		return ""
	}
	return due.Format(time.RFC3339)
}

// extractFrameworks scans for known compliance framework names and returns
// their canonical slugs, deduplicated, in table order.
func extractFrameworks(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var frameworks []string
	for _, fw := range knownFrameworks {
		if strings.Contains(lower, fw.match) && !seen[fw.slug] {
			seen[fw.slug] = true
			frameworks = append(frameworks, fw.slug)
		}
	}
	return frameworks
}
