package classifier

import (
	"context"
	"testing"
	"time"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/datemath"
	"compliance-assistant/pkg/log"
)

// fixedNow is a Thursday afternoon, so relative dates resolve predictably.
var fixedNow = time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)

func newTestClassifier(t *testing.T) *IntentClassifier {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to build date parser: %v", err)
	}
	c := New(dates, log.NewNop())
	c.now = func() time.Time { return fixedNow }
	return c
}

func TestDetect_CheckCompliance(t *testing.T) {
	c := newTestClassifier(t)

	intent := c.Detect(context.Background(), "Check GDPR compliance", nil)

	if intent.Name != model.IntentCheckCompliance {
		t.Fatalf("expected intent %s, got %s", model.IntentCheckCompliance, intent.Name)
	}
	if !intent.RequiresAction {
		t.Error("expected requiresAction to be true")
	}
	if intent.Action != model.ActionRunComplianceCheck {
		t.Errorf("expected action %s, got %s", model.ActionRunComplianceCheck, intent.Action)
	}
	frameworks, ok := intent.Parameters["frameworks"].([]string)
	if !ok || len(frameworks) != 1 || frameworks[0] != "gdpr" {
		t.Errorf("expected frameworks ['gdpr'], got %v", intent.Parameters["frameworks"])
	}
	if intent.Confidence <= 0 || intent.Confidence > 1 {
		t.Errorf("expected confidence in (0,1], got %f", intent.Confidence)
	}
}

func TestDetect_NoMatchNoHint(t *testing.T) {
	c := newTestClassifier(t)

	intent := c.Detect(context.Background(), "asdkjhasd", nil)

	if intent.Name != model.IntentUnknown {
		t.Fatalf("expected intent %s, got %s", model.IntentUnknown, intent.Name)
	}
	if intent.Confidence != 0 {
		t.Errorf("expected confidence 0, got %f", intent.Confidence)
	}
	if intent.RequiresAction {
		t.Error("expected requiresAction to be false")
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	c := newTestClassifier(t)

	intent := c.Detect(context.Background(), "   ", nil)
	if intent.Name != model.IntentUnknown {
		t.Fatalf("expected intent %s, got %s", model.IntentUnknown, intent.Name)
	}
}

func TestDetect_HintTrustedWhenNoPatternHits(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("KnownIntent", func(t *testing.T) {
		hint := &model.NLPHint{Intent: "get_analytics", Confidence: 0.77}
		intent := c.Detect(context.Background(), "gimme the lowdown", hint)

		if intent.Name != model.IntentGetAnalytics {
			t.Fatalf("expected hinted intent get_analytics, got %s", intent.Name)
		}
		if intent.Confidence != 0.77 {
			t.Errorf("expected hint confidence 0.77, got %f", intent.Confidence)
		}
		if !intent.RequiresAction {
			t.Error("expected requiresAction wired from the intent table")
		}
		if intent.Action != model.ActionGetAnalytics {
			t.Errorf("expected action %s, got %s", model.ActionGetAnalytics, intent.Action)
		}
	})

	t.Run("IntentOutsideTable", func(t *testing.T) {
		hint := &model.NLPHint{Intent: "weather_report", Confidence: 0.9}
		intent := c.Detect(context.Background(), "gimme the lowdown", hint)

		if intent.Name != model.IntentName("weather_report") {
			t.Fatalf("expected hinted name kept, got %s", intent.Name)
		}
		if intent.RequiresAction {
			t.Error("hint outside the dispatch table must not trigger actions")
		}
		if intent.Action != "" {
			t.Errorf("expected empty action, got %s", intent.Action)
		}
	})

	t.Run("PatternBeatsHint", func(t *testing.T) {
		hint := &model.NLPHint{Intent: "get_analytics", Confidence: 0.99}
		intent := c.Detect(context.Background(), "Check GDPR compliance", hint)
		if intent.Name != model.IntentCheckCompliance {
			t.Fatalf("pattern hit must win over hint, got %s", intent.Name)
		}
	})
}

func TestDetect_ConfidenceAlwaysInRange(t *testing.T) {
	c := newTestClassifier(t)

	inputs := []string{
		"Check GDPR compliance",
		"check",
		"help",
		"Upload the new privacy policy document for HIPAA and SOC 2 review before the audit next week",
		"Show me all critical issues",
		"Generate a compliance report",
		"assign to bob",
		"hi",
		"What is GDPR?",
		"Show me compliance trends for the last 12 months please",
		"asdkjhasd",
		"",
	}

	for _, input := range inputs {
		intent := c.Detect(context.Background(), input, nil)
		if intent.Confidence < 0 || intent.Confidence > 1 {
			t.Errorf("input %q: confidence %f out of [0,1]", input, intent.Confidence)
		}
	}
}

func TestScoreConfidence(t *testing.T) {
	t.Run("ShortInputScoresStrictlyLower", func(t *testing.T) {
		// Same full coverage, different lengths across the short-input cutoff.
		short := scoreConfidence(8, 8)
		long := scoreConfidence(16, 16)
		if short >= long {
			t.Errorf("expected short input confidence %f < long input confidence %f", short, long)
		}
	})

	t.Run("LargerSpanNeverScoresLower", func(t *testing.T) {
		textLen := 40
		prev := 0.0
		for span := 1; span <= textLen; span++ {
			got := scoreConfidence(textLen, span)
			if got < prev {
				t.Fatalf("confidence decreased at span %d: %f < %f", span, got, prev)
			}
			prev = got
		}
	})

	t.Run("Clamped", func(t *testing.T) {
		if got := scoreConfidence(1, 1); got < 0 || got > 1 {
			t.Errorf("expected clamped confidence, got %f", got)
		}
	})
}

func TestDetect_TableOrderBreaksTies(t *testing.T) {
	c := newTestClassifier(t)

	// "fix ... issue" overlaps find_issues patterns; resolve_issue sits
	// higher in the table and must win.
	intent := c.Detect(context.Background(), "Fix issue #42", nil)
	if intent.Name != model.IntentResolveIssue {
		t.Fatalf("expected resolve_issue to win the overlap, got %s", intent.Name)
	}
	if issue, _ := intent.Parameters["issue"].(string); issue != "42" {
		t.Errorf("expected issue '42', got %v", intent.Parameters["issue"])
	}

	intent = c.Detect(context.Background(), "Show me all critical issues", nil)
	if intent.Name != model.IntentFindIssues {
		t.Fatalf("expected find_issues, got %s", intent.Name)
	}
	if severity, _ := intent.Parameters["severity"].(string); severity != "critical" {
		t.Errorf("expected severity 'critical', got %v", intent.Parameters["severity"])
	}
}

func TestDetect_IntentTable(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name               string
		input              string
		wantIntent         model.IntentName
		wantRequiresAction bool
	}{
		{"Upload", "I want to upload our privacy-policy.pdf", model.IntentUploadDocument, true},
		{"Search", "Find the data retention policy", model.IntentSearchDocuments, true},
		{"Report", "Generate a SOC 2 audit report", model.IntentGenerateReport, true},
		{"Analytics", "Show me this week's stats", model.IntentGetAnalytics, true},
		{"Trends", "Show me compliance trends for the last 3 months", model.IntentGetTrends, true},
		{"Schedule", "Remind me to review the DPA next week", model.IntentScheduleTask, true},
		{"Team", "Invite jane@acme.test to the team", model.IntentTeamOperations, true},
		{"Help", "What can you do?", model.IntentGetHelp, false},
		{"Greeting", "hello there", model.IntentGeneralQuestion, false},
		{"Question", "What is GDPR?", model.IntentGeneralQuestion, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := c.Detect(context.Background(), tt.input, nil)
			if intent.Name != tt.wantIntent {
				t.Fatalf("input %q: expected intent %s, got %s", tt.input, tt.wantIntent, intent.Name)
			}
			if intent.RequiresAction != tt.wantRequiresAction {
				t.Errorf("input %q: expected requiresAction %v", tt.input, tt.wantRequiresAction)
			}
		})
	}
}

func TestDetect_ParameterExtraction(t *testing.T) {
	c := newTestClassifier(t)
	ctx := context.Background()

	t.Run("ComplianceDefaultsToAll", func(t *testing.T) {
		intent := c.Detect(ctx, "Run a compliance check", nil)
		frameworks, _ := intent.Parameters["frameworks"].([]string)
		if len(frameworks) != 1 || frameworks[0] != "all" {
			t.Errorf("expected frameworks ['all'], got %v", frameworks)
		}
	})

	t.Run("ComplianceMultipleFrameworks", func(t *testing.T) {
		intent := c.Detect(ctx, "Check HIPAA and SOC 2 compliance", nil)
		frameworks, _ := intent.Parameters["frameworks"].([]string)
		if len(frameworks) != 2 || frameworks[0] != "hipaa" || frameworks[1] != "soc2" {
			t.Errorf("expected frameworks ['hipaa','soc2'], got %v", frameworks)
		}
	})

	t.Run("AssignTask", func(t *testing.T) {
		intent := c.Detect(ctx, "Assign the access review to sarah by tomorrow", nil)
		if intent.Name != model.IntentAssignTask {
			t.Fatalf("expected assign_task, got %s", intent.Name)
		}
		if assignee, _ := intent.Parameters["assignee"].(string); assignee != "sarah" {
			t.Errorf("expected assignee 'sarah', got %v", intent.Parameters["assignee"])
		}
		if title, _ := intent.Parameters["title"].(string); title != "the access review" {
			t.Errorf("expected title 'the access review', got %v", intent.Parameters["title"])
		}
		if due, _ := intent.Parameters["due_date"].(string); due != "2026-08-21T00:00:00Z" {
			t.Errorf("expected due_date 2026-08-21T00:00:00Z, got %v", intent.Parameters["due_date"])
		}
	})

	t.Run("ScheduleNextWeek", func(t *testing.T) {
		intent := c.Detect(ctx, "Remind me to review the DPA next week", nil)
		if title, _ := intent.Parameters["title"].(string); title != "review the DPA" {
			t.Errorf("expected title 'review the DPA', got %v", intent.Parameters["title"])
		}
		if due, _ := intent.Parameters["due_date"].(string); due != "2026-08-27T00:00:00Z" {
			t.Errorf("expected due_date 2026-08-27T00:00:00Z, got %v", intent.Parameters["due_date"])
		}
	})

	t.Run("SearchQueryStripsVerb", func(t *testing.T) {
		intent := c.Detect(ctx, "Find the data retention policy", nil)
		if query, _ := intent.Parameters["query"].(string); query != "the data retention policy" {
			t.Errorf("expected stripped query, got %v", intent.Parameters["query"])
		}
	})

	t.Run("UploadFilename", func(t *testing.T) {
		intent := c.Detect(ctx, "Upload privacy-policy.pdf for GDPR", nil)
		if filename, _ := intent.Parameters["filename"].(string); filename != "privacy-policy.pdf" {
			t.Errorf("expected filename captured, got %v", intent.Parameters["filename"])
		}
		frameworks, _ := intent.Parameters["frameworks"].([]string)
		if len(frameworks) != 1 || frameworks[0] != "gdpr" {
			t.Errorf("expected frameworks ['gdpr'], got %v", frameworks)
		}
	})

	t.Run("TrendMonths", func(t *testing.T) {
		intent := c.Detect(ctx, "Show me compliance trends for the last 3 months", nil)
		if months, _ := intent.Parameters["months"].(int); months != 3 {
			t.Errorf("expected months 3, got %v", intent.Parameters["months"])
		}
	})

	t.Run("AnalyticsPeriod", func(t *testing.T) {
		intent := c.Detect(ctx, "Show me this week's stats", nil)
		if period, _ := intent.Parameters["period"].(string); period != "7d" {
			t.Errorf("expected period '7d', got %v", intent.Parameters["period"])
		}
	})

	t.Run("TeamInvite", func(t *testing.T) {
		intent := c.Detect(ctx, "Invite jane@acme.test to the team", nil)
		if op, _ := intent.Parameters["operation"].(string); op != "invite" {
			t.Errorf("expected operation 'invite', got %v", intent.Parameters["operation"])
		}
		if email, _ := intent.Parameters["email"].(string); email != "jane@acme.test" {
			t.Errorf("expected email captured, got %v", intent.Parameters["email"])
		}
	})

	t.Run("ResolveWithoutReference", func(t *testing.T) {
		intent := c.Detect(ctx, "Please resolve the issue", nil)
		if intent.Name != model.IntentResolveIssue {
			t.Fatalf("expected resolve_issue, got %s", intent.Name)
		}
		if _, ok := intent.Parameters["issue"]; ok {
			t.Errorf("expected no issue reference, got %v", intent.Parameters["issue"])
		}
	})
}

func TestValidateParameters(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name   string
		intent model.Intent
		want   bool
	}{
		{
			"AssignTaskMissingAssignee",
			model.Intent{Name: model.IntentAssignTask, Parameters: map[string]interface{}{}},
			false,
		},
		{
			"AssignTaskWithAssignee",
			model.Intent{Name: model.IntentAssignTask, Parameters: map[string]interface{}{"assignee": "sarah"}},
			true,
		},
		{
			"AssignTaskBlankAssignee",
			model.Intent{Name: model.IntentAssignTask, Parameters: map[string]interface{}{"assignee": "   "}},
			false,
		},
		{
			"ResolveIssueMissingReference",
			model.Intent{Name: model.IntentResolveIssue, Parameters: map[string]interface{}{}},
			false,
		},
		{
			"ResolveIssueWithReference",
			model.Intent{Name: model.IntentResolveIssue, Parameters: map[string]interface{}{"issue": "42"}},
			true,
		},
		{
			"NoRequiredParameters",
			model.Intent{Name: model.IntentCheckCompliance, Parameters: nil},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ValidateParameters(tt.intent); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
