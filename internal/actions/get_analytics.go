package actions

import (
	"context"
	"fmt"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

const defaultAnalyticsPeriod = "30d"

type getAnalyticsHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewGetAnalyticsHandler creates the get_analytics handler.
func NewGetAnalyticsHandler(p platform.IPlatform, l log.Logger) *getAnalyticsHandler {
	return &getAnalyticsHandler{platform: p, l: l}
}

func (h *getAnalyticsHandler) Name() string { return model.ActionGetAnalytics }

func (h *getAnalyticsHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	period := paramString(params, "period")
	if period == "" {
		period = defaultAnalyticsPeriod
	}

	analytics, err := h.platform.GetAnalytics(ctx, sc.WorkspaceID, period)
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("analytics lookup failed: %w", err)
	}

	data := map[string]interface{}{
		"period":              analytics.Period,
		"compliance_score":    analytics.ComplianceScore,
		"score_change":        analytics.ScoreChange,
		"issues_opened":       analytics.IssuesOpened,
		"issues_resolved":     analytics.IssuesResolved,
		"documents_uploaded":  analytics.DocumentsUploaded,
		"tasks_completed":     analytics.TasksCompleted,
		"avg_resolution_days": analytics.AvgResolutionDays,
	}

	return model.ActionResult{
		Data: data,
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/analytics"},
			{Type: model.ClientActionDisplay, Data: data},
		},
	}, nil
}
