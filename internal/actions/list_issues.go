package actions

import (
	"context"
	"fmt"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

type listIssuesHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewListIssuesHandler creates the list_issues handler.
func NewListIssuesHandler(p platform.IPlatform, l log.Logger) *listIssuesHandler {
	return &listIssuesHandler{platform: p, l: l}
}

func (h *listIssuesHandler) Name() string { return model.ActionListIssues }

func (h *listIssuesHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	issues, err := h.platform.ListIssues(ctx, sc.WorkspaceID, platform.IssueQuery{
		Status:    "open",
		Severity:  paramString(params, "severity"),
		Framework: frameworkParam(params),
	})
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("issue lookup failed: %w", err)
	}

	bySeverity := map[string]int{}
	results := make([]map[string]interface{}, 0, len(issues))
	for _, issue := range issues {
		bySeverity[issue.Severity]++
		results = append(results, map[string]interface{}{
			"id":        issue.ID,
			"title":     issue.Title,
			"severity":  issue.Severity,
			"framework": issue.Framework,
		})
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"count":       len(issues),
			"by_severity": bySeverity,
			"issues":      results,
		},
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/issues"},
		},
	}, nil
}
