package actions

import (
	"context"
	"fmt"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

type complianceCheckHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewComplianceCheckHandler creates the run_compliance_check handler.
func NewComplianceCheckHandler(p platform.IPlatform, l log.Logger) *complianceCheckHandler {
	return &complianceCheckHandler{platform: p, l: l}
}

func (h *complianceCheckHandler) Name() string { return model.ActionRunComplianceCheck }

func (h *complianceCheckHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	req := platform.ComplianceCheckRequest{
		Frameworks:  frameworksParam(params),
		TriggeredBy: sc.UserID,
	}

	run, err := h.platform.RunComplianceCheck(ctx, sc.WorkspaceID, req)
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("compliance check failed: %w", err)
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"run_id":          run.ID,
			"score":           run.Score,
			"issues_found":    run.IssuesFound,
			"critical_issues": run.CriticalIssues,
			"frameworks":      run.Frameworks,
		},
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/compliance"},
		},
	}, nil
}
