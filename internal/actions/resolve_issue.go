package actions

import (
	"context"
	"errors"
	"fmt"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

// ErrNoIssueReference is returned when resolution is requested without an
// identifiable issue.
var ErrNoIssueReference = errors.New("no issue reference given")

type resolveIssueHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewResolveIssueHandler creates the resolve_issue handler.
func NewResolveIssueHandler(p platform.IPlatform, l log.Logger) *resolveIssueHandler {
	return &resolveIssueHandler{platform: p, l: l}
}

func (h *resolveIssueHandler) Name() string { return model.ActionResolveIssue }

func (h *resolveIssueHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	issueID := paramString(params, "issue")
	if issueID == "" {
		return model.ActionResult{}, ErrNoIssueReference
	}

	issue, err := h.platform.ResolveIssue(ctx, sc.WorkspaceID, issueID, platform.ResolveIssueRequest{
		ResolvedBy: sc.UserID,
	})
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("issue resolution failed: %w", err)
	}

	return model.ActionResult{
		Data: map[string]interface{}{
			"issue_id": issue.ID,
			"title":    issue.Title,
			"status":   issue.Status,
		},
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/issues/" + issue.ID},
		},
	}, nil
}
