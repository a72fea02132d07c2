package actions

import (
	"context"
	"fmt"
	"time"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

const defaultTaskTitle = "Compliance follow-up"

type assignTaskHandler struct {
	platform platform.IPlatform
	l        log.Logger
}

// NewAssignTaskHandler creates the assign_task handler. The assignee
// parameter is guaranteed by classifier validation before dispatch.
func NewAssignTaskHandler(p platform.IPlatform, l log.Logger) *assignTaskHandler {
	return &assignTaskHandler{platform: p, l: l}
}

func (h *assignTaskHandler) Name() string { return model.ActionAssignTask }

func (h *assignTaskHandler) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}, snapshot model.ContextSnapshot) (model.ActionResult, error) {
	title := paramString(params, "title")
	if title == "" {
		title = defaultTaskTitle
	}

	req := platform.AssignTaskRequest{
		Title:         title,
		AssigneeEmail: paramString(params, "assignee"),
		Framework:     frameworkParam(params),
		Priority:      "medium",
		CreatedBy:     sc.UserID,
	}
	if due := paramTime(params, "due_date"); !due.IsZero() {
		req.DueAt = &due
	}

	task, err := h.platform.AssignTask(ctx, sc.WorkspaceID, req)
	if err != nil {
		return model.ActionResult{}, fmt.Errorf("task assignment failed: %w", err)
	}

	data := map[string]interface{}{
		"task_id":  task.ID,
		"title":    task.Title,
		"assignee": task.AssigneeEmail,
	}
	if task.DueAt != nil {
		data["due_at"] = task.DueAt.Format(time.RFC3339)
	}

	return model.ActionResult{
		Data: data,
		Actions: []model.ClientAction{
			{Type: model.ClientActionNavigate, Target: "/tasks"},
		},
	}, nil
}
