package actions

import (
	"context"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
)

// Executor dispatches a classified action to its handler. Implementations
// never propagate handler errors; every failure is folded into the result.
type Executor interface {
	Execute(ctx context.Context, sc model.Scope, action string, params map[string]interface{}, snapshot model.ContextSnapshot) model.ActionResult
}

// ActionExecutor runs actions through the registry.
type ActionExecutor struct {
	registry *Registry
	l        log.Logger
}

var _ Executor = (*ActionExecutor)(nil)

// New creates a new ActionExecutor
func New(registry *Registry, l log.Logger) *ActionExecutor {
	return &ActionExecutor{
		registry: registry,
		l:        l,
	}
}

// Execute looks up and runs the handler for one action. An unregistered
// name is a classifier/dispatch-table mismatch, not user input, so it is
// reported via DPanicf (panics in development, logs in production) before
// degrading to a failure result.
func (e *ActionExecutor) Execute(ctx context.Context, sc model.Scope, action string, params map[string]interface{}, snapshot model.ContextSnapshot) model.ActionResult {
	handler, ok := e.registry.Get(action)
	if !ok {
		e.l.DPanicf(ctx, "actions: no handler registered for %q", action)
		return model.ActionResult{
			Success: false,
			Action:  action,
			Error:   "no handler registered for action",
		}
	}

	result, err := handler.Execute(ctx, sc, params, snapshot)
	if err != nil {
		e.l.Errorf(ctx, "actions: %s failed: %v", action, err)
		return model.ActionResult{
			Success: false,
			Action:  action,
			Error:   err.Error(),
		}
	}

	result.Success = true
	result.Action = action
	result.Error = ""
	e.l.Infof(ctx, "actions: %s completed (workspace=%s)", action, sc.WorkspaceID)
	return result
}
