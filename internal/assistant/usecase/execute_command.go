package usecase

import (
	"context"
	"fmt"
	"strings"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/model"
	"compliance-assistant/internal/workspace"
)

// ExecuteCommand runs a direct command without touching any conversation.
// Commands that do not map to an executable action come back success=false
// without reaching the executor.
func (uc *implUseCase) ExecuteCommand(ctx context.Context, sc model.Scope, input assistant.ExecuteCommandInput) (assistant.ExecuteCommandOutput, error) {
	command := strings.TrimSpace(input.Command)
	if command == "" {
		return assistant.ExecuteCommandOutput{}, assistant.ErrEmptyCommand
	}

	uc.l.Infof(ctx, "ExecuteCommand: user=%s workspace=%s command=%q", sc.UserID, sc.WorkspaceID, command)

	intent := uc.classifier.Detect(ctx, command, nil)
	if !intent.RequiresAction {
		return assistant.ExecuteCommandOutput{
			Success: false,
			Message: fmt.Sprintf("%q does not map to an executable action. Questions go through chat.", command),
		}, nil
	}

	// Caller-supplied parameters override what the classifier extracted.
	intent.Parameters = mergeParameters(intent.Parameters, input.Parameters)
	if !uc.classifier.ValidateParameters(intent) {
		return assistant.ExecuteCommandOutput{
			Success: false,
			Message: uc.responder.Clarify(intent),
		}, nil
	}

	snapshot := uc.aggregator.Gather(ctx, sc, workspace.Hints{})
	result := uc.executor.Execute(ctx, sc, intent.Action, intent.Parameters, snapshot)

	return assistant.ExecuteCommandOutput{
		Success: result.Success,
		Message: uc.responder.FromAction(result, snapshot),
		Actions: result.Actions,
		Data:    result.Data,
	}, nil
}
