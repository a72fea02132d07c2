package usecase_test

import (
	"context"
	"errors"
	"testing"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/model"
)

func TestExecuteCommand(t *testing.T) {
	t.Run("EmptyCommand", func(t *testing.T) {
		f := newFixture()
		_, err := f.useCase().ExecuteCommand(context.Background(), testScope, assistant.ExecuteCommandInput{Command: " "})
		if !errors.Is(err, assistant.ErrEmptyCommand) {
			t.Errorf("expected ErrEmptyCommand, got %v", err)
		}
	})

	t.Run("NonActionCommandReturnsFalseWithoutDispatch", func(t *testing.T) {
		f := newFixture()
		// Default detection is unknown, which never requires action.
		out, err := f.useCase().ExecuteCommand(context.Background(), testScope, assistant.ExecuteCommandInput{Command: "what is gdpr?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success {
			t.Error("expected success=false")
		}
		if out.Message == "" {
			t.Error("expected an explanatory message")
		}
		if len(f.executor.calls) != 0 {
			t.Errorf("executor must not be invoked, got %+v", f.executor.calls)
		}
	})

	t.Run("DispatchesActionCommand", func(t *testing.T) {
		f := newFixture()
		f.classifier.detectFunc = func(text string, hint *model.NLPHint) model.Intent {
			return actionIntent()
		}
		f.executor.result = model.ActionResult{
			Success: true,
			Action:  model.ActionRunComplianceCheck,
			Data:    map[string]interface{}{"run_id": "run-1"},
			Actions: []model.ClientAction{{Type: model.ClientActionNavigate, Target: "/compliance"}},
		}

		out, err := f.useCase().ExecuteCommand(context.Background(), testScope, assistant.ExecuteCommandInput{Command: "check compliance"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success || out.Message != "action done" {
			t.Errorf("unexpected output %+v", out)
		}
		if out.Data["run_id"] != "run-1" {
			t.Errorf("expected result data passed through, got %+v", out.Data)
		}
		if len(out.Actions) != 1 {
			t.Errorf("expected client actions passed through")
		}
		if len(f.logRepo.stored()) != 0 {
			t.Errorf("commands must not touch the conversation log")
		}
	})

	t.Run("CallerParametersWin", func(t *testing.T) {
		f := newFixture()
		f.classifier.detectFunc = func(text string, hint *model.NLPHint) model.Intent {
			return model.Intent{
				Name:           model.IntentAssignTask,
				RequiresAction: true,
				Action:         model.ActionAssignTask,
				Parameters:     map[string]interface{}{"assignee": "sarah", "title": "Access review"},
			}
		}
		f.executor.result = model.ActionResult{Success: true, Action: model.ActionAssignTask}

		_, err := f.useCase().ExecuteCommand(context.Background(), testScope, assistant.ExecuteCommandInput{
			Command:    "assign the access review to sarah",
			Parameters: map[string]interface{}{"assignee": "minh"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.executor.calls) != 1 {
			t.Fatalf("expected one dispatch")
		}
		params := f.executor.calls[0].params
		if params["assignee"] != "minh" {
			t.Errorf("caller override lost: %+v", params)
		}
		if params["title"] != "Access review" {
			t.Errorf("extracted parameter lost: %+v", params)
		}
	})

	t.Run("MissingParameterShortCircuits", func(t *testing.T) {
		f := newFixture()
		f.classifier.detectFunc = func(text string, hint *model.NLPHint) model.Intent {
			return model.Intent{Name: model.IntentAssignTask, RequiresAction: true, Action: model.ActionAssignTask}
		}
		f.classifier.validFunc = func(intent model.Intent) bool { return false }

		out, err := f.useCase().ExecuteCommand(context.Background(), testScope, assistant.ExecuteCommandInput{Command: "assign the review"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success || out.Message != "which one?" {
			t.Errorf("expected the clarifying message, got %+v", out)
		}
		if len(f.executor.calls) != 0 {
			t.Errorf("executor must not run")
		}
	})
}
