package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"compliance-assistant/pkg/deepseek"
)

func TestNew(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := deepseek.New(deepseek.Config{})
		if err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		client, err := deepseek.New(deepseek.Config{APIKey: "test-key"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.Model() != deepseek.DefaultModel {
			t.Errorf("expected default model %s, got %s", deepseek.DefaultModel, client.Model())
		}
	})
}

func TestGenerateContent(t *testing.T) {
	var lastModel string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		lastModel = req.Model

		if len(req.Messages) > 0 && req.Messages[0].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"message": "backend exploded", "type": "server_error"}}`))
			return
		}

		if len(req.Tools) > 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "cmpl-1",
				"model": "deepseek-chat",
				"choices": [
					{
						"index": 0,
						"message": {
							"role": "assistant",
							"tool_calls": [
								{
									"id": "call_check",
									"type": "function",
									"function": {"name": "check_compliance", "arguments": "{\"framework\": \"gdpr\"}"}
								}
							]
						},
						"finish_reason": "tool_calls"
					}
				],
				"usage": {"prompt_tokens": 40, "completion_tokens": 12, "total_tokens": 52}
			}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-2",
			"model": "deepseek-chat",
			"choices": [
				{
					"index": 0,
					"message": {"role": "assistant", "content": "mocked response string"},
					"finish_reason": "stop"
				}
			],
			"usage": {"prompt_tokens": 20, "completion_tokens": 8, "total_tokens": 28}
		}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "test-api-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("success flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "Hello world"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "mocked response string" {
			t.Errorf("unexpected choices: %+v", resp.Choices)
		}
		if resp.Usage.TotalTokens != 28 {
			t.Errorf("expected 28 total tokens, got %d", resp.Usage.TotalTokens)
		}
		// Empty request model falls back to the client model.
		if lastModel != deepseek.DefaultModel {
			t.Errorf("expected wire model %s, got %s", deepseek.DefaultModel, lastModel)
		}
	})

	t.Run("tool call flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "check gdpr"}},
			Tools: []deepseek.Tool{
				{
					Type: "function",
					Function: deepseek.FunctionDef{
						Name:        "check_compliance",
						Description: "run a compliance check",
					},
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		calls := resp.Choices[0].Message.ToolCalls
		if len(calls) != 1 || calls[0].Function.Name != "check_compliance" {
			t.Fatalf("unexpected tool calls: %+v", calls)
		}
		if calls[0].Function.Arguments != `{"framework": "gdpr"}` {
			t.Errorf("unexpected arguments: %s", calls[0].Function.Arguments)
		}
	})

	t.Run("server error flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "cause_500"}},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
	})

	t.Run("unauthorized error flow", func(t *testing.T) {
		badClient, err := deepseek.New(deepseek.Config{APIKey: "bad-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := badClient.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "Hello world"}},
		}); err == nil {
			t.Fatal("expected error from 401 response")
		}
	})
}
