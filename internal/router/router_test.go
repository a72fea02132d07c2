package router

import (
	"context"
	"errors"
	"testing"

	"compliance-assistant/pkg/llmprovider"
	"compliance-assistant/pkg/log"
)

// mockGenerator is a test implementation of the ContentGenerator interface
type mockGenerator struct {
	response *llmprovider.Response
	err      error
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: text}},
		},
	}
}

func TestClassify_Success(t *testing.T) {
	r := New(&mockGenerator{
		response: textResponse(`{"intent": "check_compliance", "confidence": 92, "entities": {"frameworks": ["gdpr"]}, "reasoning": "User asks for a check"}`),
	}, log.NewNop())

	out, err := r.Classify(context.Background(), "am I compliant with gdpr rules", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Intent != "check_compliance" {
		t.Errorf("expected intent check_compliance, got %s", out.Intent)
	}
	if out.Confidence != 92 {
		t.Errorf("expected confidence 92, got %d", out.Confidence)
	}
	if _, ok := out.Entities["frameworks"]; !ok {
		t.Error("expected frameworks entity to survive parsing")
	}
}

func TestClassify_StripsMarkdownFences(t *testing.T) {
	r := New(&mockGenerator{
		response: textResponse("```json\n{\"intent\": \"find_issues\", \"confidence\": 80, \"reasoning\": \"ok\"}\n```"),
	}, log.NewNop())

	out, err := r.Classify(context.Background(), "anything broken?", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Intent != "find_issues" {
		t.Errorf("expected intent find_issues, got %s", out.Intent)
	}
}

func TestClassify_FallbackOnUnparseableResponse(t *testing.T) {
	r := New(&mockGenerator{
		response: textResponse("sorry, I cannot help with that"),
	}, log.NewNop())

	out, err := r.Classify(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("parse failures must not surface as errors, got %v", err)
	}
	if out.Intent != RouterFallbackIntent {
		t.Errorf("expected fallback intent %s, got %s", RouterFallbackIntent, out.Intent)
	}
	if out.Confidence != RouterFallbackConfidence {
		t.Errorf("expected fallback confidence %d, got %d", RouterFallbackConfidence, out.Confidence)
	}
}

func TestClassify_FallbackOnEmptyResponse(t *testing.T) {
	r := New(&mockGenerator{response: textResponse("")}, log.NewNop())

	out, err := r.Classify(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("empty responses must not surface as errors, got %v", err)
	}
	if out.Intent != RouterFallbackIntent {
		t.Errorf("expected fallback intent %s, got %s", RouterFallbackIntent, out.Intent)
	}
}

func TestClassify_ProviderErrorSurfaces(t *testing.T) {
	r := New(&mockGenerator{err: errors.New("all providers failed")}, log.NewNop())

	if _, err := r.Classify(context.Background(), "hello", nil); err == nil {
		t.Fatal("expected provider failure to surface, got nil")
	}
}

func TestRouterOutput_Hint(t *testing.T) {
	out := RouterOutput{Intent: "assign_task", Confidence: 85, Entities: map[string]interface{}{"assignee": "sarah"}}

	hint := out.Hint()
	if hint.Intent != "assign_task" {
		t.Errorf("expected intent carried over, got %s", hint.Intent)
	}
	if hint.Confidence != 0.85 {
		t.Errorf("expected confidence rescaled to 0.85, got %f", hint.Confidence)
	}
	if hint.Entities["assignee"] != "sarah" {
		t.Errorf("expected entities carried over, got %v", hint.Entities)
	}

	clamped := RouterOutput{Intent: "x", Confidence: 250}.Hint()
	if clamped.Confidence != 1 {
		t.Errorf("expected confidence clamped to 1, got %f", clamped.Confidence)
	}
}
