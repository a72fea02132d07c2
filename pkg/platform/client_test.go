package platform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"compliance-assistant/pkg/platform"
)

func TestPlatformClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// Routing based on URL path and Method
		path := r.URL.Path

		if r.Method == http.MethodGet && strings.HasSuffix(path, "/overview") {
			if strings.Contains(path, "ws-missing") {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":"workspace not found"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"workspace_id": "ws-1",
				"name": "Acme Corp",
				"industry": "fintech",
				"compliance_score": 82,
				"active_frameworks": ["gdpr", "soc2"]
			}`))
			return
		}

		if r.Method == http.MethodGet && strings.HasSuffix(path, "/issues") {
			if r.URL.Query().Get("severity") == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"issues": [
					{"id": "iss-1", "title": "Missing DPA", "severity": "critical", "status": "open", "framework": "gdpr", "created_at": "2026-08-01T10:00:00Z"},
					{"id": "iss-2", "title": "Stale access review", "severity": "medium", "status": "open", "framework": "soc2", "created_at": "2026-08-10T09:30:00Z"}
				]
			}`))
			return
		}

		if r.Method == http.MethodPost && strings.HasSuffix(path, "/documents/search") {
			var req platform.DocumentSearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Query == "" || req.Limit <= 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"documents": [
					{"id": "doc-1", "name": "privacy-policy.pdf", "status": "indexed", "framework": "gdpr", "score": 0.91, "uploaded_at": "2026-07-15T08:00:00Z"}
				]
			}`))
			return
		}

		if r.Method == http.MethodPost && strings.HasSuffix(path, "/tasks") {
			var req platform.AssignTaskRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Title == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"title is required"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{
				"id": "task-1",
				"title": "` + req.Title + `",
				"assignee_email": "` + req.AssigneeEmail + `",
				"status": "open",
				"created_at": "2026-08-20T12:00:00Z"
			}`))
			return
		}

		if r.Method == http.MethodPost && strings.Contains(path, "/issues/") && strings.HasSuffix(path, "/resolve") {
			if strings.Contains(path, "iss-missing") {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":"issue not found"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "iss-1",
				"title": "Missing DPA",
				"severity": "critical",
				"status": "resolved",
				"created_at": "2026-08-01T10:00:00Z"
			}`))
			return
		}

		if r.Method == http.MethodPost && strings.HasSuffix(path, "/compliance-checks") {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{
				"id": "run-1",
				"score": 78,
				"issues_found": 5,
				"critical_issues": 1,
				"frameworks": ["gdpr"],
				"completed_at": "2026-08-20T12:05:00Z"
			}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := platform.NewClient(ts.URL, "test-key")
	ctx := context.Background()

	t.Run("GetOverview Success", func(t *testing.T) {
		overview, err := client.GetOverview(ctx, "ws-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if overview.Name != "Acme Corp" {
			t.Errorf("expected workspace name 'Acme Corp', got %q", overview.Name)
		}
		if overview.ComplianceScore != 82 {
			t.Errorf("expected compliance score 82, got %d", overview.ComplianceScore)
		}
		if len(overview.ActiveFrameworks) != 2 {
			t.Errorf("expected 2 active frameworks, got %d", len(overview.ActiveFrameworks))
		}
	})

	t.Run("GetOverview NotFound", func(t *testing.T) {
		_, err := client.GetOverview(ctx, "ws-missing")
		if err == nil {
			t.Fatal("expected error for missing workspace, got nil")
		}
		if !strings.Contains(err.Error(), "404") {
			t.Errorf("expected error to carry status 404, got %v", err)
		}
	})

	t.Run("ListIssues Success", func(t *testing.T) {
		issues, err := client.ListIssues(ctx, "ws-1", platform.IssueQuery{Status: "open"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(issues) != 2 {
			t.Fatalf("expected 2 issues, got %d", len(issues))
		}
		if issues[0].Severity != "critical" {
			t.Errorf("expected first issue severity 'critical', got %q", issues[0].Severity)
		}
	})

	t.Run("ListIssues ServerError", func(t *testing.T) {
		_, err := client.ListIssues(ctx, "ws-1", platform.IssueQuery{Severity: "cause_500"})
		if err == nil {
			t.Fatal("expected error on server failure, got nil")
		}
	})

	t.Run("SearchDocuments AppliesDefaultLimit", func(t *testing.T) {
		docs, err := client.SearchDocuments(ctx, "ws-1", platform.DocumentSearchRequest{Query: "data retention"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("expected 1 document, got %d", len(docs))
		}
		if docs[0].Name != "privacy-policy.pdf" {
			t.Errorf("expected document 'privacy-policy.pdf', got %q", docs[0].Name)
		}
	})

	t.Run("AssignTask Success", func(t *testing.T) {
		task, err := client.AssignTask(ctx, "ws-1", platform.AssignTaskRequest{
			Title:         "Review GDPR consent flow",
			AssigneeEmail: "jane@acme.test",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if task.ID != "task-1" {
			t.Errorf("expected task id 'task-1', got %q", task.ID)
		}
		if task.AssigneeEmail != "jane@acme.test" {
			t.Errorf("expected assignee to round-trip, got %q", task.AssigneeEmail)
		}
	})

	t.Run("AssignTask MissingTitle", func(t *testing.T) {
		_, err := client.AssignTask(ctx, "ws-1", platform.AssignTaskRequest{})
		if err == nil {
			t.Fatal("expected error for missing title, got nil")
		}
		if !strings.Contains(err.Error(), "title is required") {
			t.Errorf("expected error body to be captured, got %v", err)
		}
	})

	t.Run("ResolveIssue Success", func(t *testing.T) {
		issue, err := client.ResolveIssue(ctx, "ws-1", "iss-1", platform.ResolveIssueRequest{Resolution: "DPA signed"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if issue.Status != "resolved" {
			t.Errorf("expected status 'resolved', got %q", issue.Status)
		}
	})

	t.Run("ResolveIssue NotFound", func(t *testing.T) {
		_, err := client.ResolveIssue(ctx, "ws-1", "iss-missing", platform.ResolveIssueRequest{})
		if err == nil {
			t.Fatal("expected error for missing issue, got nil")
		}
	})

	t.Run("RunComplianceCheck Success", func(t *testing.T) {
		run, err := client.RunComplianceCheck(ctx, "ws-1", platform.ComplianceCheckRequest{Frameworks: []string{"gdpr"}})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if run.Score != 78 {
			t.Errorf("expected score 78, got %d", run.Score)
		}
		if run.CriticalIssues != 1 {
			t.Errorf("expected 1 critical issue, got %d", run.CriticalIssues)
		}
	})
}

func TestPlatformClient_AuthHeader(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"workspace_id":"ws-1","name":"Acme","compliance_score":50}`))
	}))
	defer ts.Close()

	client := platform.NewClient(ts.URL, "secret-token")
	if _, err := client.GetOverview(context.Background(), "ws-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("expected bearer token header, got %q", gotAuth)
	}
}
