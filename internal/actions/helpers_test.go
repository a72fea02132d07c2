package actions_test

import (
	"context"
	"errors"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/platform"
)

// errNotStubbed marks calls the test did not expect.
var errNotStubbed = errors.New("platform method not stubbed")

// mockPlatform implements platform.IPlatform with per-method stubs.
type mockPlatform struct {
	getOverview        func(ctx context.Context, workspaceID string) (*platform.Overview, error)
	listIssues         func(ctx context.Context, workspaceID string, q platform.IssueQuery) ([]platform.Issue, error)
	listDocuments      func(ctx context.Context, workspaceID string, q platform.DocumentQuery) ([]platform.Document, error)
	listDeadlines      func(ctx context.Context, workspaceID string, withinDays int) ([]platform.Deadline, error)
	listMembers        func(ctx context.Context, workspaceID string) ([]platform.Member, error)
	getAnalytics       func(ctx context.Context, workspaceID string, period string) (*platform.Analytics, error)
	getTrends          func(ctx context.Context, workspaceID string, months int) (*platform.TrendReport, error)
	runComplianceCheck func(ctx context.Context, workspaceID string, req platform.ComplianceCheckRequest) (*platform.ComplianceCheckRun, error)
	searchDocuments    func(ctx context.Context, workspaceID string, req platform.DocumentSearchRequest) ([]platform.Document, error)
	generateReport     func(ctx context.Context, workspaceID string, req platform.GenerateReportRequest) (*platform.Report, error)
	assignTask         func(ctx context.Context, workspaceID string, req platform.AssignTaskRequest) (*platform.Task, error)
	resolveIssue       func(ctx context.Context, workspaceID, issueID string, req platform.ResolveIssueRequest) (*platform.Issue, error)
	inviteMember       func(ctx context.Context, workspaceID string, req platform.InviteMemberRequest) (*platform.Member, error)
	createUploadSlot   func(ctx context.Context, workspaceID string, req platform.UploadSlotRequest) (*platform.UploadSlot, error)
}

func (m *mockPlatform) GetOverview(ctx context.Context, workspaceID string) (*platform.Overview, error) {
	if m.getOverview == nil {
		return nil, errNotStubbed
	}
	return m.getOverview(ctx, workspaceID)
}

func (m *mockPlatform) ListIssues(ctx context.Context, workspaceID string, q platform.IssueQuery) ([]platform.Issue, error) {
	if m.listIssues == nil {
		return nil, errNotStubbed
	}
	return m.listIssues(ctx, workspaceID, q)
}

func (m *mockPlatform) ListDocuments(ctx context.Context, workspaceID string, q platform.DocumentQuery) ([]platform.Document, error) {
	if m.listDocuments == nil {
		return nil, errNotStubbed
	}
	return m.listDocuments(ctx, workspaceID, q)
}

func (m *mockPlatform) ListDeadlines(ctx context.Context, workspaceID string, withinDays int) ([]platform.Deadline, error) {
	if m.listDeadlines == nil {
		return nil, errNotStubbed
	}
	return m.listDeadlines(ctx, workspaceID, withinDays)
}

func (m *mockPlatform) ListMembers(ctx context.Context, workspaceID string) ([]platform.Member, error) {
	if m.listMembers == nil {
		return nil, errNotStubbed
	}
	return m.listMembers(ctx, workspaceID)
}

func (m *mockPlatform) GetAnalytics(ctx context.Context, workspaceID string, period string) (*platform.Analytics, error) {
	if m.getAnalytics == nil {
		return nil, errNotStubbed
	}
	return m.getAnalytics(ctx, workspaceID, period)
}

func (m *mockPlatform) GetTrends(ctx context.Context, workspaceID string, months int) (*platform.TrendReport, error) {
	if m.getTrends == nil {
		return nil, errNotStubbed
	}
	return m.getTrends(ctx, workspaceID, months)
}

func (m *mockPlatform) RunComplianceCheck(ctx context.Context, workspaceID string, req platform.ComplianceCheckRequest) (*platform.ComplianceCheckRun, error) {
	if m.runComplianceCheck == nil {
		return nil, errNotStubbed
	}
	return m.runComplianceCheck(ctx, workspaceID, req)
}

func (m *mockPlatform) SearchDocuments(ctx context.Context, workspaceID string, req platform.DocumentSearchRequest) ([]platform.Document, error) {
	if m.searchDocuments == nil {
		return nil, errNotStubbed
	}
	return m.searchDocuments(ctx, workspaceID, req)
}

func (m *mockPlatform) GenerateReport(ctx context.Context, workspaceID string, req platform.GenerateReportRequest) (*platform.Report, error) {
	if m.generateReport == nil {
		return nil, errNotStubbed
	}
	return m.generateReport(ctx, workspaceID, req)
}

func (m *mockPlatform) AssignTask(ctx context.Context, workspaceID string, req platform.AssignTaskRequest) (*platform.Task, error) {
	if m.assignTask == nil {
		return nil, errNotStubbed
	}
	return m.assignTask(ctx, workspaceID, req)
}

func (m *mockPlatform) ResolveIssue(ctx context.Context, workspaceID, issueID string, req platform.ResolveIssueRequest) (*platform.Issue, error) {
	if m.resolveIssue == nil {
		return nil, errNotStubbed
	}
	return m.resolveIssue(ctx, workspaceID, issueID, req)
}

func (m *mockPlatform) InviteMember(ctx context.Context, workspaceID string, req platform.InviteMemberRequest) (*platform.Member, error) {
	if m.inviteMember == nil {
		return nil, errNotStubbed
	}
	return m.inviteMember(ctx, workspaceID, req)
}

func (m *mockPlatform) CreateUploadSlot(ctx context.Context, workspaceID string, req platform.UploadSlotRequest) (*platform.UploadSlot, error) {
	if m.createUploadSlot == nil {
		return nil, errNotStubbed
	}
	return m.createUploadSlot(ctx, workspaceID, req)
}

var adminScope = model.Scope{UserID: "user-1", WorkspaceID: "ws-1", Role: "admin"}
