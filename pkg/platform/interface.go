package platform

import (
	"context"
)

// IPlatform defines the interface for the compliance platform REST API.
// Implementations are safe for concurrent use.
type IPlatform interface {
	// Workspace state reads.
	GetOverview(ctx context.Context, workspaceID string) (*Overview, error)
	ListIssues(ctx context.Context, workspaceID string, q IssueQuery) ([]Issue, error)
	ListDocuments(ctx context.Context, workspaceID string, q DocumentQuery) ([]Document, error)
	ListDeadlines(ctx context.Context, workspaceID string, withinDays int) ([]Deadline, error)
	ListMembers(ctx context.Context, workspaceID string) ([]Member, error)
	GetAnalytics(ctx context.Context, workspaceID string, period string) (*Analytics, error)
	GetTrends(ctx context.Context, workspaceID string, months int) (*TrendReport, error)

	// Workspace mutations.
	RunComplianceCheck(ctx context.Context, workspaceID string, req ComplianceCheckRequest) (*ComplianceCheckRun, error)
	SearchDocuments(ctx context.Context, workspaceID string, req DocumentSearchRequest) ([]Document, error)
	GenerateReport(ctx context.Context, workspaceID string, req GenerateReportRequest) (*Report, error)
	AssignTask(ctx context.Context, workspaceID string, req AssignTaskRequest) (*Task, error)
	ResolveIssue(ctx context.Context, workspaceID, issueID string, req ResolveIssueRequest) (*Issue, error)
	InviteMember(ctx context.Context, workspaceID string, req InviteMemberRequest) (*Member, error)
	CreateUploadSlot(ctx context.Context, workspaceID string, req UploadSlotRequest) (*UploadSlot, error)
}
