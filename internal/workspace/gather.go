package workspace

import (
	"context"

	"golang.org/x/sync/errgroup"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/platform"
)

// Gather assembles a workspace snapshot for one turn. Sub-queries are
// independent reads and run concurrently; each one degrades to safe
// defaults on failure, so a flaky collaborator never aborts the turn.
func (a *ContextAggregator) Gather(ctx context.Context, sc model.Scope, hints Hints) model.ContextSnapshot {
	snapshot := model.ContextSnapshot{
		UserRole:          sc.Role,
		ActiveFrameworks:  []string{},
		UpcomingDeadlines: []model.Deadline{},
		CurrentPage:       hints.CurrentPage,
		RecentActions:     hints.RecentActions,
		SelectedDocuments: hints.SelectedDocuments,
	}

	var (
		overview  *platform.Overview
		issues    []platform.Issue
		pending   []platform.Document
		deadlines []platform.Deadline
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if overview, err = a.reader.GetOverview(gctx, sc.WorkspaceID); err != nil {
			a.l.Warnf(ctx, "workspace: overview lookup failed: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if issues, err = a.reader.ListIssues(gctx, sc.WorkspaceID, platform.IssueQuery{Status: "open", Limit: issueScanLimit}); err != nil {
			a.l.Warnf(ctx, "workspace: issue lookup failed: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if pending, err = a.reader.ListDocuments(gctx, sc.WorkspaceID, platform.DocumentQuery{Status: "pending", Limit: issueScanLimit}); err != nil {
			a.l.Warnf(ctx, "workspace: document lookup failed: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if deadlines, err = a.reader.ListDeadlines(gctx, sc.WorkspaceID, deadlineWindowDays); err != nil {
			a.l.Warnf(ctx, "workspace: deadline lookup failed: %v", err)
		}
		return nil
	})
	// Sub-queries swallow their own failures; Wait only synchronizes.
	_ = g.Wait()

	if overview != nil {
		snapshot.WorkspaceName = overview.Name
		snapshot.Industry = overview.Industry
		snapshot.ComplianceScore = overview.ComplianceScore
		if len(overview.ActiveFrameworks) > 0 {
			snapshot.ActiveFrameworks = overview.ActiveFrameworks
		}
	}

	snapshot.UnresolvedIssues = len(issues)
	for _, issue := range issues {
		if issue.Severity == "critical" {
			snapshot.CriticalIssues++
		}
	}

	snapshot.PendingDocuments = len(pending)

	for _, d := range deadlines {
		snapshot.UpcomingDeadlines = append(snapshot.UpcomingDeadlines, model.Deadline{
			Title:     d.Title,
			Framework: d.Framework,
			DueAt:     d.DueAt,
		})
	}

	return snapshot
}
