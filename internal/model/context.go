package model

import "time"

// Deadline is an upcoming compliance obligation.
type Deadline struct {
	Title     string
	Framework string
	DueAt     time.Time
}

// ContextSnapshot is a point-in-time summary of workspace state used to
// ground responses and suggestions. Recomputed every turn, never persisted.
type ContextSnapshot struct {
	WorkspaceName     string
	Industry          string
	UserRole          string
	ComplianceScore   int // 0..100
	UnresolvedIssues  int
	CriticalIssues    int
	PendingDocuments  int
	ActiveFrameworks  []string
	UpcomingDeadlines []Deadline

	// Client-supplied hints, passed through from the chat request.
	CurrentPage       string
	RecentActions     []string
	SelectedDocuments []string
}
