package platform

import "time"

// Overview is the workspace compliance summary returned by the overview endpoint.
type Overview struct {
	WorkspaceID      string   `json:"workspace_id"`
	Name             string   `json:"name"`
	Industry         string   `json:"industry"`
	ComplianceScore  int      `json:"compliance_score"`
	ActiveFrameworks []string `json:"active_frameworks"`
}

// Issue is a single compliance issue tracked by the platform.
type Issue struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Severity    string     `json:"severity"` // critical, high, medium, low
	Status      string     `json:"status"`   // open, in_progress, resolved
	Framework   string     `json:"framework,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// IssueQuery filters the issue listing. Zero values are omitted from the query string.
type IssueQuery struct {
	Status    string
	Severity  string
	Framework string
	Limit     int
}

// Document is a compliance document known to the platform.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"` // pending, processing, indexed, failed
	Framework  string    `json:"framework,omitempty"`
	Snippet    string    `json:"snippet,omitempty"`
	Score      float64   `json:"score,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// DocumentQuery filters the document listing.
type DocumentQuery struct {
	Status    string
	Framework string
	Limit     int
}

// Deadline is an upcoming compliance deadline.
type Deadline struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Framework string    `json:"framework,omitempty"`
	DueAt     time.Time `json:"due_at"`
}

// Member is a workspace member.
type Member struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`   // owner, admin, member, viewer
	Status   string `json:"status"` // active, invited
	JoinedAt string `json:"joined_at,omitempty"`
}

// ComplianceCheckRequest is the body for starting a compliance check run.
type ComplianceCheckRequest struct {
	Frameworks  []string `json:"frameworks,omitempty"`
	TriggeredBy string   `json:"triggered_by,omitempty"`
}

// ComplianceCheckRun is the result of a compliance check run.
type ComplianceCheckRun struct {
	ID             string    `json:"id"`
	Score          int       `json:"score"`
	IssuesFound    int       `json:"issues_found"`
	CriticalIssues int       `json:"critical_issues"`
	Frameworks     []string  `json:"frameworks"`
	CompletedAt    time.Time `json:"completed_at"`
}

// DocumentSearchRequest is the body for the document search endpoint.
type DocumentSearchRequest struct {
	Query      string   `json:"query"`
	Frameworks []string `json:"frameworks,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// GenerateReportRequest is the body for generating a compliance report.
type GenerateReportRequest struct {
	Framework   string `json:"framework,omitempty"`
	Format      string `json:"format,omitempty"` // pdf, html
	RequestedBy string `json:"requested_by,omitempty"`
}

// Report is a generated compliance report.
type Report struct {
	ID          string    `json:"id"`
	Framework   string    `json:"framework,omitempty"`
	Format      string    `json:"format"`
	Pages       int       `json:"pages"`
	Sections    []string  `json:"sections"`
	DownloadURL string    `json:"download_url"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AssignTaskRequest is the body for creating a compliance task.
type AssignTaskRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	AssigneeEmail string     `json:"assignee_email,omitempty"`
	Framework     string     `json:"framework,omitempty"`
	Priority      string     `json:"priority,omitempty"` // high, medium, low
	DueAt         *time.Time `json:"due_at,omitempty"`
	CreatedBy     string     `json:"created_by,omitempty"`
}

// Task is a compliance task tracked by the platform.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	AssigneeEmail string     `json:"assignee_email,omitempty"`
	Framework     string     `json:"framework,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	Status        string     `json:"status"`
	DueAt         *time.Time `json:"due_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ResolveIssueRequest is the body for resolving an issue.
type ResolveIssueRequest struct {
	Resolution string `json:"resolution,omitempty"`
	ResolvedBy string `json:"resolved_by,omitempty"`
}

// Analytics is the workspace analytics summary for a period.
type Analytics struct {
	Period            string  `json:"period"` // e.g. "30d"
	ComplianceScore   int     `json:"compliance_score"`
	ScoreChange       int     `json:"score_change"`
	IssuesOpened      int     `json:"issues_opened"`
	IssuesResolved    int     `json:"issues_resolved"`
	DocumentsUploaded int     `json:"documents_uploaded"`
	TasksCompleted    int     `json:"tasks_completed"`
	AvgResolutionDays float64 `json:"avg_resolution_days"`
}

// TrendPoint is one month of compliance score history.
type TrendPoint struct {
	Month string `json:"month"` // e.g. "2026-05"
	Score int    `json:"score"`
}

// TrendReport is the compliance score trend over a window of months.
type TrendReport struct {
	Months    int          `json:"months"`
	Points    []TrendPoint `json:"points"`
	Direction string       `json:"direction"` // improving, declining, stable
}

// InviteMemberRequest is the body for inviting a workspace member.
type InviteMemberRequest struct {
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	InvitedBy string `json:"invited_by,omitempty"`
}

// UploadSlotRequest is the body for registering a pending document upload.
type UploadSlotRequest struct {
	Filename  string `json:"filename,omitempty"`
	Framework string `json:"framework,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

// UploadSlot is a registered upload destination for a document.
type UploadSlot struct {
	ID        string    `json:"id"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}
