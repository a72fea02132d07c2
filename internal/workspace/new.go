package workspace

import (
	"context"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
	"compliance-assistant/pkg/platform"
)

// Reader is the slice of the platform client the aggregator reads from.
type Reader interface {
	GetOverview(ctx context.Context, workspaceID string) (*platform.Overview, error)
	ListIssues(ctx context.Context, workspaceID string, q platform.IssueQuery) ([]platform.Issue, error)
	ListDocuments(ctx context.Context, workspaceID string, q platform.DocumentQuery) ([]platform.Document, error)
	ListDeadlines(ctx context.Context, workspaceID string, withinDays int) ([]platform.Deadline, error)
}

// Aggregator assembles the per-request workspace snapshot.
type Aggregator interface {
	Gather(ctx context.Context, sc model.Scope, hints Hints) model.ContextSnapshot
}

// ContextAggregator collects workspace facts from the compliance platform.
type ContextAggregator struct {
	reader Reader
	l      log.Logger
}

var _ Aggregator = (*ContextAggregator)(nil)

// New creates a new ContextAggregator
func New(reader Reader, l log.Logger) *ContextAggregator {
	return &ContextAggregator{
		reader: reader,
		l:      l,
	}
}
