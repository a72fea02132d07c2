package workspace

// Hints carries client-supplied context forwarded with a chat request.
type Hints struct {
	CurrentPage       string
	RecentActions     []string
	SelectedDocuments []string
}

// Query limits for snapshot reads
const (
	issueScanLimit     = 200
	deadlineWindowDays = 30
)
