package classifier

// Confidence scoring for pattern hits
const (
	baseConfidence    = 0.8
	coverageBonus     = 0.15
	shortInputLength  = 10
	shortInputPenalty = 0.1
)

// Parameter defaults
const (
	DefaultFramework    = "all"
	DefaultReportFormat = "pdf"
	DefaultPeriod       = "30d"
	DefaultTrendMonths  = 6
)

// knownFrameworks maps text occurrences to canonical framework slugs.
// More specific spellings come first so "soc 2" wins over "soc2" etc.;
// duplicates are collapsed during extraction.
var knownFrameworks = []struct {
	match string
	slug  string
}{
	{"gdpr", "gdpr"},
	{"hipaa", "hipaa"},
	{"soc 2", "soc2"},
	{"soc2", "soc2"},
	{"iso 27001", "iso27001"},
	{"iso27001", "iso27001"},
	{"pci dss", "pci_dss"},
	{"pci-dss", "pci_dss"},
	{"pci", "pci_dss"},
	{"ccpa", "ccpa"},
	{"nist", "nist"},
}
