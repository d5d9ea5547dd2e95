package oklchtheme

// Issue is a single check finding in golangci-lint form
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "oklchcheck"
	Text        string   `json:"Text"`        // "oklch(0.5 0.1 40) has no theme match, closest --color-red-700"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Line containing the literal
	Pos         IssuePos `json:"Pos"`         // File location
	Suggestion  string   `json:"Suggestion"`  // Theme name closest to the literal
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName tags every issue produced by Check.
const LinterName = "oklchcheck"

// Issue texts
const (
	IssueCloseMatch = "%s has no exact theme match, closest is %s"
	IssueUnparsable = "%s is not a valid oklch literal"
	IssueNoTheme    = "%s cannot be matched: theme has no colors"
)
