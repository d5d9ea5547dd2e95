package oklchtheme

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// CheckResult holds the issues found by Check
type CheckResult struct {
	Issues       []Issue
	FilesScanned int
	Literals     int // OKLCH literals seen
	ExactMatches int
	ErrorCount   int
	WarningCount int
}

// Check reports every OKLCH literal in the target files that does not match
// the theme exactly. Files are only read.
func Check(config Config, logger *slog.Logger) (*CheckResult, error) {
	engine, err := Prepare(config)
	if err != nil {
		return nil, err
	}

	targets, err := ResolveTargets(config)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{}
	for _, path := range targets.Paths {
		// #nosec G304 - path comes from trusted configuration or discovery
		content, err := os.ReadFile(path)
		if err != nil {
			if targets.Single {
				return nil, fmt.Errorf("read file: %w", err)
			}
			logger.Warn("Skipping file", "file", path, "error", err)
			continue
		}
		result.FilesScanned++
		result.addFindings(RelativePath(path), string(content), engine.Findings(string(content)))
	}

	return result, nil
}

// addFindings converts findings for one file into issues.
func (r *CheckResult) addFindings(filename, css string, findings []Finding) {
	for _, f := range findings {
		r.Literals++
		if f.Outcome == OutcomeExact {
			r.ExactMatches++
			continue
		}

		line, col, _ := parse.Position(strings.NewReader(css), f.Offset)
		issue := Issue{
			FromLinter:  LinterName,
			Pos:         IssuePos{Filename: filename, Line: line, Column: col},
			SourceLines: []string{sourceLine(css, f.Offset)},
		}

		switch f.Outcome {
		case OutcomeClose:
			issue.Severity = SeverityWarning
			issue.Text = fmt.Sprintf(IssueCloseMatch, f.Token, f.Match.Entry.Name)
			issue.Suggestion = f.Match.Entry.Name
			r.WarningCount++
		case OutcomeUnparsable:
			issue.Severity = SeverityError
			issue.Text = fmt.Sprintf(IssueUnparsable, f.Token)
			r.ErrorCount++
		default:
			issue.Severity = SeverityError
			issue.Text = fmt.Sprintf(IssueNoTheme, f.Token)
			r.ErrorCount++
		}
		r.Issues = append(r.Issues, issue)
	}
}

// sourceLine returns the line of css containing offset, without its newline.
func sourceLine(css string, offset int) string {
	start := strings.LastIndexByte(css[:offset], '\n') + 1
	end := strings.IndexByte(css[offset:], '\n')
	if end == -1 {
		return strings.TrimRight(css[start:], "\r")
	}
	return strings.TrimRight(css[start:offset+end], "\r")
}
