package oklchtheme

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ReportConfig controls reporter output
type ReportConfig struct {
	UseColors       bool // force colors
	PrintLines      bool // show source lines under issues
	PrintLinterName bool // show the (oklchcheck) suffix
}

// Reporter formats check issues and run summaries
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config.UseColors),
		printLines:      config.PrintLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues outputs issues sorted by file, line and column
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats one issue as file:line:col: message (linter)
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleLocation, location, r.useColors),
		issue.Text,
		RenderStyle(StyleMuted, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleWarning, caret, r.useColors))
	}
}

// buildCaretIndicator aligns "^" under column, keeping tabs from the prefix
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefix := []rune(sourceLine)
	if column-1 < len(prefix) {
		prefix = prefix[:column-1]
	}

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintCheckSummary outputs issue counts after a check
func (r *Reporter) PrintCheckSummary(result CheckResult) {
	fmt.Fprintln(r.w, "")

	total := len(result.Issues)
	if result.ErrorCount > 0 && result.WarningCount > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	}
	fmt.Fprintf(r.w, "* %s: %d\n", LinterName, total)
	fmt.Fprintf(r.w, "* exact matches: %d/%d literals in %s\n",
		result.ExactMatches, result.Literals, pluralizeCount(result.FilesScanned, "file", "files"))

	if result.WarningCount > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleMuted, "Hint: Run oklchtheme to annotate close matches, or --mode var to substitute exact ones", r.useColors))
	}
}

// PrintFileResult reports the outcome for one rewritten file
func (r *Reporter) PrintFileResult(fr FileResult, dryRun bool) {
	path := RelativePath(fr.Path)
	switch {
	case fr.Err != nil:
		fmt.Fprintf(r.w, "%s %s: %v\n", RenderStyle(StyleError, "✗", r.useColors), path, fr.Err)
	case dryRun:
		fmt.Fprintf(r.w, "%s Checked %s (%s)\n", RenderStyle(StyleMuted, "•", r.useColors), path, describeStats(fr.Stats))
	case fr.Changed:
		fmt.Fprintf(r.w, "%s Updated %s successfully (%s)\n", RenderStyle(StyleSuccess, "✓", r.useColors), path, describeStats(fr.Stats))
	default:
		fmt.Fprintf(r.w, "%s %s already up to date\n", RenderStyle(StyleMuted, "•", r.useColors), path)
	}
}

// PrintRunSummary outputs totals for multi-file runs
func (r *Reporter) PrintRunSummary(result RunResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s, %d changed, %d failed\n",
		pluralizeCount(len(result.Files), "file", "files"), result.FilesChanged, result.FilesFailed)
	fmt.Fprintf(r.w, "  %s\n", describeStats(result.Totals))
}

// PrintPalette lists theme entries with a color swatch
func (r *Reporter) PrintPalette(theme *Theme) {
	width := 0
	for _, e := range theme.Entries() {
		width = max(width, len(e.Name))
	}

	for _, e := range theme.Entries() {
		if !e.Valid {
			fmt.Fprintf(r.w, "   %-*s  %s %s\n", width, e.Name, e.Value,
				RenderStyle(StyleError, "(unparsable)", r.useColors))
			continue
		}
		fmt.Fprintf(r.w, "%s %-*s  %s  %s\n",
			Swatch(e.Color, r.useColors), width, e.Name, e.Color.String(),
			RenderStyle(StyleMuted, e.Color.Hex(), r.useColors))
	}
}

func describeStats(s Stats) string {
	parts := []string{
		fmt.Sprintf("%d exact", s.Exact),
		fmt.Sprintf("%d close", s.Close),
	}
	if s.Expanded > 0 {
		parts = append(parts, fmt.Sprintf("%d expanded", s.Expanded))
	}
	if s.Substituted > 0 {
		parts = append(parts, fmt.Sprintf("%d substituted", s.Substituted))
	}
	if s.Dropped > 0 {
		parts = append(parts, fmt.Sprintf("%d dropped", s.Dropped))
	}
	return strings.Join(parts, ", ")
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
