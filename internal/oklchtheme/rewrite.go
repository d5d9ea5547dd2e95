package oklchtheme

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how matched tokens are rewritten.
type Mode string

const (
	// ModeComment keeps literals and appends a provenance comment.
	ModeComment Mode = "comment"
	// ModeVar replaces exactly matching literals with var(--name).
	ModeVar Mode = "var"
)

// Token recognizers. These shapes are the only CSS the engine understands.
var (
	scanLiteralPattern = regexp.MustCompile(`oklch\(([\d.]+%|[\d.]+) [\d.]+ [\d.]+\)`)
	scanVarPattern     = regexp.MustCompile(`var\(--color-[a-z0-9-]+\)`)
	scanTokenPattern   = regexp.MustCompile(scanLiteralPattern.String() + `|` + scanVarPattern.String())
	varNamePattern     = regexp.MustCompile(`var\((--color-[a-zA-Z0-9-]+)\)`)
)

// Options configures an Engine.
type Options struct {
	Mode  Mode
	Match MatchOptions

	// Prefer moves theme entries whose name contains this substring ahead
	// of the others before matching.
	Prefer string

	// EmphasizeDistance marks nearest matches farther than this distance
	// with an emphasized comment. 0 disables emphasis.
	EmphasizeDistance float64

	Synonyms SynonymPolicy
}

// Stats counts what a rewrite did to each token.
type Stats struct {
	Exact       int // literals annotated with an exact match
	Close       int // literals annotated with a nearest match
	Expanded    int // var() references expanded to literals
	Substituted int // literals replaced with var()
	Untouched   int // tokens left as they were
	Dropped     int // tokens removed by line suppression
}

// Engine rewrites CSS text against a theme. It holds no mutable state beyond
// the matcher cache and can be shared across goroutines.
type Engine struct {
	theme   *Theme
	matcher *Matcher
	opts    Options
}

// NewEngine prepares theme for the configured mode. Comment mode matches
// against the sorted table so that ties resolve the same way on every run.
func NewEngine(theme *Theme, opts Options) (*Engine, error) {
	if opts.Mode == "" {
		opts.Mode = ModeComment
	}
	if opts.Mode != ModeComment && opts.Mode != ModeVar {
		return nil, fmt.Errorf("unknown mode %q (want %s or %s)", opts.Mode, ModeComment, ModeVar)
	}

	table := theme
	if opts.Mode == ModeComment {
		table = table.Sorted()
	}
	table = table.Prioritize(opts.Prefer)

	matcher, err := NewMatcher(table, opts.Match)
	if err != nil {
		return nil, err
	}

	return &Engine{theme: table, matcher: matcher, opts: opts}, nil
}

// Mode returns the engine's rewrite mode.
func (e *Engine) Mode() Mode {
	return e.opts.Mode
}

// Theme returns the lookup table the engine matches against.
func (e *Engine) Theme() *Theme {
	return e.theme
}

// Rewrite returns css with OKLCH tokens rewritten. Bytes outside rewritten
// tokens are copied unchanged.
func (e *Engine) Rewrite(css string) (string, Stats) {
	if e.opts.Mode == ModeVar {
		return e.substitute(css)
	}
	out, stats := e.annotate(css)
	return e.opts.Synonyms.Apply(out), stats
}

// substitute replaces every exactly matching literal with var(--name).
func (e *Engine) substitute(css string) (string, Stats) {
	var stats Stats
	out := scanLiteralPattern.ReplaceAllStringFunc(css, func(token string) string {
		target, ok := ParseTriple(token)
		if !ok {
			stats.Untouched++
			return token
		}
		entry, ok := e.matcher.Exact(target)
		if !ok {
			stats.Untouched++
			return token
		}
		stats.Substituted++
		return "var(" + entry.Name + ")"
	})
	return out, stats
}

// annotate processes at most one token per source line. Once a token is
// rewritten, the rest of its line is dropped and a single "\n" is written in
// its place. Tokens left unchanged are copied through with the surrounding text.
func (e *Engine) annotate(css string) (string, Stats) {
	var (
		b     strings.Builder
		stats Stats
		last  int
	)
	b.Grow(len(css))

	for _, loc := range scanTokenPattern.FindAllStringIndex(css, -1) {
		start, end := loc[0], loc[1]
		if start < last {
			stats.Dropped++
			continue
		}

		replacement, ok := e.annotation(css[start:end], &stats)
		if !ok {
			continue
		}
		b.WriteString(css[last:start])
		b.WriteString(replacement)

		nl := strings.IndexByte(css[end:], '\n')
		if nl == -1 {
			last = len(css)
			continue
		}
		last = end + nl + 1
		b.WriteByte('\n')
	}

	b.WriteString(css[last:])
	return b.String(), stats
}

// annotation returns the rewritten form of token, or false if the token
// stays as written.
func (e *Engine) annotation(token string, stats *Stats) (string, bool) {
	if strings.HasPrefix(token, "var(") {
		return e.expandVar(token, stats)
	}

	target, ok := ParseTriple(token)
	if !ok {
		stats.Untouched++
		return "", false
	}
	match, ok := e.matcher.Resolve(target)
	if !ok {
		stats.Untouched++
		return "", false
	}

	if match.Exact {
		stats.Exact++
		return token + "; /* " + match.Entry.Name + " */", true
	}
	stats.Close++
	if e.opts.EmphasizeDistance > 0 && match.Distance > e.opts.EmphasizeDistance {
		return token + "; /* !! close to " + match.Entry.Name + " */", true
	}
	return token + "; /* close to " + match.Entry.Name + " */", true
}

// expandVar turns var(--color-x) into its literal plus a provenance comment.
func (e *Engine) expandVar(token string, stats *Stats) (string, bool) {
	m := varNamePattern.FindStringSubmatch(token)
	if m == nil {
		stats.Untouched++
		return "", false
	}
	entry, ok := e.theme.Lookup(m[1])
	if !ok || !entry.Valid {
		stats.Untouched++
		return "", false
	}
	stats.Expanded++
	return entry.Color.String() + "; /* " + entry.Name + " */", true
}

// Outcome classifies a literal found by Findings.
type Outcome string

const (
	OutcomeExact      Outcome = "exact"
	OutcomeClose      Outcome = "close"
	OutcomeUnparsable Outcome = "unparsable"
	OutcomeUnmatched  Outcome = "unmatched"
)

// Finding is a single OKLCH literal located in CSS text.
type Finding struct {
	Offset  int    // byte offset of the literal
	Token   string // literal text
	Color   Triple
	Outcome Outcome
	Match   Match
}

// Findings reports every OKLCH literal in css and how it resolves, without
// rewriting anything.
func (e *Engine) Findings(css string) []Finding {
	var findings []Finding
	for _, loc := range scanLiteralPattern.FindAllStringIndex(css, -1) {
		f := Finding{Offset: loc[0], Token: css[loc[0]:loc[1]]}

		target, ok := ParseTriple(f.Token)
		if !ok {
			f.Outcome = OutcomeUnparsable
			findings = append(findings, f)
			continue
		}
		f.Color = target

		match, ok := e.matcher.Resolve(target)
		switch {
		case !ok:
			f.Outcome = OutcomeUnmatched
		case match.Exact:
			f.Outcome = OutcomeExact
		default:
			f.Outcome = OutcomeClose
		}
		f.Match = match
		findings = append(findings, f)
	}
	return findings
}
