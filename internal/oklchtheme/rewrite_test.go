package oklchtheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blueTheme = `--color-blue: oklch(60% 0.15 250);`

func newTestEngine(t *testing.T, source string, opts Options) *Engine {
	t.Helper()
	engine, err := NewEngine(ParseTheme(source), opts)
	require.NoError(t, err)
	return engine
}

func rewrite(t *testing.T, source string, opts Options, css string) string {
	t.Helper()
	out, _ := newTestEngine(t, source, opts).Rewrite(css)
	return out
}

func TestRewrite_RoundTrip(t *testing.T) {
	input := "color: oklch(0.6 0.15 250);"

	assert.Equal(t, "color: var(--color-blue);",
		rewrite(t, blueTheme, Options{Mode: ModeVar}, input))
	assert.Equal(t, "color: oklch(0.6 0.15 250); /* --color-blue */",
		rewrite(t, blueTheme, Options{Mode: ModeComment}, input))
}

func TestRewrite_PercentThemeMatchesFractionLiteral(t *testing.T) {
	theme := `--color-red: oklch(50% 0.2 30);`
	input := "a { color: oklch(0.5 0.2 30); }"

	assert.Equal(t, "a { color: var(--color-red); }",
		rewrite(t, theme, Options{Mode: ModeVar}, input))
	assert.Equal(t, "a { color: oklch(0.5 0.2 30); /* --color-red */",
		rewrite(t, theme, Options{Mode: ModeComment}, input))
}

func TestRewrite_SubstituteIsIdempotent(t *testing.T) {
	engine := newTestEngine(t, blueTheme, Options{Mode: ModeVar})
	input := `.a {
  color: oklch(0.6 0.15 250);
  border-color: oklch(60% 0.15 250);
  background: oklch(0.3 0.1 20);
}
`
	once, stats := engine.Rewrite(input)
	twice, _ := engine.Rewrite(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, 2, stats.Substituted)
	assert.Equal(t, 1, stats.Untouched)
	assert.Contains(t, once, "background: oklch(0.3 0.1 20);")
}

func TestRewrite_LineSuppression(t *testing.T) {
	engine := newTestEngine(t, "", Options{})

	out, stats := engine.Rewrite("a: oklch(0 0 0); b: oklch(1 0 0);\n")

	assert.Equal(t, "a: oklch(0 0 0); /* --color-black */\n", out)
	assert.Equal(t, 1, stats.Exact)
	assert.Equal(t, 1, stats.Dropped)
}

func TestRewrite_LineSuppressionKeepsOtherLines(t *testing.T) {
	input := ".a {\n  color: oklch(1 0 0);\n  margin: 0;\n}\n"

	assert.Equal(t, ".a {\n  color: oklch(1 0 0); /* --color-white */\n  margin: 0;\n}\n",
		rewrite(t, "", Options{}, input))
}

func TestRewrite_LastLineWithoutNewline(t *testing.T) {
	input := ".a {\n  color: oklch(1 0 0); }"

	assert.Equal(t, ".a {\n  color: oklch(1 0 0); /* --color-white */",
		rewrite(t, "", Options{}, input))
}

func TestRewrite_AnnotationIsStable(t *testing.T) {
	engine := newTestEngine(t, blueTheme, Options{})
	input := ".a {\n  color: oklch(0.6 0.15 250);\n  fill: oklch(0.61 0.15 250);\n}\n"

	once, _ := engine.Rewrite(input)
	twice, _ := engine.Rewrite(once)
	assert.Equal(t, once, twice)
}

func TestRewrite_NonColorTextPreserved(t *testing.T) {
	inputs := []string{
		"",
		".a { color: red; background: var(--other); }\n/* comment */\n",
		"a { color: var(--color-unknown); margin: 0; }\n",
		"a { color: oklch(1.2.3 0 0); margin: 0; }\r\n",
		"a { color: oklch(50% 0.1 20 / 0.5); }",
	}

	for _, mode := range []Mode{ModeComment, ModeVar} {
		engine := newTestEngine(t, blueTheme, Options{Mode: mode})
		for _, input := range inputs {
			out, _ := engine.Rewrite(input)
			assert.Equal(t, input, out, "mode %s", mode)
		}
	}
}

func TestRewrite_ExpandsVarReferences(t *testing.T) {
	input := "a {\n  color: var(--color-blue);\n  fill: var(--color-missing);\n}\n"

	out, stats := newTestEngine(t, blueTheme, Options{}).Rewrite(input)

	assert.Equal(t, "a {\n  color: oklch(0.6 0.15 250); /* --color-blue */\n  fill: var(--color-missing);\n}\n", out)
	assert.Equal(t, 1, stats.Expanded)
	assert.Equal(t, 1, stats.Untouched)
}

func TestRewrite_VarModeLeavesVarReferences(t *testing.T) {
	input := "a { color: var(--color-blue); }"
	assert.Equal(t, input, rewrite(t, blueTheme, Options{Mode: ModeVar}, input))
}

func TestRewrite_CloseMatch(t *testing.T) {
	input := "color: oklch(0.61 0.15 250);"

	assert.Equal(t, "color: oklch(0.61 0.15 250); /* close to --color-blue */",
		rewrite(t, blueTheme, Options{}, input))
	assert.Equal(t, "color: oklch(0.61 0.15 250); /* !! close to --color-blue */",
		rewrite(t, blueTheme, Options{EmphasizeDistance: 0.001}, input))
	assert.Equal(t, "color: oklch(0.61 0.15 250); /* close to --color-blue */",
		rewrite(t, blueTheme, Options{EmphasizeDistance: 0.5}, input))

	// Variable substitution never uses near matches.
	assert.Equal(t, input, rewrite(t, blueTheme, Options{Mode: ModeVar}, input))
}

func TestRewrite_Prefer(t *testing.T) {
	theme := `
--color-zinc-50: oklch(98.5% 0 0);
--color-neutral-50: oklch(98.5% 0 0);
`
	input := "color: oklch(0.985 0 0);"

	tests := []struct {
		name   string
		opts   Options
		expect string
	}{
		{
			name:   "comment mode uses sorted order",
			opts:   Options{Mode: ModeComment},
			expect: "color: oklch(0.985 0 0); /* --color-neutral-50 */",
		},
		{
			name:   "comment mode with preference",
			opts:   Options{Mode: ModeComment, Prefer: "zinc"},
			expect: "color: oklch(0.985 0 0); /* --color-zinc-50 */",
		},
		{
			name:   "var mode uses declaration order",
			opts:   Options{Mode: ModeVar},
			expect: "color: var(--color-zinc-50);",
		},
		{
			name:   "var mode with preference",
			opts:   Options{Mode: ModeVar, Prefer: "neutral"},
			expect: "color: var(--color-neutral-50);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, rewrite(t, theme, tt.opts, input))
		})
	}
}

func TestRewrite_SynonymReconciliation(t *testing.T) {
	input := "a: oklch(0.985 0 0);\nb: oklch(0.967 0.001 286.375);\n"

	withPolicy := rewrite(t, BundledTheme(), Options{Synonyms: DefaultSynonymPolicy()}, input)
	assert.Equal(t, "a: oklch(0.985 0 0); /* --color-zinc-50 */\nb: oklch(0.967 0.001 286.375); /* --color-zinc-100 */\n", withPolicy)

	without := rewrite(t, BundledTheme(), Options{}, input)
	assert.Equal(t, "a: oklch(0.985 0 0); /* --color-neutral-50 */\nb: oklch(0.967 0.001 286.375); /* --color-zinc-100 */\n", without)
}

func TestNewEngine_UnknownMode(t *testing.T) {
	_, err := NewEngine(ParseTheme(""), Options{Mode: "tokens"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestFindings(t *testing.T) {
	engine := newTestEngine(t, blueTheme, Options{})
	css := "a { color: oklch(0.6 0.15 250); }\nb { color: oklch(0.61 0.15 250); }\nc { color: oklch(1.2.3 0 0); }\n"

	findings := engine.Findings(css)
	require.Len(t, findings, 3)

	assert.Equal(t, OutcomeExact, findings[0].Outcome)
	assert.Equal(t, 11, findings[0].Offset)
	assert.Equal(t, "--color-blue", findings[0].Match.Entry.Name)

	assert.Equal(t, OutcomeClose, findings[1].Outcome)
	assert.Equal(t, "oklch(0.61 0.15 250)", findings[1].Token)

	assert.Equal(t, OutcomeUnparsable, findings[2].Outcome)
}
