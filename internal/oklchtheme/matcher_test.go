package oklchtheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T, source string, opts MatchOptions) *Matcher {
	t.Helper()
	m, err := NewMatcher(ParseTheme(source), opts)
	require.NoError(t, err)
	return m
}

func TestMatcherExact(t *testing.T) {
	m := newTestMatcher(t, `--color-red: oklch(50% 0.2 30);`, MatchOptions{})

	entry, ok := m.Exact(Triple{L: 0.5, C: 0.2, H: 30})
	require.True(t, ok)
	assert.Equal(t, "--color-red", entry.Name)

	_, ok = m.Exact(Triple{L: 0.5, C: 0.2, H: 31})
	assert.False(t, ok)
}

func TestMatcherResolve_Nearest(t *testing.T) {
	m := newTestMatcher(t, `--color-blue: oklch(60% 0.15 250);`, MatchOptions{})

	match, ok := m.Resolve(Triple{L: 0.61, C: 0.15, H: 250})
	require.True(t, ok)
	assert.False(t, match.Exact)
	assert.Equal(t, "--color-blue", match.Entry.Name)
	assert.InDelta(t, 0.01, match.Distance, 1e-9)
}

func TestMatcherResolve_TiesGoToFirstEntry(t *testing.T) {
	source := `
--color-a: oklch(0.5 0 10);
--color-b: oklch(0.5 0 30);
`
	target := Triple{L: 0.5, C: 0, H: 20}

	for i := 0; i < 10; i++ {
		m := newTestMatcher(t, source, MatchOptions{})
		match, ok := m.Resolve(target)
		require.True(t, ok)
		assert.Equal(t, "--color-a", match.Entry.Name)
	}
}

func TestMatcherResolve_LightnessWeight(t *testing.T) {
	source := `
--color-a: oklch(0.5 0 10);
--color-b: oklch(0.9 0 12);
`
	target := Triple{L: 0.9, C: 0, H: 10}

	plain := newTestMatcher(t, source, MatchOptions{})
	match, _ := plain.Resolve(target)
	assert.Equal(t, "--color-a", match.Entry.Name)

	weighted := newTestMatcher(t, source, MatchOptions{LightnessWeight: 10})
	match, _ = weighted.Resolve(target)
	assert.Equal(t, "--color-b", match.Entry.Name)
}

func TestMatcherResolve_OKLabMetric(t *testing.T) {
	source := `
--color-a: oklch(0.6 0.15 359);
--color-b: oklch(0.6 0.15 120);
`
	target := Triple{L: 0.6, C: 0.15, H: 1}

	// Raw hue deltas ignore the hue wraparound.
	lch := newTestMatcher(t, source, MatchOptions{Metric: MetricLCH})
	match, _ := lch.Resolve(target)
	assert.Equal(t, "--color-white", match.Entry.Name)

	oklab := newTestMatcher(t, source, MatchOptions{Metric: MetricOKLab})
	match, _ = oklab.Resolve(target)
	assert.Equal(t, "--color-a", match.Entry.Name)
}

func TestMatcherUnknownMetric(t *testing.T) {
	_, err := NewMatcher(ParseTheme(""), MatchOptions{Metric: "cie2000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metric")
}

func TestMatcherResolve_NoCandidates(t *testing.T) {
	m := newTestMatcher(t, `
--color-white: oklch(none);
--color-black: oklch(from red l c h);
`, MatchOptions{})

	_, ok := m.Resolve(Triple{L: 0.5})
	assert.False(t, ok)
}

func TestMatcherCache(t *testing.T) {
	m := newTestMatcher(t, `--color-blue: oklch(60% 0.15 250);`, MatchOptions{CacheSize: 2})
	target := Triple{L: 0.61, C: 0.15, H: 250}

	first, ok := m.Resolve(target)
	require.True(t, ok)
	second, ok := m.Resolve(target)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.cache.Len())
}
