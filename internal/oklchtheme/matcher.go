package oklchtheme

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Metric selects the distance used for nearest-match lookups.
type Metric string

const (
	// MetricLCH is Euclidean distance over raw (L, C, H) components.
	MetricLCH Metric = "lch"
	// MetricOKLab is Euclidean distance in OKLab space.
	MetricOKLab Metric = "oklab"
)

// MatchOptions configures a Matcher.
type MatchOptions struct {
	Metric          Metric  // default: MetricLCH
	LightnessWeight float64 // multiplier on the lightness delta (default: 1)
	CacheSize       int     // nearest-match LRU size, 0 disables caching
}

// Match is the result of resolving a color against the theme.
type Match struct {
	Entry    Entry
	Distance float64
	Exact    bool
}

// Matcher resolves colors to theme entries in theme iteration order.
// It is safe for concurrent use.
type Matcher struct {
	candidates []Entry
	opts       MatchOptions
	cache      *lru.Cache[Triple, Match]
}

// NewMatcher builds a matcher over the valid entries of theme.
func NewMatcher(theme *Theme, opts MatchOptions) (*Matcher, error) {
	if opts.Metric == "" {
		opts.Metric = MetricLCH
	}
	if opts.Metric != MetricLCH && opts.Metric != MetricOKLab {
		return nil, fmt.Errorf("unknown metric %q (want %s or %s)", opts.Metric, MetricLCH, MetricOKLab)
	}
	if opts.LightnessWeight == 0 {
		opts.LightnessWeight = 1
	}

	m := &Matcher{opts: opts}
	for _, e := range theme.entries {
		if e.Valid {
			m.candidates = append(m.candidates, e)
		}
	}

	if opts.CacheSize > 0 {
		cache, err := lru.New[Triple, Match](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create match cache: %w", err)
		}
		m.cache = cache
	}

	return m, nil
}

// Exact returns the first entry whose color equals target.
func (m *Matcher) Exact(target Triple) (Entry, bool) {
	for _, e := range m.candidates {
		if e.Color.Equal(target) {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolve returns the exact match of target, or the nearest entry when no
// exact match exists. It returns false only for an empty theme.
func (m *Matcher) Resolve(target Triple) (Match, bool) {
	if m.cache != nil {
		if match, ok := m.cache.Get(target); ok {
			return match, true
		}
	}

	match, ok := m.resolve(target)
	if ok && m.cache != nil {
		m.cache.Add(target, match)
	}
	return match, ok
}

func (m *Matcher) resolve(target Triple) (Match, bool) {
	if e, ok := m.Exact(target); ok {
		return Match{Entry: e, Exact: true}, true
	}
	if len(m.candidates) == 0 {
		return Match{}, false
	}

	best := m.candidates[0]
	bestDist := m.distance(best.Color, target)
	for _, e := range m.candidates[1:] {
		// Strict less-than: the earliest of equidistant entries wins.
		if d := m.distance(e.Color, target); d < bestDist {
			best, bestDist = e, d
		}
	}
	return Match{Entry: best, Distance: bestDist}, true
}

func (m *Matcher) distance(a, b Triple) float64 {
	if m.opts.Metric == MetricOKLab {
		l1, a1, b1 := colorful.OkLch(a.L, a.C, a.H).OkLab()
		l2, a2, b2 := colorful.OkLch(b.L, b.C, b.H).OkLab()
		dl := (l1 - l2) * m.opts.LightnessWeight
		return math.Sqrt(dl*dl + (a1-a2)*(a1-a2) + (b1-b2)*(b1-b2))
	}

	dl := (a.L - b.L) * m.opts.LightnessWeight
	dc := a.C - b.C
	dh := a.H - b.H
	return math.Sqrt(dl*dl + dc*dc + dh*dh)
}
