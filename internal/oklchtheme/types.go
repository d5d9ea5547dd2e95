package oklchtheme

import (
	"fmt"
	"strings"
)

// Discovery selects how target files are found when no paths are given.
type Discovery string

const (
	// DiscoveryFallback uses the first existing conventional stylesheet.
	DiscoveryFallback Discovery = "fallback"
	// DiscoveryGlob globs include patterns filtered by the ignore file.
	DiscoveryGlob Discovery = "glob"
)

// DefaultFallbackFiles are the conventional global stylesheet locations.
var DefaultFallbackFiles = []string{
	"src/app/globals.css",
	"app/globals.css",
	"globals.css",
}

// DefaultIncludes is the glob used by DiscoveryGlob.
var DefaultIncludes = []string{"**/*.css"}

// Config holds run configuration
type Config struct {
	Mode          Mode      // "comment" or "var"
	ThemeFile     string    // empty: bundled theme
	Paths         []string  // explicit targets
	Discovery     Discovery // used when Paths is empty
	Includes      []string  // ["**/*.css"]
	IgnoreFile    string    // ".gitignore"
	FallbackFiles []string  // ["src/app/globals.css", ...]
	DryRun        bool      // do not write files

	LightnessWeight   float64
	Metric            Metric
	Prefer            string
	CacheSize         int
	SynonymFamilies   []string
	SynonymShade      string
	EmphasizeDistance float64
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Mode:            ModeComment,
		Discovery:       DiscoveryFallback,
		Includes:        append([]string(nil), DefaultIncludes...),
		IgnoreFile:      ".gitignore",
		FallbackFiles:   append([]string(nil), DefaultFallbackFiles...),
		LightnessWeight: 1,
		Metric:          MetricLCH,
		CacheSize:       1024,
		SynonymFamilies: append([]string(nil), DefaultSynonymFamilies...),
		SynonymShade:    DefaultSynonymShade,
	}
}

// Validate reports configuration values the run cannot use.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeComment, ModeVar:
	default:
		return fmt.Errorf("invalid mode %q: must be one of %s", c.Mode, joinValues(ModeComment, ModeVar))
	}
	switch c.Discovery {
	case DiscoveryFallback, DiscoveryGlob:
	default:
		return fmt.Errorf("invalid discovery %q: must be one of %s", c.Discovery, joinValues(DiscoveryFallback, DiscoveryGlob))
	}
	switch c.Metric {
	case MetricLCH, MetricOKLab:
	default:
		return fmt.Errorf("invalid metric %q: must be one of %s", c.Metric, joinValues(MetricLCH, MetricOKLab))
	}
	if c.LightnessWeight < 0 {
		return fmt.Errorf("invalid lightness weight %v: must not be negative", c.LightnessWeight)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("invalid cache size %d: must not be negative", c.CacheSize)
	}
	return nil
}

// EngineOptions maps the run configuration onto engine options.
func (c Config) EngineOptions() Options {
	return Options{
		Mode: c.Mode,
		Match: MatchOptions{
			Metric:          c.Metric,
			LightnessWeight: c.LightnessWeight,
			CacheSize:       c.CacheSize,
		},
		Prefer:            c.Prefer,
		EmphasizeDistance: c.EmphasizeDistance,
		Synonyms: SynonymPolicy{
			Families: c.SynonymFamilies,
			Shade:    c.SynonymShade,
		},
	}
}

func joinValues[T ~string](values ...T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// FileResult is the outcome of rewriting one file
type FileResult struct {
	Path    string
	Changed bool
	Output  string // rewritten content, kept for dry runs
	Stats   Stats
	Err     error
}

// RunResult contains per-file results and totals
type RunResult struct {
	Files        []FileResult
	FilesChanged int
	FilesFailed  int
	Totals       Stats
}

func (r *RunResult) add(fr FileResult) {
	r.Files = append(r.Files, fr)
	if fr.Err != nil {
		r.FilesFailed++
		return
	}
	if fr.Changed {
		r.FilesChanged++
	}
	r.Totals.Exact += fr.Stats.Exact
	r.Totals.Close += fr.Stats.Close
	r.Totals.Expanded += fr.Stats.Expanded
	r.Totals.Substituted += fr.Stats.Substituted
	r.Totals.Untouched += fr.Stats.Untouched
	r.Totals.Dropped += fr.Stats.Dropped
}
