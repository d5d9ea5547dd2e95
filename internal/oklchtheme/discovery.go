package oklchtheme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrNoInput is returned when no target stylesheet can be found.
var ErrNoInput = errors.New("no valid input file found")

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesSelected   int // Files kept after filtering
	FilesSkipped    int // Files skipped by the ignore file
}

// Targets is the resolved set of files to rewrite.
type Targets struct {
	Paths []string
	// Single is true when exactly one file was requested or selected by
	// fallback. A failure on a single target is fatal.
	Single bool
	Stats  ScanStats
}

// ResolveTargets picks the files a run operates on.
func ResolveTargets(config Config) (Targets, error) {
	switch {
	case len(config.Paths) > 1:
		return Targets{Paths: dedupe(config.Paths)}, nil

	case len(config.Paths) == 1 && config.Discovery == DiscoveryGlob:
		if !isFile(config.Paths[0]) {
			return Targets{}, fmt.Errorf("%w: %s", ErrNoInput, config.Paths[0])
		}
		return Targets{Paths: config.Paths, Single: true}, nil

	case len(config.Paths) == 1 || config.Discovery == DiscoveryFallback:
		// An explicit path is tried before the conventional locations.
		candidates := append(append([]string(nil), config.Paths...), config.FallbackFiles...)
		for _, c := range candidates {
			if isFile(c) {
				return Targets{Paths: []string{c}, Single: true}, nil
			}
		}
		return Targets{}, ErrNoInput

	default:
		files, stats, err := expandGlobPatterns(config.Includes, loadIgnoreFile(config.IgnoreFile))
		if err != nil {
			return Targets{}, err
		}
		return Targets{Paths: files, Stats: stats}, nil
	}
}

// loadIgnoreFile compiles a .gitignore-style file.
// A missing file means nothing is ignored.
func loadIgnoreFile(path string) *ignore.GitIgnore {
	if path == "" {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether the ignore file excludes path.
// Absolute paths are outside the project and never ignored.
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	return gi.MatchesPath(path)
}

// expandGlobPatterns expands globs to regular files and tracks statistics
func expandGlobPatterns(patterns []string, gi *ignore.GitIgnore) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, stats, fmt.Errorf("invalid include pattern: %s", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || !isFile(match) {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match, gi) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesSelected++
		}
	}

	return files, stats, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// RelativePath returns path relative to the working directory when possible
func RelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		return path
	}
	return rel
}
