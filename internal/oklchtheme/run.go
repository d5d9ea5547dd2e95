package oklchtheme

import (
	"fmt"
	"log/slog"
	"os"
)

// LoadTheme reads and indexes the theme at path, or the bundled theme when
// path is empty.
func LoadTheme(path string) (*Theme, error) {
	if path == "" {
		return ParseTheme(BundledTheme()), nil
	}

	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("theme file not found: %s", path)
		}
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(string(content)), nil
}

// Prepare validates config and builds the engine for it.
func Prepare(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	theme, err := LoadTheme(config.ThemeFile)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(theme, config.EngineOptions())
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return engine, nil
}

// Run rewrites every target file. A failure on a single target is returned
// as an error; in multi-file runs failures are recorded per file and the
// remaining files are still processed.
func Run(config Config, logger *slog.Logger) (*RunResult, error) {
	engine, err := Prepare(config)
	if err != nil {
		return nil, err
	}

	targets, err := ResolveTargets(config)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved targets",
		"files", len(targets.Paths),
		"discovered", targets.Stats.FilesDiscovered,
		"skipped", targets.Stats.FilesSkipped)

	result := &RunResult{}
	for _, path := range targets.Paths {
		fr := RewriteFile(engine, path, config.DryRun)
		if fr.Err != nil {
			if targets.Single {
				return nil, fr.Err
			}
			logger.Warn("Skipping file", "file", path, "error", fr.Err)
		} else {
			logger.Debug("Rewrote file",
				"file", path,
				"changed", fr.Changed,
				"exact", fr.Stats.Exact,
				"close", fr.Stats.Close)
		}
		result.add(fr)
	}

	return result, nil
}

// RewriteFile rewrites one file in place. Nothing is written when the output
// equals the input or dryRun is set.
func RewriteFile(engine *Engine, path string, dryRun bool) FileResult {
	fr := FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		fr.Err = fmt.Errorf("stat %s: %w", path, err)
		return fr
	}

	// #nosec G304 - path comes from trusted configuration or discovery
	content, err := os.ReadFile(path)
	if err != nil {
		fr.Err = fmt.Errorf("read file: %w", err)
		return fr
	}

	input := string(content)
	fr.Output, fr.Stats = engine.Rewrite(input)
	fr.Changed = fr.Output != input

	if fr.Changed && !dryRun {
		if err := os.WriteFile(path, []byte(fr.Output), info.Mode().Perm()); err != nil {
			fr.Err = fmt.Errorf("write file: %w", err)
		}
	}
	return fr
}
