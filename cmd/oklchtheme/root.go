package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/oklchtheme/internal/oklchtheme"
)

// errSilentFailure exits with status 1 without printing usage.
var errSilentFailure = errors.New("check failed")

var rootCmd = &cobra.Command{
	Use:   "oklchtheme [input.css...]",
	Short: "Match CSS oklch() colors against a theme",
	Long: `Rewrite oklch() color literals using a theme of CSS custom properties.

In comment mode (default) every literal gets a provenance comment naming the
exact or nearest theme color, and var(--color-*) references are expanded to
their literal value. In var mode exact matches are replaced with var(--name).

Without arguments the first of src/app/globals.css, app/globals.css and
globals.css is used, or every **/*.css file not ignored by .gitignore when
--discovery glob is set.`,
	Args:    cobra.ArbitraryArgs,
	Version: version,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRewrite(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("oklchtheme@{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("error parsing arguments: %w", err)
	})

	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", defaultConfigPath, "Config file path")
	pf.String("theme", "", "Theme CSS file (default: bundled theme)")
	pf.String("discovery", string(oklchtheme.DiscoveryFallback), "Target discovery without paths: fallback|glob")
	pf.StringSlice("include", oklchtheme.DefaultIncludes, "Glob patterns for --discovery glob")
	pf.String("ignore-file", ".gitignore", "Ignore file applied to --discovery glob")
	pf.String("metric", string(oklchtheme.MetricLCH), "Nearest-match distance: lch|oklab")
	pf.Float64("lightness-weight", 1, "Weight of the lightness axis in nearest matching")
	pf.String("prefer", "", "Prefer theme names containing this substring")
	pf.Int("cache-size", 1024, "Nearest-match cache size (0 disables)")
	pf.Bool("verbose", false, "Enable debug logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("log-format", string(oklchtheme.LogFormatText), "Log format: text|json")

	pf.String("mode", string(oklchtheme.ModeComment), "Rewrite mode: comment|var")
	pf.StringSlice("synonyms", oklchtheme.DefaultSynonymFamilies, "Palette families whose shared shade comments are unified")
	pf.String("synonym-shade", oklchtheme.DefaultSynonymShade, "Shade unified across synonym families")
	pf.Float64("emphasize-distance", 0, "Emphasize close matches farther than this distance (0 disables)")

	rootCmd.Flags().Bool("dry-run", false, "Print rewritten CSS to stdout instead of writing files")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// runRewrite rewrites the target files and reports each one.
func runRewrite(stdout, stderr io.Writer, args []string) error {
	config := buildRunConfig(args)
	logger := oklchtheme.NewLogger(buildLoggerConfig())

	result, err := oklchtheme.Run(config, logger)
	if err != nil {
		return err
	}

	if config.DryRun {
		for _, fr := range result.Files {
			if fr.Err == nil {
				fmt.Fprint(stdout, fr.Output)
			}
		}
	}

	if getBoolWithFallback("quiet", false) {
		return nil
	}

	// Keep stdout clean for the rewritten CSS in dry runs.
	out := stdout
	if config.DryRun {
		out = stderr
	}
	reporter := oklchtheme.NewReporter(out, buildReportConfig())

	if len(result.Files) == 0 {
		fmt.Fprintln(out, "No CSS files found")
		return nil
	}
	for _, fr := range result.Files {
		reporter.PrintFileResult(fr, config.DryRun)
	}
	if len(result.Files) > 1 {
		reporter.PrintRunSummary(*result)
	}
	return nil
}
