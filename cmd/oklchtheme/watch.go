package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/oklchtheme/internal/oklchtheme"
)

var watchCmd = &cobra.Command{
	Use:   "watch [input.css...]",
	Short: "Rewrite stylesheets whenever they change",
	Long: `Rewrite the target stylesheets once, then again on every save until
interrupted. Targets are resolved once at startup.`,
	Args: cobra.ArbitraryArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.Int("debounce-ms", 200, "Delay before rewriting after a change")
	f.Bool("dry-run", false, "Report changes without writing files")
}

func runWatch(cmd *cobra.Command, args []string) error {
	config := buildRunConfig(args)
	logger := oklchtheme.NewLogger(buildLoggerConfig())

	engine, err := oklchtheme.Prepare(config)
	if err != nil {
		return err
	}
	targets, err := oklchtheme.ResolveTargets(config)
	if err != nil {
		return err
	}
	if len(targets.Paths) == 0 {
		return fmt.Errorf("no CSS files to watch")
	}

	quiet := getBoolWithFallback("quiet", false)
	reporter := oklchtheme.NewReporter(cmd.OutOrStdout(), buildReportConfig())

	watcher, err := oklchtheme.NewWatcher(engine, targets.Paths, oklchtheme.WatchOptions{
		Debounce: debounce(),
		DryRun:   config.DryRun,
		OnResult: func(fr oklchtheme.FileResult) {
			if !quiet && (fr.Changed || fr.Err != nil) {
				reporter.PrintFileResult(fr, config.DryRun)
			}
		},
	}, logger)
	if err != nil {
		return err
	}

	return watcher.Run(cmd.Context())
}
