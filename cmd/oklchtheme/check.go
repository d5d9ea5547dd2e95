package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/oklchtheme/internal/oklchtheme"
)

var checkCmd = &cobra.Command{
	Use:   "check [input.css...]",
	Short: "Report oklch() literals that do not match the theme exactly",
	Long: `Scan stylesheets without modifying them and report every oklch() literal
that has no exact theme match, with the closest theme color.
Only unparsable literals fail the run unless --strict is set.`,
	Args: cobra.ArbitraryArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any close match (CI mode)")
	f.Bool("print-lines", true, "Show source lines with issues")
}

func runCheck(cmd *cobra.Command, args []string) error {
	config := buildRunConfig(args)
	logger := oklchtheme.NewLogger(buildLoggerConfig())

	result, err := oklchtheme.Check(config, logger)
	if err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", false) {
		reporter := oklchtheme.NewReporter(cmd.OutOrStdout(), buildReportConfig())
		reporter.PrintIssues(result.Issues)
		reporter.PrintCheckSummary(*result)
	}

	// Soft gate: only errors fail unless strict.
	if getBoolWithFallback("check.strict", false) && len(result.Issues) > 0 {
		return errSilentFailure
	}
	if result.ErrorCount > 0 {
		return errSilentFailure
	}
	return nil
}
