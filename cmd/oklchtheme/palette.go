package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/oklchtheme/internal/oklchtheme"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the theme colors",
	Long: `Print every color of the theme with a swatch, in the order used for
matching. The white and black anchors are always included.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, err := oklchtheme.Prepare(buildRunConfig(nil))
		if err != nil {
			return err
		}
		reporter := oklchtheme.NewReporter(cmd.OutOrStdout(), buildReportConfig())
		reporter.PrintPalette(engine.Theme())
		return nil
	},
}
