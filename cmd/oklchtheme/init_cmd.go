package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .oklchtheme.yaml config file",
	Long:  `Create a .oklchtheme.yaml configuration file in the current directory with the default settings.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# oklchtheme configuration
# Precedence: flags > OKLCHTHEME_* env vars > this file > defaults.
# Nested keys use a double underscore in env vars:
#   OKLCHTHEME_MATCH__METRIC=oklab

mode: comment              # comment | var
theme: ""                  # empty = bundled theme
discovery: fallback        # fallback | glob
include:
  - "**/*.css"
ignore-file: .gitignore
fallback-files:
  - src/app/globals.css
  - app/globals.css
  - globals.css

match:
  metric: lch              # lch | oklab
  lightness-weight: 1
  prefer: ""               # e.g. "neutral"
  cache-size: 1024         # 0 = no cache

annotate:
  synonyms:
    - zinc
    - neutral
  synonym-shade: "50"
  emphasize-distance: 0    # 0 = never emphasize

check:
  strict: false
  print-lines: true

watch:
  debounce-ms: 200
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
