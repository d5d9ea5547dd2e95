package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/oklchtheme/internal/oklchtheme"
)

const defaultConfigPath = ".oklchtheme.yaml"

var k = koanf.New(".")

// flagKeys maps CLI flag names to their config file keys. Flags not listed
// here use their own name as the key.
var flagKeys = map[string]string{
	"metric":             "match.metric",
	"lightness-weight":   "match.lightness-weight",
	"prefer":             "match.prefer",
	"cache-size":         "match.cache-size",
	"synonyms":           "annotate.synonyms",
	"synonym-shade":      "annotate.synonym-shade",
	"emphasize-distance": "annotate.emphasize-distance",
	"strict":             "check.strict",
	"print-lines":        "check.print-lines",
	"debounce-ms":        "watch.debounce-ms",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only explicitly set flags are loaded so flag defaults never shadow
	// values from the config file or environment.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed || f.Name == "config" {
			return "", nil
		}
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// OKLCHTHEME_MODE -> mode
	// OKLCHTHEME_IGNORE_FILE -> ignore-file
	// OKLCHTHEME_MATCH__LIGHTNESS_WEIGHT -> match.lightness-weight
	if err := k.Load(env.Provider("OKLCHTHEME_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "OKLCHTHEME_"))
		key = strings.ReplaceAll(key, "__", ".")
		return strings.ReplaceAll(key, "_", "-")
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// buildRunConfig constructs the library's Config struct from koanf state.
func buildRunConfig(paths []string) oklchtheme.Config {
	defaults := oklchtheme.DefaultConfig()

	config := oklchtheme.Config{
		Mode:              oklchtheme.Mode(getStringWithFallback("mode", string(defaults.Mode))),
		ThemeFile:         getStringWithFallback("theme", ""),
		Paths:             paths,
		Discovery:         oklchtheme.Discovery(getStringWithFallback("discovery", string(defaults.Discovery))),
		Includes:          getStringsWithFallback("include", defaults.Includes),
		IgnoreFile:        getStringWithFallback("ignore-file", defaults.IgnoreFile),
		FallbackFiles:     getStringsWithFallback("fallback-files", defaults.FallbackFiles),
		DryRun:            getBoolWithFallback("dry-run", false),
		LightnessWeight:   getFloat64WithFallback("match.lightness-weight", defaults.LightnessWeight),
		Metric:            oklchtheme.Metric(getStringWithFallback("match.metric", string(defaults.Metric))),
		Prefer:            getStringWithFallback("match.prefer", ""),
		CacheSize:         getIntWithFallback("match.cache-size", defaults.CacheSize),
		SynonymFamilies:   getStringsWithFallback("annotate.synonyms", defaults.SynonymFamilies),
		SynonymShade:      getStringWithFallback("annotate.synonym-shade", defaults.SynonymShade),
		EmphasizeDistance: getFloat64WithFallback("annotate.emphasize-distance", 0),
	}

	if len(config.Paths) == 0 {
		config.Paths = k.Strings("paths")
	}

	return config
}

// buildReportConfig constructs reporter options from koanf state.
func buildReportConfig() oklchtheme.ReportConfig {
	return oklchtheme.ReportConfig{
		UseColors:       getBoolWithFallback("color", false),
		PrintLines:      getBoolWithFallback("check.print-lines", true),
		PrintLinterName: true,
	}
}

// buildLoggerConfig constructs logger options from koanf state.
func buildLoggerConfig() oklchtheme.LoggerConfig {
	return oklchtheme.LoggerConfig{
		Verbose: getBoolWithFallback("verbose", false),
		Quiet:   getBoolWithFallback("quiet", false),
		Format:  oklchtheme.LogFormat(getStringWithFallback("log-format", string(oklchtheme.LogFormatText))),
		Output:  os.Stderr,
	}
}

func debounce() time.Duration {
	return time.Duration(getIntWithFallback("watch.debounce-ms", int(oklchtheme.DefaultDebounce/time.Millisecond))) * time.Millisecond
}

// getStringWithFallback returns the value at key, or defaultVal when unset or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback returns the list at key, or defaultVal when unset.
// An explicitly empty list is kept.
func getStringsWithFallback(key string, defaultVal []string) []string {
	if k.Exists(key) {
		return k.Strings(key)
	}
	return defaultVal
}

// getBoolWithFallback returns the value at key, or defaultVal when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithFallback returns the value at key, or defaultVal when unset.
func getIntWithFallback(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getFloat64WithFallback returns the value at key, or defaultVal when unset.
func getFloat64WithFallback(key string, defaultVal float64) float64 {
	if k.Exists(key) {
		return k.Float64(key)
	}
	return defaultVal
}
