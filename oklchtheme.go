// Package oklchtheme rewrites CSS OKLCH color literals against a theme of
// named custom properties.
//
// A theme is CSS text declaring properties such as
// `--color-blue-500: oklch(62.3% 0.214 259.815)`. Literals in a target
// stylesheet are matched against it in one of two modes.
//
// # Comment annotation
//
// Literals stay as written and gain a provenance comment naming the exact or
// nearest theme entry:
//
//	css := oklchtheme.Annotate(theme, "color: oklch(0.6 0.15 250);")
//	// color: oklch(0.6 0.15 250); /* --color-blue */
//
// Only the first token of each source line is processed; the rest of that
// line is replaced by the annotation.
//
// # Variable substitution
//
// Literals with an exact theme match are replaced with a var() reference:
//
//	css := oklchtheme.Substitute(theme, "color: oklch(0.6 0.15 250);")
//	// color: var(--color-blue);
//
// # CLI Tool
//
// Install the CLI with:
//
//	go install github.com/yacobolo/oklchtheme/cmd/oklchtheme@latest
package oklchtheme

import (
	"github.com/yacobolo/oklchtheme/internal/oklchtheme"
)

// Annotate appends provenance comments to the OKLCH literals in css using
// the default matching options.
func Annotate(themeCSS, css string) string {
	return rewrite(themeCSS, css, oklchtheme.ModeComment)
}

// Substitute replaces OKLCH literals in css that exactly match a theme
// entry with var(--name).
func Substitute(themeCSS, css string) string {
	return rewrite(themeCSS, css, oklchtheme.ModeVar)
}

// BundledTheme returns the theme CSS shipped with the CLI.
func BundledTheme() string {
	return oklchtheme.BundledTheme()
}

func rewrite(themeCSS, css string, mode oklchtheme.Mode) string {
	config := oklchtheme.DefaultConfig()
	config.Mode = mode

	engine, err := oklchtheme.NewEngine(oklchtheme.ParseTheme(themeCSS), config.EngineOptions())
	if err != nil {
		// Default options are always valid.
		panic(err)
	}
	out, _ := engine.Rewrite(css)
	return out
}
