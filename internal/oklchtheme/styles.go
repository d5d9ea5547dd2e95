package oklchtheme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal styles shared by the reporters.
var (
	// StyleLocation is used for file positions and section headers.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError is used for fatal messages and error counts.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning is used for close matches and caret indicators.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleSuccess is used for updated files and exact matches.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted is used for linter names, hints and unchanged files.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// Hex converts the triple to the nearest in-gamut sRGB hex string.
func (t Triple) Hex() string {
	return colorful.OkLch(t.L, t.C, t.H).Clamped().Hex()
}

// Swatch renders a two-cell block filled with the color.
func Swatch(t Triple, useColors bool) string {
	if !useColors {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(t.Hex())).Render("  ")
}
