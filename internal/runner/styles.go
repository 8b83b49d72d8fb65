package runner

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Terminal styles for consistent output formatting across reporters.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for file locations and section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for parse failures.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for files needing formatting and caret indicators.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for success messages.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for linter names and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Stylesheet highlighting, one style per fragment kind.
var (
	StyleComment       = codeStyle().Foreground(lipgloss.Color("8")).Italic(true)
	StyleHeader        = codeStyle().Foreground(lipgloss.Color("5")).Bold(true)
	StyleSelector      = codeStyle().Foreground(lipgloss.Color("6"))
	StylePropertyName  = codeStyle().Foreground(lipgloss.Color("4"))
	StylePropertyValue = codeStyle().Foreground(lipgloss.Color("2"))
)

func codeStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// colorRenderer always emits ANSI colors. The default renderer detects its
// profile from stdout and drops colors when output is piped, even when they
// were asked for.
var colorRenderer = newColorRenderer()

func newColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Renderer(colorRenderer).Render(text)
}
