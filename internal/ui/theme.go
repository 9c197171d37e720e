// Package ui provides the console output layer: a styled reporter for
// warnings and summaries, headless-mode detection, and progress widgets
// with plain-text fallbacks.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors holds the theme colour palette as hex strings.
type Colors struct {
	Primary   string
	Secondary string
	Warning   string
	Error     string
	Success   string
}

// Theme holds colours and derived lipgloss styles for console output.
type Theme struct {
	NoColor bool
	Colors  Colors

	warn     lipgloss.Style
	errStyle lipgloss.Style
	success  lipgloss.Style
}

// NewTheme creates a Theme. With noColor set, all styles render plain.
func NewTheme(noColor bool) *Theme {
	t := &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   "#5A56E0",
			Secondary: "#EE6FF8",
			Warning:   "#FFB454",
			Error:     "#FF5F87",
			Success:   "#5FD75F",
		},
	}
	if !noColor {
		t.warn = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
		t.errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error)).Bold(true)
		t.success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
	}
	return t
}

// Warn renders s in the warning style.
func (t *Theme) Warn(s string) string {
	if t.NoColor {
		return s
	}
	return t.warn.Render(s)
}

// Error renders s in the error style.
func (t *Theme) Error(s string) string {
	if t.NoColor {
		return s
	}
	return t.errStyle.Render(s)
}

// Success renders s in the success style.
func (t *Theme) Success(s string) string {
	if t.NoColor {
		return s
	}
	return t.success.Render(s)
}
