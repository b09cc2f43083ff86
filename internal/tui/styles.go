package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors
const (
	ColorPrimary = "86"  // Cyan/green - name, typewriter, headings
	ColorAccent  = "205" // Magenta - featured badge, cursor
	ColorMuted   = "241" // Gray - body copy, hints
	ColorText    = "252"
)

// Styles contains the styles used by the preview.
type Styles struct {
	Name     lipgloss.Style
	Tagline  lipgloss.Style
	Cursor   lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Badge    lipgloss.Style
	Featured lipgloss.Style
	Hint     lipgloss.Style
	Box      lipgloss.Style
}

// DefaultStyles returns the stock theme.
func DefaultStyles() Styles {
	return Styles{
		Name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary)),
		Tagline:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimary)),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Blink(true),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary)).MarginTop(1),
		Body:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Featured: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)).MarginTop(1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorPrimary)).
			Padding(1, 2),
	}
}
