// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the TUI renders with.
type Theme struct {
	Accent    lipgloss.Color // titles, selection
	Highlight lipgloss.Color // labels, subtitles
	Text      lipgloss.Color
	Subtle    lipgloss.Color // hints, previews
	Bar       lipgloss.Color // status bar background
	Good      lipgloss.Color
	Attention lipgloss.Color // notices
	Bad       lipgloss.Color
	Edge      lipgloss.Color // input borders
}

// DefaultTheme returns the blue/teal palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#2563EB"),
		Highlight: lipgloss.Color("#14B8A6"),
		Text:      lipgloss.Color("#CDD6F4"),
		Subtle:    lipgloss.Color("#6C7086"),
		Bar:       lipgloss.Color("#181825"),
		Good:      lipgloss.Color("#A6E3A1"),
		Attention: lipgloss.Color("#F9E2AF"),
		Bad:       lipgloss.Color("#F38BA8"),
		Edge:      lipgloss.Color("#45475A"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Selected marks the highlighted list row.
	Selected lipgloss.Style

	// Tab and ActiveTab render the summary/transcript switcher.
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	Success lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		theme: theme,

		Title:    fg(theme.Accent).Bold(true),
		Subtitle: fg(theme.Highlight).Bold(true),
		Label:    fg(theme.Highlight).Bold(true),
		Normal:   fg(theme.Text),
		Muted:    fg(theme.Subtle),
		Help:     fg(theme.Subtle),

		Selected: fg(theme.Text).Background(theme.Accent).Bold(true),

		Tab:       fg(theme.Subtle).Padding(0, 1),
		ActiveTab: fg(theme.Text).Background(theme.Accent).Bold(true).Padding(0, 1),

		Success: fg(theme.Good),
		Notice:  fg(theme.Attention),
		Error:   fg(theme.Bad),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Edge).
			Padding(0, 1),
		StatusBar: fg(theme.Subtle).Background(theme.Bar).Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
