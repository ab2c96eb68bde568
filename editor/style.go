package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text    lipgloss.Style
	Tilde   lipgloss.Style
	Welcome lipgloss.Style

	StatusBar  lipgloss.Style
	MessageBar lipgloss.Style

	Match lipgloss.Style
}

// DefaultStyle returns the stock color scheme.
func DefaultStyle() Style {
	return Style{
		Text:       lipgloss.NewStyle(),
		Tilde:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Welcome:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusBar:  lipgloss.NewStyle().Reverse(true),
		MessageBar: lipgloss.NewStyle(),
		Match:      lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("33")),
	}
}
