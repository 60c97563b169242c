package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the modal.
type Styles struct {
	Title        lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Modal        lipgloss.Style
	Label        lipgloss.Style
	Error        lipgloss.Style
	Popup        lipgloss.Style
	Alert        lipgloss.Style
	Hint         lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		ButtonActive: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Foreground(lipgloss.Color("63")).
			Bold(true),
		Modal: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Label: lipgloss.NewStyle().Bold(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Popup: lipgloss.NewStyle().
			Padding(0, 1).
			MarginTop(1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("9")),
		Alert: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("9")),
		Hint: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1),
	}
}
