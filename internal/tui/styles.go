package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles used by the log viewer.
type Styles struct {
	Title     lipgloss.Style
	Date      lipgloss.Style
	Clock     lipgloss.Style
	Elapsed   lipgloss.Style
	Error     lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style
}

// DefaultStyles returns the default viewer styles.
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")    // purple
	secondary := lipgloss.Color("39")  // cyan
	muted := lipgloss.Color("241")     // gray
	danger := lipgloss.Color("196")    // red

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1),
		Date: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Clock: lipgloss.NewStyle().
			Foreground(secondary),
		Elapsed: lipgloss.NewStyle().
			Foreground(muted),
		Error: lipgloss.NewStyle().
			Foreground(danger),
		StatusBar: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary),
	}
}
