package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Cursor        lipgloss.Style
	CursorBlur    lipgloss.Style
	Checked       lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Card          lipgloss.Style
	CardFocused   lipgloss.Style
	CardTitle     lipgloss.Style
	Badge         lipgloss.Style
	Dialog        lipgloss.Style
	DialogTitle   lipgloss.Style
	Disabled      lipgloss.Style
	TableHeader   lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Cursor:      lipgloss.NewStyle().Background(lipgloss.Color("238")),
		CursorBlur:  lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Checked:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("99")).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		DialogTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("99")).Padding(0, 1),
		Disabled:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TableHeader:   lipgloss.NewStyle().Bold(true).Underline(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// GetStatusColor returns the color of a progress status
func GetStatusColor(status string) string {
	switch status {
	case "completed":
		return "78" // green
	case "in_progress":
		return "33" // blue
	default:
		return "245" // gray
	}
}
