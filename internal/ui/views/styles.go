package views

import (
	"github.com/charmbracelet/lipgloss"

	"driveshare/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Heading       lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Button        lipgloss.Style
	ActiveButton  lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Field         lipgloss.Style
	FocusedField  lipgloss.Style
	Modal         lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusLoading lipgloss.Style
	Overlay       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("240")),
		ActiveButton: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240")).
			Width(36),
		FocusedField: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("214")).
			Width(36),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Overlay:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// SeverityStyle returns the style notifications of severity are drawn with
func (s *Styles) SeverityStyle(severity domain.Severity) lipgloss.Style {
	if severity == domain.SeverityError {
		return s.StatusError
	}
	return s.StatusSuccess
}

// BookingStatusColor returns the color a booking status is drawn in
func BookingStatusColor(status string) string {
	switch status {
	case "paid", "confirmed":
		return "78" // green
	case "cancelled", "canceled":
		return "203" // red
	default:
		return "214" // yellow for pending and anything else
	}
}
