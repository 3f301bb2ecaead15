package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"driveshare/internal/components"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates the help page shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	k := r.keys
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{k.Tabs, k.Cycle, k.Move}},
		{"Cars", []key.Binding{k.Search, k.Book, k.ListCar}},
		{"Bookings", []key.Binding{k.Pay, k.Refresh}},
		{"Messages", []key.Binding{k.Compose, k.View}},
		{"Account", []key.Binding{k.Login, k.Register, k.Logout}},
		{"Forms", []key.Binding{k.NextField, k.Submit, k.Cancel}},
		{"Other", []key.Binding{k.Help, k.Quit}},
	}

	width := 0
	for _, s := range sections {
		for _, b := range s.bindings {
			width = max(width, lipgloss.Width(b.Help().Key))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("DriveShare Help"))
	help.WriteString("\n")
	for _, s := range sections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			pad := strings.Repeat(" ", width-lipgloss.Width(h.Key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(h.Key), pad, descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render(
		"  Dates are typed as YYYY-MM-DD. The search location may be left empty to list every car."))
	return help.String()
}

// RenderInbox generates the inbox as a plain document for the pager
func RenderInbox(state components.InboxState) string {
	if len(state.Messages) == 0 {
		return components.NoMessagesText + "\n"
	}
	var b strings.Builder
	for _, msg := range state.Messages {
		when := msg.Timestamp
		if t, ok := msg.Time(); ok {
			when = t.Format("Mon Jan 2 2006 15:04")
		}
		fmt.Fprintf(&b, "From: %s\nAt:   %s\n\n%s\n\n%s\n", msg.SenderEmail, when, msg.Content, strings.Repeat("─", 40))
	}
	return b.String()
}
