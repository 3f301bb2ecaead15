package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"driveshare/internal/components"
)

func (r *Renderer) renderSearch(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.renderForm(state.SearchForm))
	b.WriteString("\n\n")

	if len(state.Results) == 0 {
		b.WriteString(r.styles.Dim.Render("No cars to show. Press / to search."))
		return b.String()
	}

	for i, entry := range state.Results {
		b.WriteString(r.renderResult(entry, i == state.SelectedIndex))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderResult(entry components.ResultEntry, selected bool) string {
	button := r.styles.Button.Render(entry.Button.Label)
	title := entry.Title
	if selected {
		button = r.styles.ActiveButton.Render(entry.Button.Label)
		title = r.styles.Highlight.Render(title)
	}
	details := r.styles.Dim.Render(fmt.Sprintf("%s · %s", entry.Price, entry.Location))
	line := lipgloss.JoinHorizontal(lipgloss.Center, cursor(selected), button, "  ", title, "  ", details)
	return line
}

func (r *Renderer) renderBookings(state ViewState) string {
	if !state.BookingsLoaded {
		return r.styles.Dim.Render("Loading bookings...")
	}
	if len(state.Bookings) == 0 {
		return r.styles.Dim.Render(components.NoBookingsText)
	}

	var b strings.Builder
	b.WriteString(r.styles.Heading.Render("My Bookings"))
	b.WriteString("\n")
	for i, booking := range state.Bookings {
		selected := i == state.SelectedIndex
		status := booking.Status
		if status == "" {
			status = "pending"
		}
		statusText := lipgloss.NewStyle().Foreground(lipgloss.Color(BookingStatusColor(status))).Render(status)
		line := fmt.Sprintf("Booking #%d  car %d  %s → %s  %s", booking.ID, booking.CarID, booking.StartDate, booking.EndDate, statusText)
		if selected {
			line = r.styles.SelectionBg.Render(line)
		}
		b.WriteString(cursor(selected) + line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderMessages(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.renderForm(state.MessageForm))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Heading.Render("Inbox"))
	b.WriteString("\n")

	inbox := state.Inbox
	switch {
	case !state.InboxVisible:
		b.WriteString(r.styles.Dim.Render("Log in to see your messages."))
	case !inbox.Loaded:
		b.WriteString(r.styles.Dim.Render("Loading messages..."))
	case len(inbox.Messages) == 0:
		b.WriteString(r.styles.Dim.Render(components.NoMessagesText))
	default:
		for i, msg := range inbox.Messages {
			selected := i == state.SelectedIndex
			when := msg.Timestamp
			if t, ok := msg.Time(); ok {
				when = t.Format("Jan 2 15:04")
			}
			from := r.styles.Label.Render(fmt.Sprintf("%s, %s", msg.SenderEmail, when))
			text := msg.Content
			if selected {
				text = r.styles.Highlight.Render(text)
			}
			b.WriteString(cursor(selected) + from + "\n  " + text + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderProfile(state ViewState) string {
	if !state.LoggedIn {
		return r.styles.Dim.Render("Not logged in.")
	}
	var b strings.Builder
	b.WriteString(r.styles.Heading.Render("Profile"))
	b.WriteString("\n")
	b.WriteString(r.styles.Label.Render("Username: "))
	b.WriteString(state.Profile.Username)
	b.WriteString("\n")
	b.WriteString(r.styles.Label.Render("Email:    "))
	b.WriteString(state.Profile.Email)
	return b.String()
}

func cursor(selected bool) string {
	if selected {
		return "▸ "
	}
	return "  "
}
