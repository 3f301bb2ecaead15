package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"driveshare/internal/components"
	"driveshare/internal/domain"
)

// FieldView is one rendered form input
type FieldView struct {
	Label   string
	Input   string
	Focused bool
}

// FormView is a form as it appears on screen
type FormView struct {
	Title  string
	Fields []FieldView
	Active bool
	Note   string
}

// TabView is one entry of the tab bar
type TabView struct {
	Tab    domain.Tab
	Label  string
	Active bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Tabs      []TabView
	ActiveTab domain.Tab
	LoggedIn  bool

	SelectedIndex int

	SearchForm FormView
	Results    []components.ResultEntry

	Bookings       []domain.Booking
	BookingsLoaded bool

	MessageForm  FormView
	Inbox        components.InboxState
	InboxVisible bool

	Profile components.ProfileState

	// Modal is the open dialog, if any
	Modal *FormView

	Toasts  []components.Toast
	Pending int
	Spinner string
	Footer  string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderTabs(state.Tabs))
	content.WriteString("\n\n")

	switch state.ActiveTab {
	case domain.TabSearch:
		content.WriteString(r.renderSearch(state))
	case domain.TabBookings:
		content.WriteString(r.renderBookings(state))
	case domain.TabMessages:
		content.WriteString(r.renderMessages(state))
	case domain.TabProfile:
		content.WriteString(r.renderProfile(state))
	}

	toasts := r.renderToasts(state.Toasts)
	footer := r.styles.Help.Render(state.Footer)

	// Push notifications and the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	bottomLines := lipgloss.Height(footer)
	if toasts != "" {
		bottomLines += lipgloss.Height(toasts)
	}
	if paddingNeeded := availableLines - currentLines - bottomLines; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	if toasts != "" {
		content.WriteString("\n")
		content.WriteString(toasts)
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.Modal != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderForm(*state.Modal), state.Height, state.Width, r.styles.Modal)
	}
	return finalContent
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("DriveShare")
	if state.Pending == 0 {
		return logo
	}
	right := r.styles.StatusLoading.Render(fmt.Sprintf("%s Working (%d)", state.Spinner, state.Pending))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + right
}

func (r *Renderer) renderTabs(tabs []TabView) string {
	cells := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.Active {
			cells = append(cells, r.styles.ActiveTab.Render(t.Label))
		} else {
			cells = append(cells, r.styles.Tab.Render(t.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (r *Renderer) renderToasts(toasts []components.Toast) string {
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		icon := "✓"
		if t.Severity == domain.SeverityError {
			icon = "✗"
		}
		lines = append(lines, r.styles.SeverityStyle(t.Severity).Render(icon+" "+t.Message))
	}
	return strings.Join(lines, "\n")
}

// renderForm renders a form's labels and inputs, one field per row
func (r *Renderer) renderForm(form FormView) string {
	var b strings.Builder
	if form.Title != "" {
		b.WriteString(r.styles.Heading.Render(form.Title))
		b.WriteString("\n")
	}
	for _, f := range form.Fields {
		label, field := r.styles.Label, r.styles.Field
		if form.Active && f.Focused {
			label, field = r.styles.FocusedLabel, r.styles.FocusedField
		}
		b.WriteString(label.Render(f.Label))
		b.WriteString("\n")
		b.WriteString(field.Render(f.Input))
		b.WriteString("\n")
	}
	if form.Note != "" {
		b.WriteString(r.styles.Dim.Render(form.Note))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
