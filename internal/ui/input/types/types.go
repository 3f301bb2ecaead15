package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"driveshare/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm
)

func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "form"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	ActiveTab() domain.Tab
	CurrentIndex() int
	TotalItems() int
	LoggedIn() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
