package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"driveshare/internal/components"
	"driveshare/internal/domain"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SelectTabAction struct {
	Tab domain.Tab
}

func (a SelectTabAction) Type() string { return "select_tab" }

type CycleTabAction struct {
	Delta int
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

// Form actions
type OpenFormAction struct {
	Form components.FormID
}

func (a OpenFormAction) Type() string { return "open_form" }

type FocusFieldAction struct {
	Delta int
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type CancelFormAction struct{}

func (a CancelFormAction) Type() string { return "cancel_form" }

// TypeAction forwards a key the mode did not consume to the focused field
type TypeAction struct {
	Key tea.KeyMsg
}

func (a TypeAction) Type() string { return "type" }

// Marketplace actions
type BookSelectedAction struct{}

func (a BookSelectedAction) Type() string { return "book_selected" }

type PaySelectedAction struct{}

func (a PaySelectedAction) Type() string { return "pay_selected" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

// Pager actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ViewInboxAction struct{}

func (a ViewInboxAction) Type() string { return "view_inbox" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
