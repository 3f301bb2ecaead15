package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"driveshare/internal/domain"
)

// keyMap documents the bindings the input modes implement
type keyMap struct {
	Tabs     key.Binding
	Cycle    key.Binding
	Move     key.Binding
	Search   key.Binding
	Book     key.Binding
	Pay      key.Binding
	ListCar  key.Binding
	Compose  key.Binding
	View     key.Binding
	Refresh  key.Binding
	Login    key.Binding
	Register key.Binding
	Logout   key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Form mode
	NextField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Tabs:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "switch tab")),
		Cycle:     key.NewBinding(key.WithKeys("tab", "shift+tab", "h", "l"), key.WithHelp("tab/h/l", "next/prev tab")),
		Move:      key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓, j/k", "move")),
		Search:    key.NewBinding(key.WithKeys("/", "s"), key.WithHelp("/", "search cars")),
		Book:      key.NewBinding(key.WithKeys("enter", "b"), key.WithHelp("enter/b", "book now")),
		Pay:       key.NewBinding(key.WithKeys("enter", "p"), key.WithHelp("enter/p", "pay booking")),
		ListCar:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "list a car")),
		Compose:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "new message")),
		View:      key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter/v", "read inbox")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Login:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "login")),
		Register:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "register")),
		Logout:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "logout")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tabs, k.Search, k.ListCar, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tabs, k.Cycle, k.Move, k.Help, k.Quit},
		{k.Search, k.Book, k.ListCar, k.Pay},
		{k.Compose, k.View, k.Refresh},
		{k.Login, k.Register, k.Logout},
		{k.NextField, k.Submit, k.Cancel},
	}
}

// formKeys is the footer while a form is open
type formKeys struct{ keyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// tabKeys returns the bindings that matter on tab, for the footer
func (k keyMap) tabKeys(tab domain.Tab, loggedIn bool) []key.Binding {
	out := []key.Binding{k.Tabs}
	switch tab {
	case domain.TabSearch:
		out = append(out, k.Search, k.Book, k.ListCar)
	case domain.TabBookings:
		out = append(out, k.Pay, k.Refresh)
	case domain.TabMessages:
		out = append(out, k.Compose, k.View, k.Refresh)
	case domain.TabProfile:
		out = append(out, k.Logout)
	}
	if !loggedIn {
		out = append(out, k.Login, k.Register)
	}
	return append(out, k.Help, k.Quit)
}
