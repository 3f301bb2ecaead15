package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"driveshare/internal/components"
	"driveshare/internal/domain"
	"driveshare/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab, tea.KeyRight:
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case tea.KeyShiftTab, tea.KeyLeft:
		return []types.Action{types.CycleTabAction{Delta: -1}}, true

	case tea.KeyEnter:
		return m.activate(ctx)
	}

	// Handle string keys
	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "l":
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case "h":
		return []types.Action{types.CycleTabAction{Delta: -1}}, true

	case "1", "2", "3", "4":
		tabs := domain.Tabs()
		tab := tabs[int(msg.String()[0]-'1')]
		if tab == domain.TabProfile && !ctx.LoggedIn() {
			// Profile tab is hidden while logged out
			return nil, false
		}
		return []types.Action{types.SelectTabAction{Tab: tab}}, true

	case "/", "s":
		if ctx.ActiveTab() != domain.TabSearch {
			return []types.Action{
				types.SelectTabAction{Tab: domain.TabSearch},
				types.OpenFormAction{Form: components.FormSearch},
			}, true
		}
		return []types.Action{types.OpenFormAction{Form: components.FormSearch}}, true

	case "a":
		return []types.Action{types.OpenFormAction{Form: components.FormCarListing}}, true

	case "b":
		if ctx.ActiveTab() == domain.TabSearch && ctx.TotalItems() > 0 {
			return []types.Action{types.BookSelectedAction{}}, true
		}
		return nil, false

	case "p":
		if ctx.ActiveTab() == domain.TabBookings && ctx.TotalItems() > 0 {
			return []types.Action{types.PaySelectedAction{}}, true
		}
		return nil, false

	case "c":
		if ctx.ActiveTab() == domain.TabMessages {
			return []types.Action{types.OpenFormAction{Form: components.FormMessage}}, true
		}
		return nil, false

	case "v":
		if ctx.ActiveTab() == domain.TabMessages && ctx.TotalItems() > 0 {
			return []types.Action{types.ViewInboxAction{}}, true
		}
		return nil, false

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "L":
		if !ctx.LoggedIn() {
			return []types.Action{types.OpenFormAction{Form: components.FormLogin}}, true
		}
		return nil, false

	case "R":
		if !ctx.LoggedIn() {
			return []types.Action{types.OpenFormAction{Form: components.FormRegister}}, true
		}
		return nil, false

	case "o":
		if ctx.LoggedIn() {
			return []types.Action{types.LogoutAction{}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}

// activate is what enter does on the current tab
func (m *NormalMode) activate(ctx types.Context) ([]types.Action, bool) {
	if ctx.TotalItems() == 0 {
		return nil, false
	}
	switch ctx.ActiveTab() {
	case domain.TabSearch:
		return []types.Action{types.BookSelectedAction{}}, true
	case domain.TabBookings:
		return []types.Action{types.PaySelectedAction{}}, true
	case domain.TabMessages:
		return []types.Action{types.ViewInboxAction{}}, true
	}
	return nil, false
}
