package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"driveshare/internal/ui/input/types"
)

// FormMode edits the fields of the open form
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.CancelFormAction{}}, true
	case "enter":
		return []types.Action{types.SubmitFormAction{}}, true
	case "tab", "down":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	default:
		// Let the focused field have it
		return nil, false
	}
}
