package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"driveshare/internal/ui/input/modes"
	"driveshare/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.RegisterMode(types.ModeNormal, modes.NewNormalMode())
	h.RegisterMode(types.ModeForm, modes.NewFormMode())

	return h
}

// HandleKey turns a key press into actions for the current mode. In form
// mode, keys the mode leaves alone come back as a TypeAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && h.currentMode == types.ModeForm {
		return []types.Action{types.TypeAction{Key: msg}}
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// ChangeMode changes the current input mode
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return h.currentMode.String()
}
