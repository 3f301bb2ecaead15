package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of the main content,
// which is greyed out around it
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(desaturateANSI(mainContent, pr.styles.Overlay), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	for i, popupLine := range strings.Split(styledPopup, "\n") {
		row := y + i
		line := base[row]
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(popupLine), "")
		base[row] = left + popupLine + right
	}
	return strings.Join(base, "\n")
}

// desaturateANSI strips ANSI color/style codes and recolors text with style, line by line
func desaturateANSI(s string, style lipgloss.Style) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			lines[i] = plain
			continue
		}
		lines[i] = style.Render(plain)
	}
	return strings.Join(lines, "\n")
}
