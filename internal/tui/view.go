package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	header := titleStyle.Render(fmt.Sprintf(" spinwire ─ %s ", m.scene.Shape().Name))
	canvas := canvasStyle.Render(strings.Join(m.buf.Lines(), "\n"))

	status := dimStyle.Render(fmt.Sprintf(" frame %d  angle %.2f ", m.rendered, m.scene.Angle()))
	footer := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.help.View(m.keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	if m.width == 0 || m.height == 0 {
		return ui
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ui)
}
