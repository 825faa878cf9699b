package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// the canvas keeps its size; the terminal size only centers it
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tickMsg:
		if m.done() {
			return m, tea.Quit
		}
		m.scene.Advance()
		m.scene.Render(m.buf)
		m.rendered++
		if m.done() {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}
