package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"spinwire/internal/raster"
	"spinwire/internal/scene"
)

// Model is the bubbletea front-end. It owns the screen buffer; only Update
// mutates it, so no locking is needed.
type Model struct {
	// terminal size, used only to center the canvas
	width  int
	height int

	scene *scene.Scene
	buf   *raster.ScreenBuffer

	delay    time.Duration
	frames   int // 0 = forever
	rendered int

	keys keyMap
	help help.Model
}

type tickMsg time.Time

// New renders the first frame of s into a fresh w×h buffer.
func New(s *scene.Scene, w, h int, delay time.Duration, frames int) Model {
	m := Model{
		scene:  s,
		buf:    raster.NewScreenBuffer(w, h),
		delay:  delay,
		frames: frames,
		keys:   defaultKeys(),
		help:   help.New(),
	}
	m.scene.Render(m.buf)
	m.rendered = 1
	return m
}

// Buffer is the most recently rendered frame.
func (m Model) Buffer() *raster.ScreenBuffer { return m.buf }

// Rendered counts frames drawn so far.
func (m Model) Rendered() int { return m.rendered }

func (m Model) Init() tea.Cmd {
	if m.done() {
		return tea.Quit
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) done() bool {
	return m.frames > 0 && m.rendered >= m.frames
}
