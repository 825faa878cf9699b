package raster

import (
	"io"
	"strings"
)

const (
	// Blank fills cleared cells.
	Blank = ' '
	// ClearHome clears the terminal and homes the cursor.
	ClearHome = "\x1b[2J\x1b[H"
)

// ScreenBuffer is a fixed-size grid of characters. It is created once and
// repainted every frame; it is never resized.
type ScreenBuffer struct {
	w, h  int    // in cells
	cells []rune // row-major, len = w*h
}

// NewScreenBuffer allocates a cleared w×h buffer. Non-positive sizes give an
// empty buffer that discards every write.
func NewScreenBuffer(w, h int) *ScreenBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &ScreenBuffer{w: w, h: h, cells: make([]rune, w*h)}
	b.Clear()
	return b
}

func (b *ScreenBuffer) Width() int  { return b.w }
func (b *ScreenBuffer) Height() int { return b.h }

// Clear resets every cell to Blank.
func (b *ScreenBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Blank
	}
}

// Set writes one cell. Coordinates outside the grid are dropped silently.
func (b *ScreenBuffer) Set(x, y int, c rune) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = c
}

// At returns the cell at (x, y), or Blank outside the grid.
func (b *ScreenBuffer) At(x, y int) rune {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return Blank
	}
	return b.cells[y*b.w+x]
}

// Lines returns one string per row, each exactly Width runes.
func (b *ScreenBuffer) Lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		out[y] = string(b.cells[y*b.w : (y+1)*b.w])
	}
	return out
}

// String renders the grid as text, each row newline-terminated.
func (b *ScreenBuffer) String() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for y := 0; y < b.h; y++ {
		for _, c := range b.cells[y*b.w : (y+1)*b.w] {
			sb.WriteRune(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo emits one terminal frame: ClearHome followed by the grid.
func (b *ScreenBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, ClearHome+b.String())
	return int64(n), err
}
