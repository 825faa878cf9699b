package raster

import (
	"math"

	"spinwire/internal/vecmath"
)

// NearPlane is the minimum camera-space depth that still projects.
const NearPlane = 0.1

// Project maps a camera-space point to screen cells with a perspective
// divide. fov acts as a focal length. Horizontal is doubled because a
// terminal cell is about twice as tall as it is wide; vertical is flipped so
// +Y points up. Cell coordinates are truncated toward zero and may land
// outside the buffer.
func (b *ScreenBuffer) Project(p vecmath.Vec4, fov float64) (int, int, bool) {
	if p.Z <= NearPlane {
		return 0, 0, false
	}
	px := p.X * fov / p.Z
	py := p.Y * fov / p.Z
	sx := int(px*2 + float64(b.w)/2)
	sy := int(-py + float64(b.h)/2)
	return sx, sy, true
}

// PlotPoint projects p and writes c there when it is visible.
func (b *ScreenBuffer) PlotPoint(p vecmath.Vec4, fov float64, c rune) {
	x, y, ok := b.Project(p, fov)
	if !ok || x < 0 || y < 0 {
		return
	}
	b.Set(x, y, c)
}

// DrawLine rasterizes a segment between two screen cells with DDA stepping.
// It writes exactly max(|dx|, |dy|) cells starting at (x0, y0), or the single
// start cell when both endpoints coincide. The far endpoint is not forced, so
// long lines may drift by rounding. Cells off the grid are dropped.
func (b *ScreenBuffer) DrawLine(x0, y0, x1, y1 int, c rune) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		b.Set(x0, y0, c)
		return
	}
	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	x, y := float64(x0), float64(y0)
	for i := 0; i < steps; i++ {
		b.Set(int(math.Round(x)), int(math.Round(y)), c)
		x += xInc
		y += yInc
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
