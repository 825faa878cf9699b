package scene

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinwire/internal/geom"
	"spinwire/internal/raster"
	"spinwire/internal/vecmath"
)

func params() Params {
	return Params{FOV: 40, Distance: 5, Axis: "y", Step: 0.05, EdgeGlyph: '#', VertexGlyph: '@'}
}

func count(b *raster.ScreenBuffer, c rune) int {
	return strings.Count(b.String(), string(c))
}

func TestTransformAtRest(t *testing.T) {
	s := New(geom.Pyramid(), params())
	assert.True(t, s.Transform().ApproxEqual(vecmath.Translation(0, 0, 5), 1e-9))

	s.Advance()
	assert.InDelta(t, 0.05, s.Angle(), 1e-12)
	want := vecmath.Translation(0, 0, 5).Mul(vecmath.RotationY(0.05))
	assert.True(t, s.Transform().ApproxEqual(want, 1e-9))
}

func TestTransformAxes(t *testing.T) {
	p := params()
	p.Step = math.Pi / 2
	for axis, want := range map[string]vecmath.Vec4{
		"x": vecmath.V4(0, 0, 6, 1),  // (0,1,0) -> (0,0,1)
		"y": vecmath.V4(0, 1, 5, 1),  // y axis is invariant
		"z": vecmath.V4(-1, 0, 5, 1), // (0,1,0) -> (-1,0,0)
	} {
		p.Axis = axis
		s := New(geom.Pyramid(), p)
		s.Advance()
		got := s.Transform().Transform(vecmath.V4(0, 1, 0, 1))
		assert.True(t, want.ApproxEqual(got, 1e-9), "axis %s: %+v", axis, got)
	}

	p.Axis = "xyz"
	s := New(geom.Pyramid(), p)
	s.Advance()
	want := vecmath.Translation(0, 0, 5).
		Mul(vecmath.RotationZ(p.Step)).Mul(vecmath.RotationY(p.Step)).Mul(vecmath.RotationX(p.Step))
	assert.True(t, s.Transform().ApproxEqual(want, 1e-9))
}

func TestRenderPyramidFirstFrame(t *testing.T) {
	s := New(geom.Pyramid(), params())
	buf := raster.NewScreenBuffer(80, 24)
	s.Render(buf)

	for _, p := range [][2]int{{40, 4}, {20, 22}, {60, 22}, {26, 18}, {53, 18}} {
		assert.Equal(t, '@', buf.At(p[0], p[1]), "vertex at %v", p)
	}
	assert.Equal(t, 5, count(buf, '@'))
	// front base edge runs along row 22
	assert.Equal(t, '#', buf.At(40, 22))
	assert.Greater(t, count(buf, '#'), 40)
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	s := New(geom.Cube(), params())
	buf := raster.NewScreenBuffer(80, 24)
	buf.Set(0, 0, 'x')
	s.Render(buf)
	assert.Equal(t, raster.Blank, buf.At(0, 0))

	first := buf.String()
	s.Advance()
	s.Render(buf)
	assert.NotEqual(t, first, buf.String())
}

func TestRenderSkipsEdgesBehindCamera(t *testing.T) {
	p := params()
	p.Distance = 0.5
	p.FOV = 5
	s := New(geom.Cube(), p)
	buf := raster.NewScreenBuffer(80, 24)
	s.Render(buf)

	// only the four back corners at z=1.5 are in front of the near plane
	assert.Equal(t, 4, count(buf, '@'))
	for _, c := range [][2]int{{46, 8}, {33, 8}, {46, 15}, {33, 15}} {
		assert.Equal(t, '@', buf.At(c[0], c[1]), "%v", c)
	}
}

func TestRenderPanicsOnMalformedEdge(t *testing.T) {
	bad := &geom.Shape{Vertices: []vecmath.Vec3{{Z: 1}}, Edges: []geom.Edge{{0, 5}}}
	s := New(bad, params())
	assert.Panics(t, func() { s.Render(raster.NewScreenBuffer(10, 5)) })
}

func TestRunnerFrameLimit(t *testing.T) {
	s := New(geom.Pyramid(), params())
	r := NewRunner(s, 80, 24, time.Millisecond, 3)

	var out bytes.Buffer
	require.NoError(t, r.Run(context.Background(), &out))
	assert.Equal(t, 3, r.Rendered())
	assert.Equal(t, 3, strings.Count(out.String(), raster.ClearHome))
	assert.Equal(t, 3*24, strings.Count(out.String(), "\n"))
	// advanced between frames, not after the last one
	assert.InDelta(t, 0.1, s.Angle(), 1e-12)
	assert.Equal(t, 5, count(r.Buffer(), '@'))
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(New(geom.Cube(), params()), 20, 10, time.Hour, 0)
	var out bytes.Buffer
	require.NoError(t, r.Run(ctx, &out))
	assert.Equal(t, 0, r.Rendered())
	assert.Zero(t, out.Len())
}

func TestRunnerCancelDuringSleep(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r := NewRunner(New(geom.Cube(), params()), 20, 10, time.Hour, 0)
	require.NoError(t, r.Run(ctx, &bytes.Buffer{}))
	assert.Equal(t, 1, r.Rendered())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunnerWriteError(t *testing.T) {
	r := NewRunner(New(geom.Cube(), params()), 20, 10, time.Millisecond, 0)
	err := r.Run(context.Background(), failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.Equal(t, 0, r.Rendered())
}
