package scene

import (
	"spinwire/internal/geom"
	"spinwire/internal/raster"
	"spinwire/internal/vecmath"
)

// Params are the fixed camera and animation settings.
type Params struct {
	FOV         float64
	Distance    float64 // camera-space z translation
	Axis        string  // x, y, z or xyz
	Step        float64 // radians per frame
	EdgeGlyph   rune
	VertexGlyph rune
}

// Scene is one shape spinning in front of a fixed camera.
type Scene struct {
	shape *geom.Shape
	p     Params
	angle float64

	// reused per frame
	verts []vecmath.Vec4
}

func New(shape *geom.Shape, p Params) *Scene {
	return &Scene{shape: shape, p: p, verts: make([]vecmath.Vec4, len(shape.Vertices))}
}

func (s *Scene) Angle() float64     { return s.angle }
func (s *Scene) Shape() *geom.Shape { return s.shape }

// Advance moves the rotation forward by one step.
func (s *Scene) Advance() {
	s.angle += s.p.Step
}

// Transform is the model-to-camera matrix for the current angle: rotate,
// then push the shape out along +z.
func (s *Scene) Transform() vecmath.Mat4 {
	return vecmath.Translation(0, 0, s.p.Distance).Mul(rotation(s.p.Axis, s.angle))
}

func rotation(axis string, a float64) vecmath.Mat4 {
	switch axis {
	case "x":
		return vecmath.RotationX(a)
	case "z":
		return vecmath.RotationZ(a)
	case "xyz":
		return vecmath.RotationZ(a).Mul(vecmath.RotationY(a)).Mul(vecmath.RotationX(a))
	default:
		return vecmath.RotationY(a)
	}
}

// Render clears buf and paints the current frame: edges first, then vertices
// on top. An edge is drawn only when both ends project. A malformed edge
// index panics.
func (s *Scene) Render(buf *raster.ScreenBuffer) {
	buf.Clear()
	m := s.Transform()
	for i, v := range s.shape.Vertices {
		s.verts[i] = m.Transform(vecmath.Point(v))
	}
	for _, e := range s.shape.Edges {
		x0, y0, ok0 := buf.Project(s.verts[e[0]], s.p.FOV)
		x1, y1, ok1 := buf.Project(s.verts[e[1]], s.p.FOV)
		if ok0 && ok1 {
			buf.DrawLine(x0, y0, x1, y1, s.p.EdgeGlyph)
		}
	}
	for _, v := range s.verts {
		buf.PlotPoint(v, s.p.FOV, s.p.VertexGlyph)
	}
}
