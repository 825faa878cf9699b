package geom

import "spinwire/internal/vecmath"

// Edge joins two vertices by index.
type Edge [2]int

// Face is a triangle with counter-clockwise winding seen from outside.
type Face [3]int

// Shape is a wireframe solid: ordered vertices plus index pairs to draw.
type Shape struct {
	Name     string
	Vertices []vecmath.Vec3
	Edges    []Edge
	Faces    []Face // carried for completeness; only edges are drawn
}

// Bounds is an axis-aligned box.
type Bounds struct {
	Min vecmath.Vec3
	Max vecmath.Vec3
}

// Center of the box.
func (b Bounds) Center() vecmath.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Clone returns a deep copy so callers can mutate it freely.
func (s *Shape) Clone() *Shape {
	return &Shape{
		Name:     s.Name,
		Vertices: append([]vecmath.Vec3(nil), s.Vertices...),
		Edges:    append([]Edge(nil), s.Edges...),
		Faces:    append([]Face(nil), s.Faces...),
	}
}

// Bounds returns the bounding box of all vertices. Empty shapes yield a zero box.
func (s *Shape) Bounds() Bounds {
	var bb Bounds
	for i, v := range s.Vertices {
		if i == 0 {
			bb = Bounds{Min: v, Max: v}
			continue
		}
		bb.Min = vecmath.V3(min(bb.Min.X, v.X), min(bb.Min.Y, v.Y), min(bb.Min.Z, v.Z))
		bb.Max = vecmath.V3(max(bb.Max.X, v.X), max(bb.Max.Y, v.Y), max(bb.Max.Z, v.Z))
	}
	return bb
}

// Normalized returns a copy centered on the origin whose farthest vertex sits
// at radius. Loaded meshes come in any size, the camera distance is fixed.
func (s *Shape) Normalized(radius float64) *Shape {
	out := s.Clone()
	c := s.Bounds().Center()
	far := 0.0
	for i, v := range out.Vertices {
		out.Vertices[i] = v.Sub(c)
		far = max(far, out.Vertices[i].Mag())
	}
	if far == 0 {
		return out
	}
	k := radius / far
	for i, v := range out.Vertices {
		out.Vertices[i] = v.Scale(k)
	}
	return out
}
