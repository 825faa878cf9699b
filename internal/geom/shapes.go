package geom

import (
	"fmt"
	"sort"

	"spinwire/internal/vecmath"
)

var cube = Shape{
	Name: "cube",
	Vertices: []vecmath.Vec3{
		{X: -1, Y: -1, Z: -1}, // 0: front bottom left
		{X: 1, Y: -1, Z: -1},  // 1: front bottom right
		{X: 1, Y: 1, Z: -1},   // 2: front top right
		{X: -1, Y: 1, Z: -1},  // 3: front top left
		{X: -1, Y: -1, Z: 1},  // 4: back bottom left
		{X: 1, Y: -1, Z: 1},   // 5: back bottom right
		{X: 1, Y: 1, Z: 1},    // 6: back top right
		{X: -1, Y: 1, Z: 1},   // 7: back top left
	},
	Edges: []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	},
	Faces: []Face{
		{0, 1, 2}, {0, 2, 3}, // front z=-1
		{5, 4, 7}, {5, 7, 6}, // back z=1
		{4, 0, 3}, {4, 3, 7}, // left x=-1
		{1, 5, 6}, {1, 6, 2}, // right x=1
		{3, 2, 6}, {3, 6, 7}, // top y=1
		{4, 5, 1}, {4, 1, 0}, // bottom y=-1
	},
}

// The base edges run 0-1-2-3-0, so two of them cross the square diagonally.
var pyramid = Shape{
	Name: "pyramid",
	Vertices: []vecmath.Vec3{
		{X: -1, Y: -1, Z: -1}, // 0: front bottom left
		{X: 1, Y: -1, Z: -1},  // 1: front bottom right
		{X: -1, Y: -1, Z: 1},  // 2: back bottom left
		{X: 1, Y: -1, Z: 1},   // 3: back bottom right
		{X: 0, Y: 1, Z: 0},    // 4: top
	},
	Edges: []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 0}, {4, 1}, {4, 2}, {4, 3},
	},
}

var builtins = map[string]*Shape{
	cube.Name:    &cube,
	pyramid.Name: &pyramid,
}

func init() {
	for _, s := range builtins {
		MustValidate(s)
	}
}

// Cube returns the unit cube (side 2, centered on the origin).
func Cube() *Shape { return cube.Clone() }

// Pyramid returns the square-based pyramid.
func Pyramid() *Shape { return pyramid.Clone() }

// Builtin looks up a compiled-in shape by name.
func Builtin(name string) (*Shape, error) {
	s, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("geom: unknown shape %q: %w", name, ErrUnsupported)
	}
	return s.Clone(), nil
}

// Names lists the compiled-in shapes, sorted.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for n := range builtins {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
