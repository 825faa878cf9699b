package geom

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"spinwire/internal/vecmath"
)

// shapeFile is the on-disk layout of .json and .yaml shapes.
type shapeFile struct {
	Name     string       `json:"name" yaml:"name"`
	Vertices [][3]float64 `json:"vertices" yaml:"vertices"`
	Edges    [][2]int     `json:"edges" yaml:"edges"`
	Faces    [][3]int     `json:"faces" yaml:"faces"`
}

// Load reads a shape from disk, picking the format from the extension.
// Supported: .json, .yaml/.yml, .obj, .csv. The result is validated.
func Load(path string) (*Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geom: read %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := strings.ToLower(filepath.Ext(path))

	var s *Shape
	switch ext {
	case ".json":
		var f shapeFile
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("geom: parse %s: %w", path, err)
		}
		s = f.shape(name)
	case ".yaml", ".yml":
		var f shapeFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("geom: parse %s: %w", path, err)
		}
		s = f.shape(name)
	case ".obj":
		s, err = ParseOBJ(string(data))
		if err != nil {
			return nil, fmt.Errorf("geom: parse %s: %w", path, err)
		}
		s.Name = name
	case ".csv":
		s, err = ParseCSV(strings.NewReader(string(data)))
		if err != nil {
			return nil, fmt.Errorf("geom: parse %s: %w", path, err)
		}
		s.Name = name
	default:
		return nil, fmt.Errorf("geom: file type %q: %w", ext, ErrUnsupported)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("geom: %s: %w", path, err)
	}
	return s, nil
}

// Resolve returns the compiled-in shape called ref, or loads ref as a file.
func Resolve(ref string) (*Shape, error) {
	if s, err := Builtin(ref); err == nil {
		return s, nil
	}
	if filepath.Ext(ref) == "" {
		return nil, fmt.Errorf("geom: unknown shape %q (built-ins: %s): %w", ref, strings.Join(Names(), ", "), ErrUnsupported)
	}
	return Load(ref)
}

func (f shapeFile) shape(fallback string) *Shape {
	s := &Shape{Name: f.Name}
	if s.Name == "" {
		s.Name = fallback
	}
	for _, v := range f.Vertices {
		s.Vertices = append(s.Vertices, vecmath.V3(v[0], v[1], v[2]))
	}
	for _, e := range f.Edges {
		s.Edges = append(s.Edges, Edge(e))
	}
	for _, fc := range f.Faces {
		s.Faces = append(s.Faces, Face(fc))
	}
	if len(s.Edges) == 0 {
		s.Edges = faceEdges(s.Faces)
	}
	return s
}

// faceEdges collects the boundary edges of every face, each pair once.
func faceEdges(faces []Face) []Edge {
	var out []Edge
	seen := map[Edge]bool{}
	for _, f := range faces {
		for i := 0; i < 3; i++ {
			out = appendEdge(out, seen, f[i], f[(i+1)%3])
		}
	}
	return out
}

func appendEdge(out []Edge, seen map[Edge]bool, a, b int) []Edge {
	key := Edge{min(a, b), max(a, b)}
	if a == b || seen[key] {
		return out
	}
	seen[key] = true
	return append(out, Edge{a, b})
}
