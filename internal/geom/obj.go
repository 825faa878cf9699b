package geom

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"spinwire/internal/vecmath"
)

// ParseOBJ reads the wireframe subset of Wavefront OBJ:
//
//	v x y z [w]   vertex (w ignored)
//	l a b ...     polyline
//	f a b c ...   polygon, fan-triangulated; its outline becomes edges
//
// Indices are 1-based; negative indices count back from the last vertex.
// Texture/normal references (a/b/c) and other statements are ignored.
func ParseOBJ(src string) (*Shape, error) {
	s := &Shape{}
	seen := map[Edge]bool{}
	sc := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: vertex needs 3 coordinates", lineNo)
			}
			var xyz [3]float64
			for i := range xyz {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				xyz[i] = f
			}
			s.Vertices = append(s.Vertices, vecmath.V3(xyz[0], xyz[1], xyz[2]))
		case "l", "f":
			idx, err := objIndices(fields[1:], len(s.Vertices))
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			if fields[0] == "l" {
				if len(idx) < 2 {
					return nil, fmt.Errorf("obj line %d: line needs 2 vertices", lineNo)
				}
				for i := 0; i+1 < len(idx); i++ {
					s.Edges = appendEdge(s.Edges, seen, idx[i], idx[i+1])
				}
				continue
			}
			if len(idx) < 3 {
				return nil, fmt.Errorf("obj line %d: face needs 3 vertices", lineNo)
			}
			for i := range idx {
				s.Edges = appendEdge(s.Edges, seen, idx[i], idx[(i+1)%len(idx)])
			}
			for i := 1; i+1 < len(idx); i++ {
				s.Faces = append(s.Faces, Face{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(s.Vertices) == 0 {
		return nil, errors.New("obj: no vertices parsed")
	}
	return s, nil
}

// objIndices converts OBJ references to 0-based indices. n is the number of
// vertices defined so far, which negative references are relative to.
func objIndices(refs []string, n int) ([]int, error) {
	out := make([]int, 0, len(refs))
	for _, r := range refs {
		if i := strings.IndexByte(r, '/'); i >= 0 {
			r = r[:i]
		}
		v, err := strconv.Atoi(r)
		if err != nil {
			return nil, err
		}
		switch {
		case v > 0:
			out = append(out, v-1)
		case v < 0:
			out = append(out, n+v)
		default:
			return nil, fmt.Errorf("index 0: %w", ErrIndexRange)
		}
	}
	return out, nil
}
