package geom

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyShape  = errors.New("shape has no vertices")
	ErrIndexRange  = errors.New("vertex index out of range")
	ErrUnsupported = errors.New("unsupported")
)

// Validate checks that every edge and face references an existing vertex.
func (s *Shape) Validate() error {
	n := len(s.Vertices)
	if n == 0 {
		return fmt.Errorf("geom: %s: %w", s.Name, ErrEmptyShape)
	}
	for i, e := range s.Edges {
		for _, idx := range e {
			if idx < 0 || idx >= n {
				return fmt.Errorf("geom: %s: edge %d references %d of %d vertices: %w", s.Name, i, idx, n, ErrIndexRange)
			}
		}
	}
	for i, f := range s.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("geom: %s: face %d references %d of %d vertices: %w", s.Name, i, idx, n, ErrIndexRange)
			}
		}
	}
	return nil
}

// MustValidate panics on malformed compiled-in data.
func MustValidate(s *Shape) {
	if err := s.Validate(); err != nil {
		panic(err)
	}
}
