package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"spinwire/internal/vecmath"
)

// ParseCSV reads a path of points with x/y/z columns and joins consecutive
// rows with edges. Column names are matched case-insensitively; rows that do
// not parse are skipped.
func ParseCSV(r io.Reader) (*Shape, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idx := [3]int{-1, -1, -1}
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x":
			idx[0] = i
		case "y":
			idx[1] = i
		case "z":
			idx[2] = i
		}
	}
	if idx[0] == -1 || idx[1] == -1 || idx[2] == -1 {
		return nil, errors.New("csv: x/y/z columns not found")
	}
	s := &Shape{}
	for _, row := range recs[1:] {
		var xyz [3]float64
		ok := true
		for k, col := range idx {
			if col >= len(row) {
				ok = false
				break
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				ok = false
				break
			}
			xyz[k] = f
		}
		if !ok {
			continue
		}
		s.Vertices = append(s.Vertices, vecmath.V3(xyz[0], xyz[1], xyz[2]))
		if n := len(s.Vertices); n > 1 {
			s.Edges = append(s.Edges, Edge{n - 2, n - 1})
		}
	}
	if len(s.Vertices) == 0 {
		return nil, errors.New("csv: no valid points parsed")
	}
	return s, nil
}
