package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

var csvAxisNames = [3][]string{
	{"x", "lon", "lng", "long", "longitude"},
	{"y", "lat", "latitude"},
	{"z", "alt", "altitude", "elevation", "height", "depth"},
}

// ReadCSV reads a CSV with a header row naming the coordinate columns.
// Column detection (case-insensitive): x|lon|lng|long|longitude, y|lat|latitude and
// z|alt|altitude|elevation|height|depth. The first match wins.
func ReadCSV(r io.Reader) ([]r3.Vector, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("csv: missing header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "csv header")
	}
	idx := [3]int{-1, -1, -1}
	for i, h := range header {
		lh := strings.ToLower(strings.TrimSpace(h))
		for axis, names := range csvAxisNames {
			if idx[axis] != -1 {
				continue
			}
			for _, n := range names {
				if lh == n {
					idx[axis] = i
				}
			}
		}
	}
	for axis, i := range idx {
		if i == -1 {
			return nil, errors.Errorf("csv: no %s column in header", csvAxisNames[axis][0])
		}
	}

	var pts []r3.Vector
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "csv")
		}
		line, _ := cr.FieldPos(0)
		var v [3]float64
		for axis, col := range idx {
			if col >= len(row) {
				return nil, &ParseError{Line: line, Column: col + 1, Err: ErrTooFewColumns}
			}
			tok := strings.TrimSpace(row[col])
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: col + 1, Token: tok, Err: err}
			}
			v[axis] = f
		}
		pts = append(pts, r3.Vector{X: v[0], Y: v[1], Z: v[2]})
	}
	return pts, nil
}
