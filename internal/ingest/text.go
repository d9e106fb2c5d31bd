package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ErrTooFewColumns marks a data row with fewer than three fields.
var ErrTooFewColumns = errors.New("fewer than 3 columns")

const maxLineSize = 1 << 20

// ParseError locates a bad row. Line and Column are 1-based; Column is the first column
// that is missing or not a number.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d, column %d (%q): %v", e.Line, e.Column, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// skipFunc decides whether a raw line (1-based lineNo) carries no data.
type skipFunc func(lineNo int, line string) bool

func skipComments(_ int, line string) bool {
	s := strings.TrimSpace(line)
	return s == "" || strings.HasPrefix(s, "#")
}

func skipHeader(lineNo int, line string) bool {
	return lineNo <= FixedHeaderLines || strings.TrimSpace(line) == ""
}

// ReadPlainXYZ reads x y z rows, skipping '#' comment lines and blank lines wherever they
// appear. Columns after the third are ignored.
func ReadPlainXYZ(r io.Reader) ([]r3.Vector, error) {
	return readRows(r, skipComments)
}

// ReadFixedHeaderXYZ drops the first FixedHeaderLines lines whatever they contain and
// reads the remaining rows like ReadPlainXYZ, without comment detection.
func ReadFixedHeaderXYZ(r io.Reader) ([]r3.Vector, error) {
	return readRows(r, skipHeader)
}

func readRows(r io.Reader, skip skipFunc) ([]r3.Vector, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var pts []r3.Vector
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if skip(lineNo, line) {
			continue
		}
		p, err := parseXYZ(strings.Fields(line))
		if err != nil {
			err.Line = lineNo
			return nil, err
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "after line %d", lineNo)
	}
	return pts, nil
}

func parseXYZ(fields []string) (r3.Vector, *ParseError) {
	if len(fields) < 3 {
		return r3.Vector{}, &ParseError{Column: len(fields) + 1, Err: ErrTooFewColumns}
	}
	var v [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r3.Vector{}, &ParseError{Column: i + 1, Token: fields[i], Err: err}
		}
		v[i] = f
	}
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
}
