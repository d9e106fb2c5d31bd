// Package cloud holds the in-memory point cloud geometry: positions, one vertex cell per
// point and the depth scalar used for color mapping.
package cloud

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrCapacityExceeded is returned by InsertPoint once the store holds MaxNumPoints points.
var ErrCapacityExceeded = errors.New("point cloud capacity exceeded")

// Options configure a Store at construction.
type Options struct {
	// MinRange and MaxRange bound the depth color mapping. They are the caller's expected
	// range and are never derived from the data.
	MinRange float64
	MaxRange float64
	// MaxNumPoints caps the number of points. Zero or less means unbounded.
	MaxNumPoints int
}

// DefaultOptions returns the LIDAR-scale defaults.
func DefaultOptions() Options {
	return Options{
		MinRange:     1.0,
		MaxRange:     300.0,
		MaxNumPoints: 800000,
	}
}

type record struct {
	pos   r3.Vector
	depth float64
}

// Store is an ordered point cloud. A point's index is its insertion order.
type Store struct {
	opts    Options
	records []record
}

func New(opts Options) *Store {
	return &Store{opts: opts}
}

// InsertPoint appends p with its depth scalar and vertex cell and returns its index.
// Coordinates are not validated.
func (s *Store) InsertPoint(p r3.Vector) (int, error) {
	if s.opts.MaxNumPoints > 0 && len(s.records) >= s.opts.MaxNumPoints {
		return -1, errors.Wrapf(ErrCapacityExceeded, "limit is %d points", s.opts.MaxNumPoints)
	}
	s.records = append(s.records, record{pos: p, depth: p.Z})
	return len(s.records) - 1, nil
}

func (s *Store) Len() int { return len(s.records) }

func (s *Store) Point(i int) r3.Vector { return s.records[i].pos }

func (s *Store) Depth(i int) float64 { return s.records[i].depth }

// Range returns the configured color mapping bounds.
func (s *Store) Range() (min, max float64) {
	return s.opts.MinRange, s.opts.MaxRange
}

func (s *Store) MaxNumPoints() int { return s.opts.MaxNumPoints }

// Points returns a copy of the positions in insertion order.
func (s *Store) Points() []r3.Vector {
	out := make([]r3.Vector, len(s.records))
	for i, r := range s.records {
		out[i] = r.pos
	}
	return out
}

// DepthAttribute returns a copy of the depth scalars, parallel to Points.
func (s *Store) DepthAttribute() []float64 {
	out := make([]float64, len(s.records))
	for i, r := range s.records {
		out[i] = r.depth
	}
	return out
}

// Cells returns the vertex topology: cell i references point i.
func (s *Store) Cells() []Cell {
	out := make([]Cell, len(s.records))
	for i := range out {
		out[i] = Cell{Point: i}
	}
	return out
}

// Iterate calls fn for each point in order until fn returns false.
func (s *Store) Iterate(fn func(i int, p r3.Vector, depth float64) bool) {
	for i, r := range s.records {
		if !fn(i, r.pos, r.depth) {
			return
		}
	}
}

// Bounds returns the box around all finite points. ok is false when there are none.
func (s *Store) Bounds() (b Bounds, ok bool) {
	for _, r := range s.records {
		if !Finite(r.pos) {
			continue
		}
		if !ok {
			b = Bounds{Min: r.pos, Max: r.pos}
			ok = true
			continue
		}
		b.extend(r.pos)
	}
	return b, ok
}

// Summary describes the depth attribute.
type Summary struct {
	Points    int
	Finite    int
	DepthMin  float64
	DepthMax  float64
	DepthMean float64
	DepthStd  float64
}

// Summary computes depth statistics over the finite depths.
func (s *Store) Summary() Summary {
	sum := Summary{Points: len(s.records)}
	depths := make([]float64, 0, len(s.records))
	for _, r := range s.records {
		if math.IsNaN(r.depth) || math.IsInf(r.depth, 0) {
			continue
		}
		depths = append(depths, r.depth)
	}
	sum.Finite = len(depths)
	if len(depths) == 0 {
		return sum
	}
	sum.DepthMin = floats.Min(depths)
	sum.DepthMax = floats.Max(depths)
	if len(depths) == 1 {
		sum.DepthMean = depths[0]
		return sum
	}
	sum.DepthMean, sum.DepthStd = stat.MeanStdDev(depths, nil)
	return sum
}
