package cloud

import (
	"math"

	"github.com/golang/geo/r3"
)

// DepthAttribute names the per-point scalar used for coloring.
const DepthAttribute = "depth"

// Cell is a vertex cell: a topological element referencing a single point index.
type Cell struct {
	Point int
}

type Bounds struct {
	Min r3.Vector
	Max r3.Vector
}

// Center of the box.
func (b Bounds) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Radius is half the box diagonal.
func (b Bounds) Radius() float64 {
	return b.Max.Sub(b.Min).Norm() / 2
}

func (b *Bounds) extend(p r3.Vector) {
	b.Min = r3.Vector{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = r3.Vector{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
}

// Finite reports whether every component of p is a finite number.
func Finite(p r3.Vector) bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
