// Package render binds a point cloud to its depth color mapping.
package render

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"ptview/internal/cloud"
)

// ColorMode selects the color ramp.
type ColorMode int

const (
	// ColorModeDefault ramps hue from red at the low end to blue at the high end.
	ColorModeDefault ColorMode = iota
)

const defaultHueSpan = 240.0

// Unmapped is the color of every point when scalar coloring is off.
var Unmapped = colorful.Color{R: 1, G: 1, B: 1}

// ScalarMap is a linear scalar-to-color policy over [Min, Max].
type ScalarMap struct {
	Min     float64
	Max     float64
	Visible bool
	Mode    ColorMode
	// Scalar names the per-point attribute that drives the colors.
	Scalar string
}

// Normalize maps v to [0, 1], clamping values outside the range. NaN maps to 0.
func (m ScalarMap) Normalize(v float64) float64 {
	if math.IsNaN(v) || m.Max <= m.Min {
		return 0
	}
	t := (v - m.Min) / (m.Max - m.Min)
	return math.Max(0, math.Min(1, t))
}

// Color returns the color of a point with scalar value v.
func (m ScalarMap) Color(v float64) colorful.Color {
	if !m.Visible {
		return Unmapped
	}
	return colorful.Hsv(defaultHueSpan*m.Normalize(v), 1, 1)
}

// Renderable is a cloud ready for display. It does not own the store.
type Renderable struct {
	store *cloud.Store
	Map   ScalarMap
}

// Build binds the color range to the store's configured range and turns on depth coloring.
// The range is never fitted to the data.
func Build(store *cloud.Store) *Renderable {
	lo, hi := store.Range()
	return &Renderable{
		store: store,
		Map: ScalarMap{
			Min:     lo,
			Max:     hi,
			Visible: true,
			Mode:    ColorModeDefault,
			Scalar:  cloud.DepthAttribute,
		},
	}
}

func (r *Renderable) Store() *cloud.Store { return r.store }

func (r *Renderable) Len() int { return r.store.Len() }

// Each calls fn with every point and its mapped color until fn returns false.
func (r *Renderable) Each(fn func(i int, p r3.Vector, c colorful.Color) bool) {
	r.store.Iterate(func(i int, p r3.Vector, depth float64) bool {
		return fn(i, p, r.Map.Color(depth))
	})
}
