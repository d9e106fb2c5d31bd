package tui

import (
	"image"
	"sort"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"ptview/internal/render"
)

type splat struct {
	x, y  int
	depth float64
	c     colorful.Color
}

// snapshot draws r as one pixel per point on a w x h image, far points first.
func snapshot(r *render.Renderable, cam camera, w, h int, bg colorful.Color) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()

	proj := cam.projector(w, h)
	splats := make([]splat, 0, r.Len())
	r.Each(func(_ int, p r3.Vector, c colorful.Color) bool {
		if x, y, depth, ok := proj.project(p); ok {
			splats = append(splats, splat{x: x, y: y, depth: depth, c: c})
		}
		return true
	})
	sort.SliceStable(splats, func(i, j int) bool { return splats[i].depth > splats[j].depth })
	for _, s := range splats {
		dc.SetColor(s.c)
		dc.SetPixel(s.x, s.y)
	}
	return dc.Image()
}

// Snapshot renders r from the default camera, framed on the cloud's bounds.
func Snapshot(r *render.Renderable, w, h int, bg colorful.Color) image.Image {
	return snapshot(r, fitCamera(r.Store().Bounds()), w, h, bg)
}

// SavePNG writes Snapshot to path.
func SavePNG(path string, r *render.Renderable, w, h int, bg colorful.Color) error {
	return gg.SavePNG(path, Snapshot(r, w, h, bg))
}
