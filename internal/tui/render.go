package tui

import (
	"strings"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
)

// rasterize projects every point of the session's renderable into a w x h cell canvas.
func (m Model) rasterize(w, h int) *brailleBuf {
	br := newBrailleBuf(w, h)
	proj := m.cam.projector(w*2, h*4)
	m.session.renderable.Each(func(_ int, p r3.Vector, c colorful.Color) bool {
		mx, my, depth, ok := proj.project(p)
		if ok {
			br.setPixel(mx, my, c, depth)
		}
		return true
	})
	return br
}

func (m Model) renderCloud(w, h int) string {
	return strings.Join(m.rasterize(w, h).toLines(m.session.cfg.Background), "\n")
}

// nearestToCenter finds the point that projects closest to the middle of the canvas.
func (m Model) nearestToCenter() (idx int, ok bool) {
	w, h := m.canvasSize()
	proj := m.cam.projector(w*2, h*4)
	cx, cy := w, h*2
	best := 1<<31 - 1
	bestDepth := 0.0
	idx = -1
	m.session.renderable.Each(func(i int, p r3.Vector, _ colorful.Color) bool {
		sx, sy, depth, okp := proj.project(p)
		if !okp {
			return true
		}
		dx, dy := sx-cx, sy-cy
		d := dx*dx + dy*dy
		if d < best || (d == best && depth < bestDepth) {
			best, bestDepth, idx = d, depth, i
		}
		return true
	})
	return idx, idx >= 0
}
