package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/golang/geo/r3"
)

// maxTableRows caps the point table; large clouds only list their head.
const maxTableRows = 1000

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// refreshTable rebuilds the point table from the store.
func (m *Model) refreshTable() {
	store := m.session.renderable.Store()
	scalar := m.session.renderable.Map.Scalar
	cols := []table.Column{
		{Title: "#", Width: 8},
		{Title: "x", Width: 12},
		{Title: "y", Width: 12},
		{Title: "z", Width: 12},
		{Title: scalar, Width: 12},
	}
	rows := make([]table.Row, 0, min(store.Len(), maxTableRows))
	store.Iterate(func(i int, p r3.Vector, depth float64) bool {
		if i >= maxTableRows {
			return false
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			formatFloat(p.X),
			formatFloat(p.Y),
			formatFloat(p.Z),
			formatFloat(depth),
		})
		return true
	})
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	if store.Len() > maxTableRows {
		m.session.SetStatus(fmt.Sprintf("table: first %d of %d points", maxTableRows, store.Len()))
	} else {
		m.session.SetStatus(fmt.Sprintf("table: %d points", store.Len()))
	}
}

// inspect describes the cloud, its color range and the point nearest the view center.
func (m Model) inspect() string {
	r := m.session.renderable
	sum := r.Store().Summary()
	meta := []string{
		fmt.Sprintf("points: %d (%d finite)", sum.Points, sum.Finite),
		fmt.Sprintf("color range: [%s, %s] by %s", formatFloat(r.Map.Min), formatFloat(r.Map.Max), r.Map.Scalar),
	}
	if sum.Finite > 0 {
		meta = append(meta,
			fmt.Sprintf("depth: min=%s max=%s", formatFloat(sum.DepthMin), formatFloat(sum.DepthMax)),
			fmt.Sprintf("depth: mean=%s std=%s", formatFloat(sum.DepthMean), formatFloat(sum.DepthStd)),
		)
	}
	if b, ok := r.Store().Bounds(); ok {
		meta = append(meta, fmt.Sprintf("bounds: [%s %s %s] - [%s %s %s]",
			formatFloat(b.Min.X), formatFloat(b.Min.Y), formatFloat(b.Min.Z),
			formatFloat(b.Max.X), formatFloat(b.Max.Y), formatFloat(b.Max.Z)))
	}
	if i, ok := m.nearestToCenter(); ok {
		p := r.Store().Point(i)
		meta = append(meta, fmt.Sprintf("nearest: #%d (%s, %s, %s)", i, formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z)))
	}
	meta = append(meta, fmt.Sprintf("camera: yaw=%.0f° pitch=%.0f° zoom=%.2fx",
		m.cam.yaw*180/math.Pi, m.cam.pitch*180/math.Pi, m.cam.zoom))
	return strings.Join(meta, "\n")
}
