package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// brailleBits[ry][rx] is the dot bit of micro-pixel (rx, ry) within a cell.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleBuf is a canvas of w x h cells, each holding 2x4 micro-pixels. A cell takes the
// color of the nearest point plotted into it.
type brailleBuf struct {
	w, h  int
	m     [][]uint8
	color [][]colorful.Color
	depth [][]float64
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h}
	b.m = make([][]uint8, h)
	b.color = make([][]colorful.Color, h)
	b.depth = make([][]float64, h)
	for i := 0; i < h; i++ {
		b.m[i] = make([]uint8, w)
		b.color[i] = make([]colorful.Color, w)
		b.depth[i] = make([]float64, w)
	}
	return b
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c colorful.Color, depth float64) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	if b.m[cy][cx] == 0 || depth < b.depth[cy][cx] {
		b.color[cy][cx] = c
		b.depth[cy][cx] = depth
	}
	b.m[cy][cx] |= brailleBits[ry][rx]
}

func (b *brailleBuf) dots() int {
	n := 0
	for _, row := range b.m {
		for _, mask := range row {
			for ; mask != 0; mask &= mask - 1 {
				n++
			}
		}
	}
	return n
}

// toLines renders each row as runs of equally colored cells on bg.
func (b *brailleBuf) toLines(bg colorful.Color) []string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
	styles := map[string]lipgloss.Style{}
	styleFor := func(hex string) lipgloss.Style {
		st, ok := styles[hex]
		if !ok {
			st = base.Foreground(lipgloss.Color(hex))
			styles[hex] = st
		}
		return st
	}

	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		run := make([]rune, 0, b.w)
		runHex := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runHex == "" {
				sb.WriteString(base.Render(string(run)))
			} else {
				sb.WriteString(styleFor(runHex).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			hex := ""
			r := ' '
			if mask != 0 {
				hex = b.color[y][x].Hex()
				r = rune(0x2800 + int(mask))
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
