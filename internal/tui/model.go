package tui

import (
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	session *Session

	// terminal size in cells
	width  int
	height int

	helpVisible bool

	cam  camera
	home camera

	// inspect popup
	inspectPopup string

	// point table
	showTable bool
	tbl       table.Model
}

func newModel(s *Session) Model {
	m := Model{
		session:     s,
		helpVisible: true,
		// until the terminal reports its size, assume the configured surface fits
		width:  (s.cfg.Width + 1) / 2,
		height: (s.cfg.Height+3)/4 + headerHeight + footerHeight,
	}
	m.home = fitCamera(s.renderable.Store().Bounds())
	m.cam = m.home
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// canvasSize is the cloud viewport in cells: the configured surface clipped to the
// space left between header and footer.
func (m Model) canvasSize() (int, int) {
	w := min((m.session.cfg.Width+1)/2, m.width)
	h := min((m.session.cfg.Height+3)/4, m.height-headerHeight-footerHeight)
	return max(1, w), max(1, h)
}
