package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.session
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.SetHeight(max(3, min(20, m.height-headerHeight-footerHeight-4)))
	case tea.KeyMsg:
		key := msg.String()
		s.onKey(s, key)
		switch key {
		case "ctrl+c", "q", "esc":
			if m.showTable && key == "esc" {
				m.showTable = false
				return m, nil
			}
			return m, tea.Quit
		}
		// table keeps arrow keys while open
		if m.showTable {
			if key == "t" {
				m.showTable = false
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch key {
		case "left":
			m.cam.orbit(-orbitStep, 0)
		case "right":
			m.cam.orbit(orbitStep, 0)
		case "up":
			m.cam.orbit(0, -orbitStep)
		case "down":
			m.cam.orbit(0, orbitStep)
		case "a":
			m.cam.pan(panStep, 0)
		case "d":
			m.cam.pan(-panStep, 0)
		case "w":
			m.cam.pan(0, -panStep)
		case "s":
			m.cam.pan(0, panStep)
		case "+", "=":
			m.cam.zoomBy(zoomStep)
		case "-", "_":
			m.cam.zoomBy(1 / zoomStep)
		case "r":
			m.cam = m.home
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showTable = true
			m.inspectPopup = ""
			m.refreshTable()
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
			} else {
				m.inspectPopup = m.inspect()
			}
		case "p":
			m.saveSnapshot()
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.cam.zoomBy(zoomStep)
		case tea.MouseButtonWheelDown:
			m.cam.zoomBy(1 / zoomStep)
		}
	}
	return m, nil
}

func (m Model) saveSnapshot() {
	s := m.session
	path := s.cfg.SnapshotPath
	if path == "" {
		s.SetStatus("snapshot: no path configured")
		return
	}
	img := snapshot(s.renderable, m.cam, s.cfg.Width, s.cfg.Height, s.cfg.Background)
	if err := gg.SavePNG(path, img); err != nil {
		s.logger.Warnw("snapshot failed", "path", path, "error", err)
		s.SetStatus("snapshot error: " + err.Error())
		return
	}
	s.logger.Infow("snapshot written", "path", path)
	s.SetStatus(fmt.Sprintf("snapshot: %s", path))
}
