package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := m.session
	s.frames++

	contentWidth := max(10, m.width)
	contentHeight := max(4, m.height-headerHeight-footerHeight)

	// Header
	header := titleStyle.Render(" " + s.cfg.Title + " ")
	header = lipgloss.NewStyle().Width(contentWidth).MaxHeight(headerHeight).Render(header)

	// Cloud viewport
	var body string
	if m.showTable {
		box := boxStyle.Render(m.tbl.View())
		body = lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, box)
	} else {
		w, h := m.canvasSize()
		canvas := m.renderCloud(w, h)
		if m.inspectPopup != "" {
			popup := boxStyle.MaxWidth(min(56, contentWidth)).Render(m.inspectPopup)
			canvas = lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", popup)
		}
		body = lipgloss.NewStyle().Width(contentWidth).Height(contentHeight).MaxHeight(contentHeight).Render(canvas)
	}

	// Footer / help
	status := dimStyle.Render(" " + s.status + " ")
	counts := dimStyle.Render(fmt.Sprintf(" %d pts  zoom %.2fx ", s.renderable.Len(), m.cam.zoom))
	line1 := lipgloss.JoinHorizontal(lipgloss.Bottom, status, counts)
	footer := lipgloss.NewStyle().Width(contentWidth).MaxHeight(footerHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, line1, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).MaxHeight(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ orbit",
		"wasd pan",
		"+/- zoom",
		"r reset",
		"i inspect",
		"t table",
		"p snapshot",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
