package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderProjectList renders the left panel: one line per tracked project
// with a freshness marker.
func (m Model) renderProjectList() string {
	width := m.listWidth()
	height := m.panelHeight()

	border := unfocusedBorderStyle
	if m.focusedPanel == focusList {
		border = focusedBorderStyle
	}

	innerWidth := width - 2
	innerHeight := height - 2

	if len(m.entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(colorDim).Render("Loading stand-ups...")
		return border.Width(innerWidth).Height(innerHeight).Render(empty)
	}

	lines := make([]string, 0, len(m.entries))
	for i, entry := range m.entries {
		marker, style := entryMarker(entry.Missing(), entry.ModTime)
		line := fmt.Sprintf("%s %s", marker, entry.Project)

		maxWidth := innerWidth - 1
		if maxWidth > 0 {
			line = ansi.Truncate(line, maxWidth, "…")
		}

		line = style.Render(line)
		if i == m.selected {
			line = selectedItemStyle.Render("▸" + line)
		} else {
			line = " " + line
		}
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return border.Width(innerWidth).Height(innerHeight).Render(content)
}

// entryMarker picks the list marker and style for an entry: green for a
// stand-up touched within 24 hours, yellow for older, dim when missing.
func entryMarker(missing bool, modTime time.Time) (string, lipgloss.Style) {
	if missing {
		return "○", projectMissingStyle
	}
	if time.Since(modTime) < 24*time.Hour {
		return "●", projectFreshStyle
	}
	return "●", projectStaleStyle
}

// renderReportView renders the right panel with the glamour-rendered
// stand-up of the selected project.
func (m Model) renderReportView() string {
	border := unfocusedBorderStyle
	if m.focusedPanel == focusView {
		border = focusedBorderStyle
	}
	return border.Render(m.viewport.View())
}
