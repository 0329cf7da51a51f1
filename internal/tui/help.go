package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"q / Ctrl+c", "Quit"},
			{"?", "Toggle help"},
			{"Tab", "Switch panel focus"},
			{"r", "Reload stand-ups from disk"},
			{"g", "Write the dashboard file"},
		},
	},
	{
		title: "Projects",
		keys: []helpKey{
			{"j/k ↑/↓", "Select project"},
		},
	},
	{
		title: "Report",
		keys: []helpKey{
			{"j/k ↑/↓", "Scroll"},
			{"PgUp/PgDn", "Half page up/down"},
			{"Home/End", "Top / bottom"},
		},
	},
}

// renderHelpOverlay renders the full-screen help view.
func (m Model) renderHelpOverlay() string {
	maxWidth := 50
	if m.width-4 < maxWidth {
		maxWidth = m.width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*6+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press any key to close"))

	content := strings.Join(sections, "\n")
	box := overlayStyle.Width(maxWidth).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
