package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	// Error display
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	// Transient status from the last action
	if m.statusMsg != "" {
		return renderNoticeBar(m.statusMsg, width)
	}

	left := " " + getKeyHints(m)
	right := fmt.Sprintf("%d projects ", len(m.entries))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	base := keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " + keyHint("Tab", "switch")

	if m.focusedPanel == focusList {
		return base + "  " + keyHint("j/k", "navigate") + "  " +
			keyHint("r", "reload") + "  " + keyHint("g", "write dashboard")
	}

	return base + "  " + keyHint("j/k", "scroll") + "  " + keyHint("PgUp/PgDn", "page")
}

func keyHint(k, desc string) string {
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderNoticeBar(msg string, width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(msg))
}
