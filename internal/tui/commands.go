package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/dashboard"
	"github.com/huddle-sh/huddle/internal/models"
	"github.com/huddle-sh/huddle/internal/standup"
)

// loadEntriesCmd re-collects all stand-up entries from disk.
func loadEntriesCmd(projects []models.ProjectEntry) tea.Cmd {
	return func() tea.Msg {
		collector := standup.NewCollector()
		index := &models.ProjectsIndex{Projects: projects}
		return entriesLoadedMsg{entries: collector.CollectFromIndex(index)}
	}
}

// renderReportCmd renders one entry's markdown for the viewport.
func renderReportCmd(entry models.StandupEntry, width int) tea.Cmd {
	return func() tea.Msg {
		body := models.PlaceholderText
		if !entry.Missing() {
			body = entry.Report.Raw
		}
		markdown := fmt.Sprintf("## %s\n\n%s\n", entry.Project, body)

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return errMsg{err: err}
		}

		rendered, err := renderer.Render(markdown)
		if err != nil {
			return errMsg{err: err}
		}

		return reportRenderedMsg{project: entry.Project, rendered: rendered}
	}
}

// writeDashboardCmd performs a one-shot generation from the TUI.
func writeDashboardCmd(entries []models.StandupEntry) tea.Cmd {
	return func() tea.Msg {
		settings, err := config.LoadSettings()
		if err != nil {
			return errMsg{err: err}
		}
		path, err := config.DashboardPath(settings)
		if err != nil {
			return errMsg{err: err}
		}

		content := dashboard.NewRenderer(settings).Render(entries, time.Now().UTC())
		written, err := dashboard.WriteIfChanged(path, content)
		if err != nil {
			return errMsg{err: err}
		}

		return dashboardWrittenMsg{path: path, written: written}
	}
}
