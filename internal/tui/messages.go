package tui

import "github.com/huddle-sh/huddle/internal/models"

// entriesLoadedMsg carries freshly collected stand-up entries.
type entriesLoadedMsg struct {
	entries []models.StandupEntry
}

// reportRenderedMsg carries a glamour-rendered stand-up for the viewport.
type reportRenderedMsg struct {
	project  string
	rendered string
}

// dashboardWrittenMsg reports the outcome of a manual generation.
type dashboardWrittenMsg struct {
	path    string
	written bool
}

// errMsg carries a background error for the status bar.
type errMsg struct {
	err error
}
