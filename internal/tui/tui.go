// Package tui implements the interactive stand-up dashboard for Huddle.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/huddle-sh/huddle/internal/config"
)

// Run launches the TUI.
func Run() error {
	index, err := config.LoadProjectsIndex()
	if err != nil {
		return fmt.Errorf("failed to load project registry: %w", err)
	}
	if len(index.Projects) == 0 {
		return fmt.Errorf("no projects tracked. Run 'huddle add <path>' first")
	}

	model := NewModel(index.Projects)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
