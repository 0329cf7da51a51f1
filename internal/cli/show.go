package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/models"
	"github.com/huddle-sh/huddle/internal/standup"
)

var showCmd = &cobra.Command{
	Use:   "show [project]",
	Short: "Render a stand-up (or the whole dashboard) in the terminal",
	Long: `Render a project's stand-up in the terminal.

Without arguments, renders the generated dashboard file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	var markdown string

	if len(args) == 0 {
		path, err := config.DashboardPath(settings)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("dashboard not generated yet, run 'huddle generate' first: %w", err)
		}
		markdown = string(data)
	} else {
		index, err := config.LoadProjectsIndex()
		if err != nil {
			return err
		}
		project := index.FindProjectByName(args[0])
		if project == nil {
			project = index.FindProject(args[0])
		}
		if project == nil {
			return fmt.Errorf("project not found: %s", args[0])
		}

		entry := standup.LoadEntry(*project)
		if entry.Missing() {
			markdown = fmt.Sprintf("## %s\n\n%s\n", project.Name, models.PlaceholderText)
		} else {
			markdown = fmt.Sprintf("## %s\n\n%s\n", project.Name, entry.Report.Raw)
		}
	}

	style := glamour.WithAutoStyle()
	switch settings.Appearance.Theme {
	case "light":
		style = glamour.WithStandardStyle("light")
	case "dark":
		style = glamour.WithStandardStyle("dark")
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	fmt.Print(out)
	return nil
}
