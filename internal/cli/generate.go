package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/dashboard"
	"github.com/huddle-sh/huddle/internal/standup"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Regenerate the dashboard once",
	Long: `Collect all tracked stand-up files and rewrite the dashboard.

The write is skipped when nothing changed since the last generation, so
repeated runs with unchanged stand-ups leave the file untouched.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	outputPath, err := config.DashboardPath(settings)
	if err != nil {
		return err
	}

	entries, err := standup.NewCollector().Collect()
	if err != nil {
		return fmt.Errorf("failed to collect stand-ups: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No projects tracked. Run 'huddle add <path>' to add one.")
		return nil
	}

	renderer := dashboard.NewRenderer(settings)
	content := renderer.Render(entries, time.Now().UTC())

	written, err := dashboard.WriteIfChanged(outputPath, content)
	if err != nil {
		return err
	}

	missing := 0
	for _, e := range entries {
		if e.Missing() {
			missing++
		}
	}

	if written {
		fmt.Println(styleSuccess.Render(
			fmt.Sprintf("Dashboard written: %s (%d projects, %d missing)", outputPath, len(entries), missing)))
	} else {
		fmt.Println(styleHint.Render(
			fmt.Sprintf("Dashboard unchanged: %s (%d projects, %d missing)", outputPath, len(entries), missing)))
	}

	return nil
}
