package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"configure"},
	Short:   "Configure global settings",
	Long: `Configure global settings interactively.

This allows you to modify:
  - Dashboard output path and title
  - Regeneration interval
  - Default stand-up file name for new projects
  - Claude data directory for activity reports

Press Enter to keep the current value for any setting.`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	// Dashboard output path
	current := settings.Dashboard.OutputPath
	if current == "" {
		if def, err := config.DefaultDashboardFile(); err == nil {
			current = def + " (default)"
		}
	}
	fmt.Printf("Dashboard output path [%s]: ", current)
	if value := readLine(reader); value != "" {
		settings.Dashboard.OutputPath = value
		changed = true
	}

	// Dashboard title
	fmt.Printf("Dashboard title [%s]: ", settings.Dashboard.Title)
	if value := readLine(reader); value != "" && value != settings.Dashboard.Title {
		settings.Dashboard.Title = value
		changed = true
	}

	// Interval
	fmt.Printf("Regeneration interval in minutes [%d]: ", settings.Dashboard.IntervalMinutes)
	if value := readLine(reader); value != "" {
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes <= 0 {
			return fmt.Errorf("invalid interval: %s", value)
		}
		if minutes != settings.Dashboard.IntervalMinutes {
			settings.Dashboard.IntervalMinutes = minutes
			changed = true
		}
	}

	// Default stand-up file
	fmt.Printf("Default stand-up file [%s]: ", settings.Defaults.StandupFile)
	if value := readLine(reader); value != "" && value != settings.Defaults.StandupFile {
		settings.Defaults.StandupFile = value
		changed = true
	}

	// Claude data directory
	claudeDir := settings.Activity.ClaudeDir
	if claudeDir == "" {
		if def, err := config.DefaultClaudeDir(); err == nil {
			claudeDir = def + " (default)"
		}
	}
	fmt.Printf("Claude data directory [%s]: ", claudeDir)
	if value := readLine(reader); value != "" {
		settings.Activity.ClaudeDir = value
		changed = true
	}

	// Theme
	fmt.Printf("Theme (system/light/dark) [%s]: ", settings.Appearance.Theme)
	if value := readLine(reader); value != "" {
		if value != "system" && value != "light" && value != "dark" {
			return fmt.Errorf("invalid theme: %s", value)
		}
		if value != settings.Appearance.Theme {
			settings.Appearance.Theme = value
			changed = true
		}
	}

	if !changed {
		fmt.Println("No changes.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(styleSuccess.Render("Settings saved."))

	if running, info, err := config.IsDaemonRunning(); err == nil && running && info != nil {
		fmt.Println(styleHint.Render("Restart the daemon for interval changes to take effect."))
	}

	return nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
