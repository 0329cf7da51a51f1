package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/models"
	"github.com/huddle-sh/huddle/internal/standup"
)

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Track a repository on the dashboard",
	Long: `Track a repository on the dashboard.

The repository itself is never modified; Huddle only reads its stand-up
file (STANDUP.md by default). Re-adding a tracked path updates its entry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove <name|id>",
	Short: "Stop tracking a repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tracked projects and stand-up freshness",
	RunE:    runList,
}

func runAdd(cmd *cobra.Command, args []string) error {
	path, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	if len(args) > 0 {
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path not accessible: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	// Prompt for project name
	defaultName := filepath.Base(path)
	fmt.Printf("Project name [%s]: ", defaultName)
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}

	// Prompt for stand-up file
	defaultFile := settings.Defaults.StandupFile
	if defaultFile == "" {
		defaultFile = models.DefaultStandupFile
	}
	fmt.Printf("Stand-up file [%s]: ", defaultFile)
	standupFile, _ := reader.ReadString('\n')
	standupFile = strings.TrimSpace(standupFile)
	if standupFile == "" {
		standupFile = defaultFile
	}

	if err := config.RegisterProject(uuid.New().String(), name, path, standupFile); err != nil {
		return fmt.Errorf("failed to register project: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Tracking '%s'.", name)))
	if !config.FileExists(filepath.Join(path, standupFile)) {
		fmt.Println(styleWarning.Render(
			fmt.Sprintf("Note: %s does not exist yet; the dashboard will show the placeholder.", standupFile)))
	}
	fmt.Println(styleHint.Render("Run 'huddle generate' to regenerate the dashboard."))

	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	index, err := config.LoadProjectsIndex()
	if err != nil {
		return err
	}

	entry := index.FindProject(args[0])
	if entry == nil {
		entry = index.FindProjectByName(args[0])
	}
	if entry == nil {
		return fmt.Errorf("project not found: %s", args[0])
	}

	name := entry.Name
	if err := config.UnregisterProject(entry.ProjectID); err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Stopped tracking '%s'.", name)))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	index, err := config.LoadProjectsIndex()
	if err != nil {
		return err
	}

	if len(index.Projects) == 0 {
		fmt.Println("No projects tracked. Run 'huddle add <path>' to add one.")
		return nil
	}

	for _, p := range index.Projects {
		entry := standup.LoadEntry(p)
		fmt.Printf("%2d. %s %s\n", p.Position, freshnessBadge(entry), styleValue.Render(p.Name))
		fmt.Printf("    %s\n", styleLabel.Render(p.StandupPath()))
	}

	return nil
}

// freshnessBadge renders a colored freshness marker for a stand-up entry.
func freshnessBadge(entry models.StandupEntry) string {
	switch {
	case entry.Missing():
		return badgeMissing.Render("∅ missing")
	case time.Since(entry.ModTime) < 24*time.Hour:
		return badgeFresh.Render("● fresh  ")
	default:
		return badgeStale.Render("● stale  ")
	}
}
