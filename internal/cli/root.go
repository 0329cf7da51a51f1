// Package cli implements the huddle CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "huddle",
	Short: "Aggregate project stand-up reports into one dashboard",
	Long: `Huddle collects per-project stand-up snippets from your repositories
and aggregates them into a single markdown dashboard, regenerated on a
schedule by the huddled daemon.

Run without arguments to open the interactive dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Keep the dashboard fresh while the TUI is open
		if err := EnsureDaemon(); err != nil {
			fmt.Println(styleWarning.Render("Note: daemon not running: " + err.Error()))
		}
		return tui.Run()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}
