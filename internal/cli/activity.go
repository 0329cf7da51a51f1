package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/activity"
	"github.com/huddle-sh/huddle/internal/config"
)

var (
	activitySince     string
	activityJSON      bool
	activityClaudeDir string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show Claude Code session activity per project",
	Long: `Show Claude Code session activity aggregated per project.

Reads the JSONL session logs under the Claude data directory and reports
message counts, token usage, and estimated cost for each project.

--since accepts: today, yesterday, week, month, an ISO date, or a number
of days.`,
	RunE: runActivity,
}

func init() {
	activityCmd.Flags().StringVar(&activitySince, "since", "today",
		"Show sessions since: yesterday, today, week, month, ISO date, or days")
	activityCmd.Flags().BoolVar(&activityJSON, "json", false, "Output as JSON")
	activityCmd.Flags().StringVar(&activityClaudeDir, "claude-dir", "",
		"Path to the Claude data directory (default ~/.claude)")
}

func runActivity(cmd *cobra.Command, args []string) error {
	since, err := activity.ParseSince(activitySince, time.Now())
	if err != nil {
		return err
	}

	claudeDir := activityClaudeDir
	if claudeDir == "" {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		claudeDir, err = config.ClaudeDir(settings)
		if err != nil {
			return err
		}
	}

	report, err := activity.BuildReport(claudeDir, since)
	if err != nil {
		return err
	}

	if activityJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Print(report.Format())
	return nil
}
