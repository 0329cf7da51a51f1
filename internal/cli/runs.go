package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/config"
)

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "List generation runs, or show one run's detail",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		run, body, err := config.ReadRunLog(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", styleBrand.Render("Run"), run.RunID)
		fmt.Printf("  %s %s\n", styleLabel.Render("Trigger:"), run.Trigger)
		fmt.Printf("  %s %s → %s\n", styleLabel.Render("Window:"), run.StartedAt, run.EndedAt)
		fmt.Printf("  %s %d projects, %d missing, written=%t\n",
			styleLabel.Render("Result:"), run.Projects, run.Missing, run.Written)
		fmt.Printf("  %s %s\n", styleLabel.Render("Status:"), run.Status)
		if body != "" {
			fmt.Println()
			fmt.Println(body)
		}
		return nil
	}

	runs, err := config.ListRunLogs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No generation runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		status := styleSuccess.Render("ok")
		if run.Status != "ok" {
			status = styleError.Render(run.Status)
		}
		fmt.Printf("%s  %-8s  %2d projects  %2d missing  written=%-5t  %s\n",
			run.StartedAt, run.Trigger, run.Projects, run.Missing, run.Written, status)
	}

	return nil
}
