package cli

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/config"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Ask the running daemon to regenerate the dashboard now",
	Long: `Signal the running daemon to regenerate the dashboard immediately
instead of waiting for the next scheduled run.`,
	RunE: runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}
	if !running || info == nil {
		fmt.Println("Daemon is not running; generating directly instead.")
		return runGenerate(cmd, args)
	}

	process, err := os.FindProcess(info.PID)
	if err != nil {
		return fmt.Errorf("failed to find daemon process: %w", err)
	}

	// SIGHUP is the daemon's regenerate-now signal
	if err := process.Signal(syscall.SIGHUP); err != nil {
		return fmt.Errorf("failed to signal daemon: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Refresh requested (daemon PID %d).", info.PID)))
	return nil
}
