package cli

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/huddle-sh/huddle/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the Huddle daemon",
	Long:  `Manage the huddled process that regenerates the dashboard on a schedule.`,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	RunE:  runDaemonStatus,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the daemon",
	RunE:  runDaemonStart,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the daemon",
	RunE:  runDaemonStop,
}

func init() {
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
	daemonCmd.AddCommand(daemonStopCmd)
}

func runDaemonStart(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if running && info != nil {
		fmt.Printf("Daemon is already running (PID %d, port %d).\n", info.PID, info.Port)
		return nil
	}

	// Clean up stale daemon info if it exists
	if info != nil {
		_ = config.RemoveDaemonInfo()
	}

	fmt.Print("Starting daemon...")
	if startErr := startDaemon(); startErr != nil {
		fmt.Println()
		return startErr
	}

	// Fetch fresh status to display
	_, freshInfo, err := GetDaemonStatus()
	if err != nil || freshInfo == nil {
		fmt.Println(" started.")
		return nil
	}

	fmt.Printf(" started (PID %d, port %d).\n", freshInfo.PID, freshInfo.Port)
	return nil
}

func runDaemonStatus(cmd *cobra.Command, args []string) error {
	running, info, err := GetDaemonStatus()
	if err != nil {
		return err
	}

	if !running || info == nil {
		fmt.Println("Daemon is not running.")
		fmt.Println(styleHint.Render("Start it with 'huddle daemon start'."))
		return nil
	}

	fmt.Println(styleBrand.Render("Huddle daemon"))
	fmt.Printf("  %s %s\n", styleLabel.Render("Status:"), styleSuccess.Render("running"))
	fmt.Printf("  %s %d\n", styleLabel.Render("PID:"), info.PID)
	fmt.Printf("  %s %d\n", styleLabel.Render("Port:"), info.Port)
	fmt.Printf("  %s %s\n", styleLabel.Render("Started:"), info.StartedAt.Local().Format(time.RFC1123))
	if info.AppVersion != "" {
		fmt.Printf("  %s %s\n", styleLabel.Render("Version:"), info.AppVersion)
	}

	// The newest run log tells us when the dashboard was last generated
	runs, err := config.ListRunLogs()
	if err == nil && len(runs) > 0 {
		last := runs[0]
		fmt.Printf("  %s %s (%s, %d projects, %d missing)\n",
			styleLabel.Render("Last run:"), last.EndedAt, last.Trigger, last.Projects, last.Missing)
	}

	return nil
}

func runDaemonStop(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if !running || info == nil {
		fmt.Println("Daemon is not running.")
		return nil
	}

	process, err := os.FindProcess(info.PID)
	if err != nil {
		return fmt.Errorf("failed to find daemon process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to stop daemon: %w", err)
	}

	// Wait for it to exit (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		stillRunning, _, err := config.IsDaemonRunning()
		if err == nil && !stillRunning {
			fmt.Printf("Daemon stopped (was PID %d).\n", info.PID)
			return nil
		}
	}

	return fmt.Errorf("daemon did not stop within timeout")
}
