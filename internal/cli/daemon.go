package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/models"
)

// EnsureDaemon makes sure the daemon is running, starting it if necessary.
func EnsureDaemon() error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if running {
		return nil
	}

	// Clean up stale daemon info if it exists
	if info != nil {
		_ = config.RemoveDaemonInfo()
	}

	// Start daemon in background
	return startDaemon()
}

// startDaemon starts the daemon process in the background.
func startDaemon() error {
	daemonPath, err := findDaemonBinary()
	if err != nil {
		return err
	}

	cmd := exec.Command(daemonPath)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	// Wait for daemon to be ready (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		running, _, err := config.IsDaemonRunning()
		if err == nil && running {
			return nil
		}
	}

	return fmt.Errorf("daemon failed to start within timeout")
}

// findDaemonBinary locates the huddled binary: PATH, then next to the
// huddle binary itself, then the local build directory.
func findDaemonBinary() (string, error) {
	if path, err := exec.LookPath("huddled"); err == nil {
		return path, nil
	}

	if execPath, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(execPath), "huddled")
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}

	if _, err := os.Stat("./build/huddled"); err == nil {
		return "./build/huddled", nil
	}

	return "", fmt.Errorf("huddled not found. Install or build it first")
}

// GetDaemonStatus returns whether the daemon is running and its saved
// connection info.
func GetDaemonStatus() (bool, *models.DaemonInfo, error) {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return false, nil, err
	}
	if !running {
		return false, nil, nil
	}
	return true, info, nil
}
