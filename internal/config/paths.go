// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global Huddle directory.
	GlobalDirName = ".huddle"

	// LogsDirName is the name of the generation logs directory.
	LogsDirName = "logs"
)

// File names
const (
	DaemonFileName    = "daemon.yaml"
	ProjectsFileName  = "projects.yaml"
	SettingsFileName  = "settings.yaml"
	DashboardFileName = "DASHBOARD.md"
)

// GlobalDir returns the path to the global Huddle directory (~/.huddle/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// GlobalProjectsFile returns the path to the projects.yaml registry.
func GlobalProjectsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProjectsFileName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogsDir returns the path to the generation logs directory.
func GlobalLogsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// DefaultDashboardFile returns the default dashboard output path
// (~/.huddle/DASHBOARD.md). Settings may override it.
func DefaultDashboardFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DashboardFileName), nil
}

// DefaultClaudeDir returns the default Claude Code data directory
// (~/.claude). Settings may override it.
func DefaultClaudeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude"), nil
}

// EnsureGlobalDir creates the global Huddle directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// EnsureGlobalLogsDir creates the generation logs directory if it doesn't exist.
func EnsureGlobalLogsDir() error {
	dir, err := GlobalLogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
