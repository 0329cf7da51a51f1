package config

import (
	"github.com/huddle-sh/huddle/internal/models"
)

// LoadSettings loads the global settings from ~/.huddle/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.huddle/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// DashboardPath resolves the dashboard output path from settings, falling
// back to ~/.huddle/DASHBOARD.md.
func DashboardPath(settings *models.Settings) (string, error) {
	if settings != nil && settings.Dashboard.OutputPath != "" {
		return settings.Dashboard.OutputPath, nil
	}
	return DefaultDashboardFile()
}

// ClaudeDir resolves the Claude Code data directory from settings, falling
// back to ~/.claude.
func ClaudeDir(settings *models.Settings) (string, error) {
	if settings != nil && settings.Activity.ClaudeDir != "" {
		return settings.Activity.ClaudeDir, nil
	}
	return DefaultClaudeDir()
}
