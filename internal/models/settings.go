package models

// DashboardConfig holds settings for the generated dashboard file.
type DashboardConfig struct {
	OutputPath      string `yaml:"output_path"` // empty = ~/.huddle/DASHBOARD.md
	Title           string `yaml:"title"`
	IntervalMinutes int    `yaml:"interval_minutes"`
}

// DefaultsConfig holds default settings for newly added projects.
type DefaultsConfig struct {
	StandupFile string `yaml:"standup_file"`
}

// ActivityConfig holds settings for Claude Code activity reports.
type ActivityConfig struct {
	ClaudeDir string `yaml:"claude_dir"` // empty = ~/.claude
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	Theme string `yaml:"theme"` // "system" | "light" | "dark"
}

// Settings represents global application settings.
// This corresponds to ~/.huddle/settings.yaml.
type Settings struct {
	Version    int              `yaml:"version"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
	Activity   ActivityConfig   `yaml:"activity"`
	Appearance AppearanceConfig `yaml:"appearance"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Dashboard: DashboardConfig{
			OutputPath:      "",
			Title:           "Stand-up Dashboard",
			IntervalMinutes: 30,
		},
		Defaults: DefaultsConfig{
			StandupFile: DefaultStandupFile,
		},
		Activity: ActivityConfig{
			ClaudeDir: "",
		},
		Appearance: AppearanceConfig{
			Theme: "system",
		},
	}
}
