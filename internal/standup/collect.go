package standup

import (
	"os"
	"strings"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/models"
)

// Collector gathers stand-up entries for all registered projects.
type Collector struct{}

// NewCollector creates a new collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect loads the project registry and returns one entry per tracked
// project, in registry order.
func (c *Collector) Collect() ([]models.StandupEntry, error) {
	index, err := config.LoadProjectsIndex()
	if err != nil {
		return nil, err
	}
	return c.CollectFromIndex(index), nil
}

// CollectFromIndex returns one entry per project in the given registry,
// preserving registry order. A project whose stand-up file is missing or
// unreadable gets a sentinel entry; collection itself never fails.
func (c *Collector) CollectFromIndex(index *models.ProjectsIndex) []models.StandupEntry {
	entries := make([]models.StandupEntry, 0, len(index.Projects))
	for _, p := range index.Projects {
		entries = append(entries, LoadEntry(p))
	}
	return entries
}

// LoadEntry reads and parses one project's stand-up file.
func LoadEntry(project models.ProjectEntry) models.StandupEntry {
	entry := models.StandupEntry{Project: project.Name}

	path := project.StandupPath()
	info, err := os.Stat(path)
	if err != nil {
		return entry
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return entry
	}

	body := strings.TrimSpace(string(data))
	if body == "" {
		// An empty file counts as no stand-up
		return entry
	}

	entry.Report = Parse(string(data))
	entry.ModTime = info.ModTime()
	return entry
}
