package config

import (
	"time"

	"github.com/huddle-sh/huddle/internal/models"
)

// LoadProjectsIndex loads the project registry from ~/.huddle/projects.yaml.
// If the file doesn't exist, returns an empty registry.
func LoadProjectsIndex() (*models.ProjectsIndex, error) {
	path, err := GlobalProjectsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewProjectsIndex)
}

// SaveProjectsIndex saves the project registry to ~/.huddle/projects.yaml.
func SaveProjectsIndex(index *models.ProjectsIndex) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalProjectsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, index)
}

// RegisterProject adds a project to the registry. Re-registering an existing
// path updates its name and stand-up file in place, keeping its position.
func RegisterProject(projectID, name, path, standupFile string) error {
	index, err := LoadProjectsIndex()
	if err != nil {
		return err
	}

	if existing := index.FindProjectByPath(path); existing != nil {
		existing.Name = name
		existing.StandupFile = standupFile
		return SaveProjectsIndex(index)
	}

	index.AddProject(models.ProjectEntry{
		ProjectID:   projectID,
		Name:        name,
		Path:        path,
		StandupFile: standupFile,
		AddedAt:     time.Now().UTC(),
	})

	return SaveProjectsIndex(index)
}

// UnregisterProject removes a project from the registry. The repository
// itself is never touched.
func UnregisterProject(projectID string) error {
	index, err := LoadProjectsIndex()
	if err != nil {
		return err
	}

	if !index.RemoveProject(projectID) {
		return nil // Not found, nothing to do
	}

	return SaveProjectsIndex(index)
}
