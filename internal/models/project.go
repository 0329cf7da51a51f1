// Package models contains shared data structures used across the application.
package models

import (
	"path/filepath"
	"time"
)

// DefaultStandupFile is the stand-up snippet location used when a project
// entry doesn't override it.
const DefaultStandupFile = "STANDUP.md"

// ProjectEntry represents one tracked repository in the global projects.yaml
// registry. Huddle never writes into the repository itself; everything it
// needs to know about a project lives here.
type ProjectEntry struct {
	ProjectID   string    `yaml:"project_id"`
	Name        string    `yaml:"name"`
	Path        string    `yaml:"path"`
	StandupFile string    `yaml:"standup_file,omitempty"` // relative to Path, default STANDUP.md
	Position    int       `yaml:"position"`
	AddedAt     time.Time `yaml:"added_at"`
}

// StandupPath returns the absolute path of the project's stand-up file.
func (e *ProjectEntry) StandupPath() string {
	file := e.StandupFile
	if file == "" {
		file = DefaultStandupFile
	}
	return filepath.Join(e.Path, file)
}

// ProjectsIndex represents the global projects.yaml registry. The order of
// Projects (tracked via Position) is the order entries appear on the
// dashboard.
type ProjectsIndex struct {
	Version  int            `yaml:"version"`
	Projects []ProjectEntry `yaml:"projects"`
}

// NewProjectsIndex creates a new empty projects index.
func NewProjectsIndex() *ProjectsIndex {
	return &ProjectsIndex{
		Version:  1,
		Projects: []ProjectEntry{},
	}
}

// AddProject appends a project to the end of the registry.
func (idx *ProjectsIndex) AddProject(entry ProjectEntry) {
	entry.Position = len(idx.Projects) + 1
	idx.Projects = append(idx.Projects, entry)
}

// RemoveProject removes a project from the registry by ID and closes the
// gap in positions.
func (idx *ProjectsIndex) RemoveProject(projectID string) bool {
	for i, p := range idx.Projects {
		if p.ProjectID == projectID {
			idx.Projects = append(idx.Projects[:i], idx.Projects[i+1:]...)
			for j := i; j < len(idx.Projects); j++ {
				idx.Projects[j].Position = j + 1
			}
			return true
		}
	}
	return false
}

// FindProject finds a project by ID.
func (idx *ProjectsIndex) FindProject(projectID string) *ProjectEntry {
	for i := range idx.Projects {
		if idx.Projects[i].ProjectID == projectID {
			return &idx.Projects[i]
		}
	}
	return nil
}

// FindProjectByName finds a project by its display name.
func (idx *ProjectsIndex) FindProjectByName(name string) *ProjectEntry {
	for i := range idx.Projects {
		if idx.Projects[i].Name == name {
			return &idx.Projects[i]
		}
	}
	return nil
}

// FindProjectByPath finds a project by filesystem path.
func (idx *ProjectsIndex) FindProjectByPath(path string) *ProjectEntry {
	for i := range idx.Projects {
		if idx.Projects[i].Path == path {
			return &idx.Projects[i]
		}
	}
	return nil
}
