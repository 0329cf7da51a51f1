package standup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huddle-sh/huddle/internal/models"
)

func writeStandup(t *testing.T, dir, file, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, file), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEntry(t *testing.T) {
	dir := t.TempDir()
	writeStandup(t, dir, "STANDUP.md", "## What was done\n- shipped it\n")

	tests := []struct {
		name        string
		project     models.ProjectEntry
		wantMissing bool
	}{
		{
			name:        "existing stand-up",
			project:     models.ProjectEntry{Name: "api", Path: dir},
			wantMissing: false,
		},
		{
			name:        "missing file",
			project:     models.ProjectEntry{Name: "web", Path: dir, StandupFile: "NOTES.md"},
			wantMissing: true,
		},
		{
			name:        "missing directory",
			project:     models.ProjectEntry{Name: "gone", Path: filepath.Join(dir, "nope")},
			wantMissing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := LoadEntry(tt.project)
			if entry.Project != tt.project.Name {
				t.Errorf("Project = %q, want %q", entry.Project, tt.project.Name)
			}
			if entry.Missing() != tt.wantMissing {
				t.Errorf("Missing() = %v, want %v", entry.Missing(), tt.wantMissing)
			}
			if !tt.wantMissing && entry.ModTime.IsZero() {
				t.Error("ModTime is zero for an existing stand-up")
			}
		})
	}
}

func TestLoadEntryEmptyFileIsMissing(t *testing.T) {
	dir := t.TempDir()
	writeStandup(t, dir, "STANDUP.md", "  \n\n")

	entry := LoadEntry(models.ProjectEntry{Name: "api", Path: dir})
	if !entry.Missing() {
		t.Error("blank stand-up file should count as missing")
	}
}

func TestCollectFromIndexOrderAndCompleteness(t *testing.T) {
	dir := t.TempDir()
	writeStandup(t, dir, "STANDUP.md", "## What was done\n- x\n")

	index := &models.ProjectsIndex{
		Projects: []models.ProjectEntry{
			{Name: "zeta", Path: dir},
			{Name: "alpha", Path: filepath.Join(dir, "missing")},
			{Name: "mid", Path: dir},
		},
	}

	entries := NewCollector().CollectFromIndex(index)

	if len(entries) != len(index.Projects) {
		t.Fatalf("got %d entries, want %d (one per project)", len(entries), len(index.Projects))
	}
	for i, e := range entries {
		if e.Project != index.Projects[i].Name {
			t.Errorf("entries[%d].Project = %q, want %q (registry order)", i, e.Project, index.Projects[i].Name)
		}
	}
	if entries[1].Missing() != true {
		t.Error("project without a stand-up file should yield a missing entry, not be skipped")
	}
}
