package models

import (
	"path/filepath"
	"testing"
)

func TestStandupPath(t *testing.T) {
	tests := []struct {
		name  string
		entry ProjectEntry
		want  string
	}{
		{
			name:  "default file",
			entry: ProjectEntry{Path: "/home/dev/api"},
			want:  filepath.Join("/home/dev/api", DefaultStandupFile),
		},
		{
			name:  "custom file",
			entry: ProjectEntry{Path: "/home/dev/api", StandupFile: "docs/STANDUP.md"},
			want:  "/home/dev/api/docs/STANDUP.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.StandupPath(); got != tt.want {
				t.Errorf("StandupPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddProjectAssignsPositions(t *testing.T) {
	idx := NewProjectsIndex()
	idx.AddProject(ProjectEntry{ProjectID: "a", Name: "api"})
	idx.AddProject(ProjectEntry{ProjectID: "b", Name: "web"})
	idx.AddProject(ProjectEntry{ProjectID: "c", Name: "infra"})

	for i, p := range idx.Projects {
		if p.Position != i+1 {
			t.Errorf("Projects[%d].Position = %d, want %d", i, p.Position, i+1)
		}
	}
}

func TestRemoveProjectClosesGap(t *testing.T) {
	idx := NewProjectsIndex()
	idx.AddProject(ProjectEntry{ProjectID: "a", Name: "api"})
	idx.AddProject(ProjectEntry{ProjectID: "b", Name: "web"})
	idx.AddProject(ProjectEntry{ProjectID: "c", Name: "infra"})

	if !idx.RemoveProject("b") {
		t.Fatal("RemoveProject returned false for existing project")
	}
	if idx.RemoveProject("b") {
		t.Error("RemoveProject returned true for already removed project")
	}

	if len(idx.Projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(idx.Projects))
	}
	wantOrder := []string{"api", "infra"}
	for i, p := range idx.Projects {
		if p.Name != wantOrder[i] {
			t.Errorf("Projects[%d].Name = %q, want %q", i, p.Name, wantOrder[i])
		}
		if p.Position != i+1 {
			t.Errorf("Projects[%d].Position = %d, want %d after removal", i, p.Position, i+1)
		}
	}
}

func TestFindProject(t *testing.T) {
	idx := NewProjectsIndex()
	idx.AddProject(ProjectEntry{ProjectID: "a", Name: "api", Path: "/src/api"})

	if p := idx.FindProject("a"); p == nil || p.Name != "api" {
		t.Errorf("FindProject(a) = %v", p)
	}
	if p := idx.FindProjectByName("api"); p == nil || p.ProjectID != "a" {
		t.Errorf("FindProjectByName(api) = %v", p)
	}
	if p := idx.FindProjectByPath("/src/api"); p == nil || p.ProjectID != "a" {
		t.Errorf("FindProjectByPath(/src/api) = %v", p)
	}
	if p := idx.FindProject("nope"); p != nil {
		t.Errorf("FindProject(nope) = %v, want nil", p)
	}
}
