package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huddle-sh/huddle/internal/models"
	"github.com/huddle-sh/huddle/internal/standup"
)

func testRenderer() Renderer {
	return NewRenderer(models.NewSettings())
}

func sampleEntries() []models.StandupEntry {
	return []models.StandupEntry{
		{
			Project: "api",
			Report:  standup.Parse("## What was done\n- shipped v2\n"),
			ModTime: time.Now(),
		},
		{Project: "web"},
		{
			Project: "infra",
			Report:  standup.Parse("## Blockers or dependencies\n- DNS change pending\n"),
			ModTime: time.Now(),
		},
	}
}

func TestRenderOneSectionPerProject(t *testing.T) {
	out := testRenderer().Render(sampleEntries(), time.Now())

	for _, name := range []string{"api", "web", "infra"} {
		if got := strings.Count(out, "\n## "+name+"\n"); got != 1 {
			t.Errorf("project %q appears %d times, want exactly 1", name, got)
		}
	}
}

func TestRenderPreservesRegistryOrder(t *testing.T) {
	out := testRenderer().Render(sampleEntries(), time.Now())

	api := strings.Index(out, "## api")
	web := strings.Index(out, "## web")
	infra := strings.Index(out, "## infra")
	if api == -1 || web == -1 || infra == -1 {
		t.Fatalf("missing project headings in output:\n%s", out)
	}
	if !(api < web && web < infra) {
		t.Errorf("sections out of order: api=%d web=%d infra=%d", api, web, infra)
	}
}

func TestRenderPlaceholderForMissing(t *testing.T) {
	out := testRenderer().Render(sampleEntries(), time.Now())

	webSection := out[strings.Index(out, "## web"):]
	webSection = webSection[:strings.Index(webSection, "## infra")]
	if !strings.Contains(webSection, models.PlaceholderText) {
		t.Errorf("missing stand-up should render %q, got section:\n%s", models.PlaceholderText, webSection)
	}
}

func TestRenderTimestampLine(t *testing.T) {
	generated := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)
	out := testRenderer().Render(nil, generated)

	want := "_Auto-updated every 30 minutes. Last generated: 2026-08-25 14:30 UTC._"
	if !strings.Contains(out, want) {
		t.Errorf("output missing timestamp line %q:\n%s", want, out)
	}
}

func TestStripTimestamp(t *testing.T) {
	r := testRenderer()
	a := r.Render(sampleEntries(), time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC))
	b := r.Render(sampleEntries(), time.Date(2026, 8, 26, 18, 45, 0, 0, time.UTC))

	if a == b {
		t.Fatal("renders at different times should differ before stripping")
	}
	if StripTimestamp(a) != StripTimestamp(b) {
		t.Error("renders with identical entries should be equal modulo the timestamp line")
	}
}

func TestWriteIfChangedIdempotent(t *testing.T) {
	r := testRenderer()
	path := filepath.Join(t.TempDir(), "DASHBOARD.md")
	entries := sampleEntries()

	written, err := WriteIfChanged(path, r.Render(entries, time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Fatal("first write should report written=true")
	}

	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Regenerate later with the same entries: only the timestamp differs,
	// so the file must stay untouched.
	written, err = WriteIfChanged(path, r.Render(entries, time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatal(err)
	}
	if written {
		t.Error("unchanged regeneration should report written=false")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(after) {
		t.Error("file content changed on an unchanged regeneration")
	}
}

func TestWriteIfChangedRewritesOnContentChange(t *testing.T) {
	r := testRenderer()
	path := filepath.Join(t.TempDir(), "DASHBOARD.md")
	entries := sampleEntries()

	if _, err := WriteIfChanged(path, r.Render(entries, time.Now())); err != nil {
		t.Fatal(err)
	}

	entries[0].Report = standup.Parse("## What was done\n- something new\n")
	written, err := WriteIfChanged(path, r.Render(entries, time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Error("changed stand-up content should trigger a rewrite")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "something new") {
		t.Error("rewritten dashboard missing updated content")
	}
}

func TestWriteIfChangedCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "DASHBOARD.md")
	written, err := WriteIfChanged(path, "# Dashboard\n")
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Error("write into a fresh directory should report written=true")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dashboard file not created: %v", err)
	}
}
