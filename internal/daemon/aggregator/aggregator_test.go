package aggregator

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/huddle-sh/huddle/internal/config"
	"github.com/huddle-sh/huddle/internal/models"
)

// registerProject creates a repository directory with the given stand-up
// body (empty body means no file) and registers it. Returns the repo path.
func registerProject(t *testing.T, projectID, name, body string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if body != "" {
		if err := os.WriteFile(filepath.Join(dir, "STANDUP.md"), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := config.RegisterProject(projectID, name, dir, ""); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	agg, err := New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(agg.Stop)
	return agg
}

func readDashboard(t *testing.T) string {
	t.Helper()
	settings, err := config.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	path, err := config.DashboardPath(settings)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRunRecordsAndWritesDashboard(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	registerProject(t, "alpha-id", "alpha", "## What was done\n- Shipped the parser\n")

	agg := newTestAggregator(t)

	run, err := agg.Run(models.TriggerManual)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if run.Trigger != models.TriggerManual {
		t.Errorf("Trigger = %q, want %q", run.Trigger, models.TriggerManual)
	}
	if run.Projects != 1 || run.Missing != 0 {
		t.Errorf("Projects = %d, Missing = %d, want 1 and 0", run.Projects, run.Missing)
	}
	if !run.Written {
		t.Error("Written = false, want true on first generation")
	}
	if run.Status != "ok" {
		t.Errorf("Status = %q, want %q", run.Status, "ok")
	}
	if got := agg.LastRun(); got != run {
		t.Errorf("LastRun() = %v, want the run just executed", got)
	}

	content := readDashboard(t)
	if !strings.Contains(content, "## alpha") {
		t.Errorf("dashboard missing project heading:\n%s", content)
	}
	if !strings.Contains(content, "Shipped the parser") {
		t.Errorf("dashboard missing stand-up content:\n%s", content)
	}

	logs, err := config.ListRunLogs()
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 {
		t.Fatalf("ListRunLogs() returned %d entries, want 1", len(logs))
	}
	if logs[0].RunID != run.RunID {
		t.Errorf("run log RunID = %q, want %q", logs[0].RunID, run.RunID)
	}
}

func TestRunSkipsRewriteWhenUnchanged(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	registerProject(t, "alpha-id", "alpha", "## What was done\n- Stable content\n")

	agg := newTestAggregator(t)

	first, err := agg.Run(models.TriggerManual)
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if !first.Written {
		t.Fatal("first run did not write the dashboard")
	}

	// Only the timestamp line differs between runs, which does not count
	// as a content change.
	second, err := agg.Run(models.TriggerSignal)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if second.Written {
		t.Error("second run rewrote an unchanged dashboard")
	}

	logs, err := config.ListRunLogs()
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Errorf("ListRunLogs() returned %d entries, want 2", len(logs))
	}
}

func TestRunCountsMissingStandups(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	registerProject(t, "alpha-id", "alpha", "## What was done\n- Done\n")
	registerProject(t, "beta-id", "beta", "")

	agg := newTestAggregator(t)

	run, err := agg.Run(models.TriggerManual)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if run.Projects != 2 {
		t.Errorf("Projects = %d, want 2", run.Projects)
	}
	if run.Missing != 1 {
		t.Errorf("Missing = %d, want 1", run.Missing)
	}

	content := readDashboard(t)
	if !strings.Contains(content, models.PlaceholderText) {
		t.Errorf("dashboard missing placeholder for absent stand-up:\n%s", content)
	}
}

func TestConcurrentRunsAreSerialized(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	registerProject(t, "alpha-id", "alpha", "## What was done\n- Done\n")

	agg := newTestAggregator(t)

	triggers := []string{models.TriggerSchedule, models.TriggerWatcher}
	runs := make([]*models.RunEntry, len(triggers))
	errs := make([]error, len(triggers))

	var wg sync.WaitGroup
	for i, trigger := range triggers {
		wg.Add(1)
		go func(i int, trigger string) {
			defer wg.Done()
			runs[i], errs[i] = agg.Run(trigger)
		}(i, trigger)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("Run(%s) error = %v", triggers[i], err)
		}
	}
	if runs[0].RunID == runs[1].RunID {
		t.Errorf("both runs share RunID %q", runs[0].RunID)
	}

	logs, err := config.ListRunLogs()
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Errorf("ListRunLogs() returned %d entries, want 2", len(logs))
	}
}
