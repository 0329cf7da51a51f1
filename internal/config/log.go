package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/huddle-sh/huddle/internal/models"
)

// WriteRunLog writes a generation run log to disk with a YAML-ish header
// followed by one detail line per project.
func WriteRunLog(run *models.RunEntry, details []string) error {
	if err := EnsureGlobalLogsDir(); err != nil {
		return fmt.Errorf("failed to ensure logs dir: %w", err)
	}

	logsDir, err := GlobalLogsDir()
	if err != nil {
		return err
	}

	filePath := filepath.Join(logsDir, run.RunID+".log")
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create run log: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "run_id: %s\n", run.RunID)
	fmt.Fprintf(w, "trigger: %s\n", run.Trigger)
	fmt.Fprintf(w, "started_at: %s\n", run.StartedAt)
	fmt.Fprintf(w, "ended_at: %s\n", run.EndedAt)
	fmt.Fprintf(w, "projects: %d\n", run.Projects)
	fmt.Fprintf(w, "missing: %d\n", run.Missing)
	fmt.Fprintf(w, "written: %t\n", run.Written)
	fmt.Fprintf(w, "status: %s\n", run.Status)
	fmt.Fprintln(w, "---")

	for _, line := range details {
		fmt.Fprintln(w, line)
	}

	return w.Flush()
}

// NewRunID builds a run log identifier from the trigger and start time.
func NewRunID(trigger string, startedAt time.Time) string {
	return fmt.Sprintf("%s-%s", startedAt.UTC().Format("2006-01-02T15-04-05"), trigger)
}

// ListRunLogs reads all run logs and returns their metadata (newest first).
func ListRunLogs() ([]*models.RunEntry, error) {
	logsDir, err := GlobalLogsDir()
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(logsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []*models.RunEntry
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}

		run, err := parseRunHeader(filepath.Join(logsDir, e.Name()))
		if err != nil {
			continue
		}
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt > runs[j].StartedAt
	})

	return runs, nil
}

// ReadRunLog reads a specific run log and returns metadata + detail lines.
func ReadRunLog(runID string) (*models.RunEntry, string, error) {
	logsDir, err := GlobalLogsDir()
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(filepath.Join(logsDir, runID+".log"))
	if err != nil {
		return nil, "", fmt.Errorf("run log not found: %w", err)
	}

	run, body := parseRunContent(string(data))
	if run == nil {
		return nil, "", fmt.Errorf("invalid run log format")
	}

	return run, body, nil
}

func parseRunHeader(path string) (*models.RunEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	run := &models.RunEntry{}
	inHeader := false

	for scanner.Scan() {
		line := scanner.Text()
		if line == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			break
		}
		if inHeader {
			parseRunHeaderLine(run, line)
		}
	}

	if run.RunID == "" {
		run.RunID = strings.TrimSuffix(filepath.Base(path), ".log")
	}

	return run, nil
}

func parseRunContent(content string) (*models.RunEntry, string) {
	lines := strings.Split(content, "\n")
	run := &models.RunEntry{}
	headerEnd := -1
	inHeader := false

	for i, line := range lines {
		if line == "---" {
			if !inHeader {
				inHeader = true
				continue
			}
			headerEnd = i
			break
		}
		if inHeader {
			parseRunHeaderLine(run, line)
		}
	}

	if headerEnd < 0 {
		return nil, ""
	}

	body := strings.Join(lines[headerEnd+1:], "\n")
	return run, body
}

func parseRunHeaderLine(run *models.RunEntry, line string) {
	parts := strings.SplitN(line, ": ", 2)
	if len(parts) != 2 {
		return
	}
	key := strings.TrimSpace(parts[0])
	val := strings.TrimSpace(parts[1])

	switch key {
	case "run_id":
		run.RunID = val
	case "trigger":
		run.Trigger = val
	case "started_at":
		run.StartedAt = val
	case "ended_at":
		run.EndedAt = val
	case "projects":
		fmt.Sscanf(val, "%d", &run.Projects)
	case "missing":
		fmt.Sscanf(val, "%d", &run.Missing)
	case "written":
		run.Written = val == "true"
	case "status":
		run.Status = val
	}
}
