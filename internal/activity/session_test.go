package activity

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSessionLog(t *testing.T, claudeDir, project, file, content string) {
	t.Helper()
	dir := filepath.Join(claudeDir, "projects", project)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const sampleLog = `{"timestamp":"2026-08-26T09:00:00Z","sessionId":"s1","gitBranch":"main","type":"user"}
{"timestamp":"2026-08-26T09:00:05Z","sessionId":"s1","type":"assistant","message":{"model":"claude-3-5-haiku-20241022","usage":{"input_tokens":100,"output_tokens":50,"cache_read_input_tokens":1000,"cache_creation_input_tokens":200}}}
not valid json
{"timestamp":"2026-08-26T09:01:00Z","sessionId":"s1","type":"assistant","message":{"model":"claude-3-5-haiku-20241022","usage":{"input_tokens":40,"output_tokens":10}}}
{"timestamp":"2026-08-25T08:00:00Z","sessionId":"s2","type":"assistant","message":{"model":"claude-sonnet-4-20250514","usage":{"input_tokens":7,"output_tokens":3}}}
`

func TestParseSessionFile(t *testing.T) {
	claudeDir := t.TempDir()
	writeSessionLog(t, claudeDir, "-home-user-api", "a.jsonl", sampleLog)
	path := filepath.Join(claudeDir, "projects", "-home-user-api", "a.jsonl")

	sessions, err := ParseSessionFile(path, time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	s1 := sessions["s1"]
	if s1 == nil {
		t.Fatal("session s1 missing")
	}
	if s1.Messages != 2 {
		t.Errorf("s1.Messages = %d, want 2 (user events don't count)", s1.Messages)
	}
	if s1.InputTokens != 140 || s1.OutputTokens != 60 {
		t.Errorf("s1 tokens = %d in / %d out, want 140 / 60", s1.InputTokens, s1.OutputTokens)
	}
	if s1.CacheReadTokens != 1000 || s1.CacheWriteTokens != 200 {
		t.Errorf("s1 cache = %d read / %d write, want 1000 / 200", s1.CacheReadTokens, s1.CacheWriteTokens)
	}
	if s1.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("s1.Model = %q", s1.Model)
	}
	if s1.GitBranch != "main" {
		t.Errorf("s1.GitBranch = %q, want main", s1.GitBranch)
	}
	if !s1.StartTime.Before(s1.EndTime) {
		t.Errorf("s1 time range invalid: %v .. %v", s1.StartTime, s1.EndTime)
	}
}

func TestParseSessionFileSinceFilter(t *testing.T) {
	claudeDir := t.TempDir()
	writeSessionLog(t, claudeDir, "-home-user-api", "a.jsonl", sampleLog)
	path := filepath.Join(claudeDir, "projects", "-home-user-api", "a.jsonl")

	// Cut off before the s2 event on the 25th
	since := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC).Local()
	sessions, err := ParseSessionFile(path, since)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := sessions["s2"]; ok {
		t.Error("s2 predates the window and should be filtered out")
	}
	if _, ok := sessions["s1"]; !ok {
		t.Error("s1 is inside the window and should be kept")
	}
}

func TestFindSessionFiles(t *testing.T) {
	claudeDir := t.TempDir()
	writeSessionLog(t, claudeDir, "-home-user-api", "a.jsonl", "{}\n")
	writeSessionLog(t, claudeDir, "-home-user-api", "b.jsonl", "{}\n")
	writeSessionLog(t, claudeDir, "-home-user-web", "c.jsonl", "{}\n")
	writeSessionLog(t, claudeDir, "-home-user-web", "notes.txt", "skip me")

	files, err := FindSessionFiles(claudeDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	for _, f := range files {
		if filepath.Ext(f.Path) != ".jsonl" {
			t.Errorf("non-jsonl file listed: %s", f.Path)
		}
	}
}

func TestFindSessionFilesMissingDir(t *testing.T) {
	files, err := FindSessionFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing directory should not be an error, got %v", err)
	}
	if files != nil {
		t.Errorf("got %v, want nil", files)
	}
}

func TestFormatProjectName(t *testing.T) {
	tests := []struct {
		encoded string
		want    string
	}{
		{"-home-user-wine-app", "wine-app"},
		{"-Users-jane-dev-api", "jane-dev-api"},
		{"-root-huddle", "huddle"},
		{"plain", "plain"},
		{"-home-user", "-home-user"},
	}

	for _, tt := range tests {
		if got := FormatProjectName(tt.encoded); got != tt.want {
			t.Errorf("FormatProjectName(%q) = %q, want %q", tt.encoded, got, tt.want)
		}
	}
}
