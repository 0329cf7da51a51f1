package activity

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SessionStats accumulates usage for one Claude Code session.
type SessionStats struct {
	Project          string    `json:"project"`
	Messages         int       `json:"messages"`
	InputTokens      int64     `json:"input_tokens"`
	OutputTokens     int64     `json:"output_tokens"`
	CacheReadTokens  int64     `json:"cache_read_tokens"`
	CacheWriteTokens int64     `json:"cache_write_tokens"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Model            string    `json:"model,omitempty"`
	GitBranch        string    `json:"git_branch,omitempty"`
	CostUSD          float64   `json:"cost"`
}

// SessionFile is one JSONL session log found under the projects directory.
type SessionFile struct {
	Project string // encoded project directory name
	Path    string
}

// sessionEvent is one line of a session JSONL file. Only the fields needed
// for aggregation are decoded.
type sessionEvent struct {
	Timestamp string `json:"timestamp"`
	SessionID string `json:"sessionId"`
	GitBranch string `json:"gitBranch"`
	Type      string `json:"type"`
	Message   *struct {
		Model string `json:"model"`
		Usage struct {
			InputTokens              int64 `json:"input_tokens"`
			OutputTokens             int64 `json:"output_tokens"`
			CacheReadInputTokens     int64 `json:"cache_read_input_tokens"`
			CacheCreationInputTokens int64 `json:"cache_creation_input_tokens"`
		} `json:"usage"`
	} `json:"message"`
}

// FindSessionFiles lists all JSONL session files under <claudeDir>/projects.
func FindSessionFiles(claudeDir string) ([]SessionFile, error) {
	projectsDir := filepath.Join(claudeDir, "projects")

	dirs, err := os.ReadDir(projectsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []SessionFile
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(projectsDir, d.Name()))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
				continue
			}
			files = append(files, SessionFile{
				Project: d.Name(),
				Path:    filepath.Join(projectsDir, d.Name(), e.Name()),
			})
		}
	}

	return files, nil
}

// ParseSessionFile reads one JSONL session log and aggregates usage per
// session ID, keeping only events at or after since. Malformed lines and
// unparsable timestamps are skipped.
func ParseSessionFile(path string, since time.Time) (map[string]*SessionStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sessions := make(map[string]*SessionStats)

	scanner := bufio.NewScanner(f)
	// Session lines can be large; allow up to 16MB per line.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var event sessionEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}
		if event.Timestamp == "" {
			continue
		}

		ts, err := time.Parse(time.RFC3339, event.Timestamp)
		if err != nil {
			continue
		}
		ts = ts.Local()
		if ts.Before(since) {
			continue
		}

		sessionID := event.SessionID
		if sessionID == "" {
			sessionID = "unknown"
		}

		s, ok := sessions[sessionID]
		if !ok {
			s = &SessionStats{}
			sessions[sessionID] = s
		}

		if s.StartTime.IsZero() || ts.Before(s.StartTime) {
			s.StartTime = ts
		}
		if s.EndTime.IsZero() || ts.After(s.EndTime) {
			s.EndTime = ts
		}

		if event.GitBranch != "" {
			s.GitBranch = event.GitBranch
		}

		// Usage data lives on assistant messages
		if event.Type == "assistant" && event.Message != nil {
			s.Messages++
			if event.Message.Model != "" {
				s.Model = event.Message.Model
			}
			s.InputTokens += event.Message.Usage.InputTokens
			s.OutputTokens += event.Message.Usage.OutputTokens
			s.CacheReadTokens += event.Message.Usage.CacheReadInputTokens
			s.CacheWriteTokens += event.Message.Usage.CacheCreationInputTokens
		}
	}

	if err := scanner.Err(); err != nil {
		return sessions, err
	}
	return sessions, nil
}

// FormatProjectName converts an encoded project directory name like
// "-home-user-wine-app" into a readable "wine-app".
func FormatProjectName(encoded string) string {
	skip := map[string]bool{
		"":      true,
		"home":  true,
		"user":  true,
		"Users": true,
		"root":  true,
	}

	var parts []string
	for _, part := range strings.Split(encoded, "-") {
		if !skip[part] {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return encoded
	}
	return strings.Join(parts, "-")
}
