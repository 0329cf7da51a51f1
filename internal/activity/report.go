package activity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ProjectStats aggregates usage across all of a project's sessions.
type ProjectStats struct {
	Sessions         int      `json:"sessions"`
	Messages         int      `json:"messages"`
	InputTokens      int64    `json:"input_tokens"`
	OutputTokens     int64    `json:"output_tokens"`
	CacheReadTokens  int64    `json:"cache_read_tokens"`
	CacheWriteTokens int64    `json:"cache_write_tokens"`
	CostUSD          float64  `json:"cost"`
	Models           []string `json:"models"`
}

// Totals aggregates usage across all projects.
type Totals struct {
	Sessions         int     `json:"sessions"`
	Messages         int     `json:"messages"`
	InputTokens      int64   `json:"input_tokens"`
	OutputTokens     int64   `json:"output_tokens"`
	CacheReadTokens  int64   `json:"cache_read_tokens"`
	CacheWriteTokens int64   `json:"cache_write_tokens"`
	CostUSD          float64 `json:"cost"`
}

// Report is the full activity report for a time window.
type Report struct {
	Since     time.Time                `json:"since"`
	Total     Totals                   `json:"total"`
	ByProject map[string]*ProjectStats `json:"by_project"`
	Sessions  map[string]*SessionStats `json:"sessions"`
}

// BuildReport scans the Claude data directory and aggregates all session
// activity since the given time. Unreadable session files are skipped.
func BuildReport(claudeDir string, since time.Time) (*Report, error) {
	files, err := FindSessionFiles(claudeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan session files: %w", err)
	}

	report := &Report{
		Since:     since,
		ByProject: make(map[string]*ProjectStats),
		Sessions:  make(map[string]*SessionStats),
	}

	modelsSeen := make(map[string]map[string]bool)

	for _, file := range files {
		sessions, err := ParseSessionFile(file.Path, since)
		if err != nil && sessions == nil {
			continue
		}

		project := FormatProjectName(file.Project)

		for sessionID, s := range sessions {
			if s.Messages == 0 {
				continue
			}

			s.Project = project
			s.CostUSD = s.Cost()
			report.Sessions[sessionID] = s

			ps, ok := report.ByProject[project]
			if !ok {
				ps = &ProjectStats{}
				report.ByProject[project] = ps
				modelsSeen[project] = make(map[string]bool)
			}
			ps.Sessions++
			ps.Messages += s.Messages
			ps.InputTokens += s.InputTokens
			ps.OutputTokens += s.OutputTokens
			ps.CacheReadTokens += s.CacheReadTokens
			ps.CacheWriteTokens += s.CacheWriteTokens
			ps.CostUSD += s.CostUSD
			if s.Model != "" {
				modelsSeen[project][s.Model] = true
			}

			report.Total.Sessions++
			report.Total.Messages += s.Messages
			report.Total.InputTokens += s.InputTokens
			report.Total.OutputTokens += s.OutputTokens
			report.Total.CacheReadTokens += s.CacheReadTokens
			report.Total.CacheWriteTokens += s.CacheWriteTokens
			report.Total.CostUSD += s.CostUSD
		}
	}

	for project, models := range modelsSeen {
		names := make([]string, 0, len(models))
		for m := range models {
			names = append(names, m)
		}
		sort.Strings(names)
		report.ByProject[project].Models = names
	}

	return report, nil
}

// ProjectsByCost returns project names sorted by descending cost.
func (r *Report) ProjectsByCost() []string {
	names := make([]string, 0, len(r.ByProject))
	for name := range r.ByProject {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r.ByProject[names[i]], r.ByProject[names[j]]
		if a.CostUSD != b.CostUSD {
			return a.CostUSD > b.CostUSD
		}
		return names[i] < names[j]
	})
	return names
}

// Format renders the report as human-readable text.
func (r *Report) Format() string {
	var b strings.Builder

	divider := strings.Repeat("=", 60)
	fmt.Fprintf(&b, "\n%s\n", divider)
	fmt.Fprintln(&b, " Claude Code Activity Report")
	fmt.Fprintf(&b, " Since: %s\n", r.Since.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "%s\n\n", divider)

	if len(r.ByProject) == 0 {
		fmt.Fprintf(&b, "No sessions found since %s\n", r.Since.Format("2006-01-02 15:04"))
		return b.String()
	}

	fmt.Fprintln(&b, "Projects Active:")
	fmt.Fprintln(&b, strings.Repeat("-", 60))
	for _, project := range r.ProjectsByCost() {
		ps := r.ByProject[project]
		models := "unknown"
		if len(ps.Models) > 0 {
			models = strings.Join(ps.Models, ", ")
		}
		fmt.Fprintf(&b, "\n  %s\n", project)
		fmt.Fprintf(&b, "    Sessions: %d\n", ps.Sessions)
		fmt.Fprintf(&b, "    Messages: %d\n", ps.Messages)
		fmt.Fprintf(&b, "    Input tokens: %s\n", groupDigits(ps.InputTokens))
		fmt.Fprintf(&b, "    Output tokens: %s\n", groupDigits(ps.OutputTokens))
		fmt.Fprintf(&b, "    Cache read: %s\n", groupDigits(ps.CacheReadTokens))
		fmt.Fprintf(&b, "    Cache write: %s\n", groupDigits(ps.CacheWriteTokens))
		fmt.Fprintf(&b, "    Models: %s\n", models)
		fmt.Fprintf(&b, "    Cost: $%.4f\n", ps.CostUSD)
	}

	fmt.Fprintf(&b, "\n%s\n", divider)
	fmt.Fprintln(&b, "TOTALS")
	fmt.Fprintln(&b, divider)
	fmt.Fprintf(&b, "  Sessions: %d\n", r.Total.Sessions)
	fmt.Fprintf(&b, "  Messages: %d\n", r.Total.Messages)
	fmt.Fprintf(&b, "  Input tokens: %s\n", groupDigits(r.Total.InputTokens))
	fmt.Fprintf(&b, "  Output tokens: %s\n", groupDigits(r.Total.OutputTokens))
	fmt.Fprintf(&b, "  Cache read tokens: %s\n", groupDigits(r.Total.CacheReadTokens))
	fmt.Fprintf(&b, "  Cache write tokens: %s\n", groupDigits(r.Total.CacheWriteTokens))
	fmt.Fprintf(&b, "  Total cost: $%.4f\n", r.Total.CostUSD)

	return b.String()
}

// groupDigits formats n with thousands separators (12345 -> "12,345").
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}
