// Package dashboard renders the aggregated stand-up dashboard file.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/huddle-sh/huddle/internal/models"
)

const (
	// timestampPrefix marks the generation timestamp line. The idempotency
	// comparison strips lines with this prefix, so regenerating with
	// unchanged stand-ups leaves the file untouched.
	timestampPrefix = "_Auto-updated every "

	rule = "---"
)

// Renderer builds the dashboard markdown from collected entries.
type Renderer struct {
	Title           string
	IntervalMinutes int
}

// NewRenderer creates a renderer from settings.
func NewRenderer(settings *models.Settings) Renderer {
	r := Renderer{
		Title:           settings.Dashboard.Title,
		IntervalMinutes: settings.Dashboard.IntervalMinutes,
	}
	if r.Title == "" {
		r.Title = "Stand-up Dashboard"
	}
	if r.IntervalMinutes <= 0 {
		r.IntervalMinutes = 30
	}
	return r
}

// Render produces the dashboard document: title, timestamp line, then one
// level-2 section per tracked project in order, separated by horizontal
// rules. Projects without a stand-up get the placeholder text.
func (r Renderer) Render(entries []models.StandupEntry, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "%s%d minutes. Last generated: %s._\n\n",
		timestampPrefix, r.IntervalMinutes, generatedAt.UTC().Format("2006-01-02 15:04 MST"))
	b.WriteString(rule + "\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "\n## %s\n\n", e.Project)
		b.WriteString(entryBody(e))
		b.WriteString("\n\n" + rule + "\n")
	}

	return b.String()
}

// entryBody returns the markdown body for one project entry.
func entryBody(e models.StandupEntry) string {
	if e.Missing() {
		return models.PlaceholderText
	}
	return strings.TrimSpace(e.Report.Raw)
}

// StripTimestamp removes the generation timestamp line from a rendered
// dashboard, for change comparison.
func StripTimestamp(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, timestampPrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
