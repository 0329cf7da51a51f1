package standup

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/huddle-sh/huddle/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantDate     string
		wantSections []models.StandupSection
	}{
		{
			name: "full report",
			body: `# Stand-up

Date: 2026-08-25

## What was done
- Shipped the parser
- Fixed flaky watcher test

## What code/files changed
- internal/standup/parse.go

## Blockers or dependencies
- Waiting on API keys

## Next actions for Claude
- Wire the collector

## Next actions for human
- Review the dashboard layout
`,
			wantDate: "2026-08-25",
			wantSections: []models.StandupSection{
				{Heading: "Stand-up"},
				{Heading: "What was done", Items: []string{"Shipped the parser", "Fixed flaky watcher test"}},
				{Heading: "What code/files changed", Items: []string{"internal/standup/parse.go"}},
				{Heading: "Blockers or dependencies", Items: []string{"Waiting on API keys"}},
				{Heading: "Next actions for Claude", Items: []string{"Wire the collector"}},
				{Heading: "Next actions for human", Items: []string{"Review the dashboard layout"}},
			},
		},
		{
			name: "bold headings and bold date",
			body: `**Date:** 2026-08-24

**What was done**
- Refactored config loading

**Blockers or dependencies:**
- None
`,
			wantDate: "2026-08-24",
			wantSections: []models.StandupSection{
				{Heading: "What was done", Items: []string{"Refactored config loading"}},
				{Heading: "Blockers or dependencies", Items: []string{"None"}},
			},
		},
		{
			name: "trailing colons and mixed case",
			body: `### what was done:
- item one
`,
			wantSections: []models.StandupSection{
				{Heading: "what was done", Items: []string{"item one"}},
			},
		},
		{
			name: "numbered and starred bullets",
			body: `## What was done
1. First thing
2. Second thing
* Third thing
+ Fourth thing
`,
			wantSections: []models.StandupSection{
				{Heading: "What was done", Items: []string{"First thing", "Second thing", "Third thing", "Fourth thing"}},
			},
		},
		{
			name: "hash without space is content not heading",
			body: `## What was done
#hashtag not a heading
`,
			wantSections: []models.StandupSection{
				{Heading: "What was done", Items: []string{"#hashtag not a heading"}},
			},
		},
		{
			name: "arbitrary bold text stays content",
			body: `## What was done
**really** important work
`,
			wantSections: []models.StandupSection{
				{Heading: "What was done", Items: []string{"**really** important work"}},
			},
		},
		{
			name: "text before first heading is dropped",
			body: `Some free-floating preamble.

## What was done
- The thing
`,
			wantSections: []models.StandupSection{
				{Heading: "What was done", Items: []string{"The thing"}},
			},
		},
		{
			name: "date-like line inside a section stays an item",
			body: `## What was done
- Date: called the API
Date: migrated the schema
`,
			wantSections: []models.StandupSection{
				{Heading: "What was done", Items: []string{"Date: called the API", "Date: migrated the schema"}},
			},
		},
		{
			name: "preamble date kept, section date-like lines untouched",
			body: `# Stand-up

Date: 2026-08-26

## Next actions for Claude
- Date: follow up with infra
`,
			wantDate: "2026-08-26",
			wantSections: []models.StandupSection{
				{Heading: "Stand-up"},
				{Heading: "Next actions for Claude", Items: []string{"Date: follow up with infra"}},
			},
		},
		{
			name:         "empty body",
			body:         "",
			wantSections: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Parse(tt.body)
			if report.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", report.Date, tt.wantDate)
			}
			if diff := cmp.Diff(tt.wantSections, report.Sections); diff != "" {
				t.Errorf("Sections mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRetainsRaw(t *testing.T) {
	body := "## What was done\n- one\n\n\n"
	report := Parse(body)
	want := "## What was done\n- one"
	if report.Raw != want {
		t.Errorf("Raw = %q, want %q", report.Raw, want)
	}
}

func TestSectionLookup(t *testing.T) {
	report := Parse("## What Was Done\n- x\n")
	if s := report.Section(models.SectionDone); s == nil {
		t.Fatal("Section lookup is case-insensitive, got nil")
	}
	if s := report.Section(models.SectionBlockers); s != nil {
		t.Errorf("Section(%q) = %v, want nil", models.SectionBlockers, s)
	}
}
