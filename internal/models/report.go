package models

import (
	"strings"
	"time"
)

// PlaceholderText is rendered for a tracked project whose stand-up file is
// missing or unreadable.
const PlaceholderText = "_no stand-up found_"

// Canonical stand-up section headings, in the order they appear on the
// dashboard.
const (
	SectionDone       = "What was done"
	SectionChanged    = "What code/files changed"
	SectionBlockers   = "Blockers or dependencies"
	SectionNextClaude = "Next actions for Claude"
	SectionNextHuman  = "Next actions for human"
)

// StandupSections lists the canonical section headings in dashboard order.
var StandupSections = []string{
	SectionDone,
	SectionChanged,
	SectionBlockers,
	SectionNextClaude,
	SectionNextHuman,
}

// StandupSection is one heading of a stand-up report with its bullet items.
type StandupSection struct {
	Heading string
	Items   []string
}

// StandupReport is a parsed stand-up snippet for a single project.
type StandupReport struct {
	Date     string           // free-form date line, if present
	Sections []StandupSection // sections in file order
	Raw      string           // the original markdown body
}

// Section returns the section with the given heading, matched
// case-insensitively, or nil.
func (r *StandupReport) Section(heading string) *StandupSection {
	for i := range r.Sections {
		if strings.EqualFold(r.Sections[i].Heading, heading) {
			return &r.Sections[i]
		}
	}
	return nil
}

// StandupEntry pairs a project with its stand-up report for one generation
// cycle. A nil Report means "no stand-up found".
type StandupEntry struct {
	Project string
	Report  *StandupReport
	ModTime time.Time // mtime of the stand-up file, zero when missing
}

// Missing reports whether this entry carries the placeholder instead of a
// stand-up.
func (e StandupEntry) Missing() bool {
	return e.Report == nil
}
