// Package standup parses per-project stand-up snippets and collects them
// for dashboard generation.
package standup

import (
	"strings"

	"github.com/huddle-sh/huddle/internal/models"
)

// Parse parses a stand-up snippet body into a StandupReport. The parser is
// deliberately lenient: section headings match at any ATX level or as a
// bold line, case-insensitively and with trailing colons ignored. Unknown
// headings become sections of their own. The raw body is always retained.
func Parse(body string) *models.StandupReport {
	report := &models.StandupReport{
		Raw: strings.TrimRight(body, "\n"),
	}

	var current *models.StandupSection
	inSections := false

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if heading, ok := headingText(trimmed); ok {
			report.Sections = append(report.Sections, models.StandupSection{
				Heading: heading,
			})
			current = &report.Sections[len(report.Sections)-1]
			if knownSection(heading) {
				inSections = true
			}
			continue
		}

		// The date line lives in the preamble, before the first known
		// section. A "Date:" item inside a section body stays an item.
		if !inSections && report.Date == "" {
			if date, ok := dateLine(trimmed); ok {
				report.Date = date
				continue
			}
		}

		if current != nil {
			current.Items = append(current.Items, stripBullet(trimmed))
		}
	}

	return report
}

// headingText extracts heading text from an ATX heading ("## What was done")
// or a standalone bold line ("**What was done**"). Trailing colons are
// dropped so "### Blockers or dependencies:" still matches.
func headingText(line string) (string, bool) {
	if strings.HasPrefix(line, "#") {
		text := strings.TrimLeft(line, "#")
		// "#foo" without a space is not a heading
		if !strings.HasPrefix(text, " ") {
			return "", false
		}
		text = strings.TrimSpace(text)
		text = strings.TrimSuffix(text, ":")
		if text == "" {
			return "", false
		}
		return text, true
	}

	if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4 {
		text := strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**")
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ":"))
		if text == "" || strings.Contains(text, "**") {
			return "", false
		}
		// Only treat known section names as bold headings; arbitrary bold
		// text is content.
		if knownSection(text) {
			return text, true
		}
	}

	return "", false
}

// knownSection reports whether heading matches one of the canonical
// stand-up section names, case-insensitively.
func knownSection(heading string) bool {
	for _, s := range models.StandupSections {
		if strings.EqualFold(heading, s) {
			return true
		}
	}
	return false
}

// dateLine recognizes a date line such as "Date: 2026-08-26" or
// "**Date:** 2026-08-26" and returns the value.
func dateLine(line string) (string, bool) {
	cleaned := strings.Trim(line, "*_ ")
	lower := strings.ToLower(cleaned)
	if !strings.HasPrefix(lower, "date:") {
		return "", false
	}
	value := strings.TrimSpace(cleaned[len("date:"):])
	value = strings.TrimSpace(strings.Trim(value, "*_"))
	if value == "" {
		return "", false
	}
	return value, true
}

// stripBullet removes a leading list marker from a line, if any.
func stripBullet(line string) string {
	for _, marker := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):])
		}
	}

	// Numbered list: "1. item"
	for i, r := range line {
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '.' && i > 0 && i+1 < len(line) && line[i+1] == ' ' {
			return strings.TrimSpace(line[i+2:])
		}
		break
	}

	return line
}
