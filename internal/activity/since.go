package activity

import (
	"fmt"
	"strconv"
	"time"
)

// ParseSince interprets the --since argument relative to now. It accepts
// the keywords "today", "yesterday", "week" and "month", an ISO date
// (2006-01-02, optionally with a time), or a bare number of days.
func ParseSince(since string, now time.Time) (time.Time, error) {
	midnight := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	switch since {
	case "today":
		return midnight(now), nil
	case "yesterday":
		return midnight(now.AddDate(0, 0, -1)), nil
	case "week":
		return midnight(now.AddDate(0, 0, -7)), nil
	case "month":
		return midnight(now.AddDate(0, 0, -30)), nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, since, now.Location()); err == nil {
			return t, nil
		}
	}

	if days, err := strconv.Atoi(since); err == nil {
		return midnight(now.AddDate(0, 0, -days)), nil
	}

	return time.Time{}, fmt.Errorf("cannot parse date: %s", since)
}
