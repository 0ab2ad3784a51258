package util

import (
	"fmt"
	"time"
)

// StartOfDay returns t with the time-of-day zeroed, in UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekDay returns the weekday index of t, 0=Sunday through 6=Saturday.
// Every weekday comparison in the service goes through this convention,
// including the SQL side of the summary query.
func WeekDay(t time.Time) int {
	return int(t.UTC().Weekday())
}

// ParseDate accepts an RFC3339 timestamp or a plain "2006-01-02" date.
// Plain dates parse to midnight UTC. The value is never normalized here:
// day lookups match stored timestamps exactly, so callers are expected
// to submit midnight-normalized dates.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date %q", s)
	}
	return t, nil
}
