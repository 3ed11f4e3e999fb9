package engine

import (
	"fmt"
	"time"
)

// Date keys use the local calendar date, never UTC-normalized: the student's
// "today" is whatever their machine says it is.
const dateKeyLayout = "2006-01-02"

// Clock abstracts "now" so the state machine can be driven by fixed dates in
// tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock Clock used outside tests.
func SystemClock() Clock { return systemClock{} }

// FixedClock is a Clock pinned to a single instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DateKey formats a time as its local "YYYY-MM-DD" key.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a "YYYY-MM-DD" key back into a local-midnight time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// CalcDurationHours returns the duration in hours between two "HH:MM" clock
// times, clamped at zero. Malformed input counts as 00:00.
func CalcDurationHours(startTime, endTime string) float64 {
	start := clockMinutes(startTime)
	end := clockMinutes(endTime)
	if end <= start {
		return 0
	}
	return float64(end-start) / 60.0
}

func clockMinutes(s string) int {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// WeekStart returns local midnight of the Sunday that starts t's week.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// daysBetween returns the whole local days elapsed from a past date key to
// now (floor division, matching streak-expiry arithmetic).
func daysBetween(fromKey string, now time.Time) (int, error) {
	from, err := ParseDateKey(fromKey)
	if err != nil {
		return 0, err
	}
	return int(now.Sub(from).Hours() / 24), nil
}
