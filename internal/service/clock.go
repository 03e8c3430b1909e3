package service

import (
	"strings"
	"time"
)

// Timestamp layouts used everywhere a record is stamped. Keeping one format
// makes the lexicographic date comparisons in the aggregator correct.
const (
	TimestampLayout = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
)

// Clock supplies the current time. Injected so aggregation windows are
// testable with a fixed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// FixedClock returns a Clock pinned to the given instant, for tests.
func FixedClock(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// parseDate accepts the ISO date and date-time shapes stored by the API and
// by clients. Anything unparseable is reported, not guessed.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		TimestampLayout,
		DateLayout,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dayKey is the date-only portion of an ISO timestamp.
func dayKey(value string) string {
	return strings.SplitN(value, "T", 2)[0]
}

// truncateToDay drops the time-of-day, keeping the location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
