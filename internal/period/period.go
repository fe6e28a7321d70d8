// Package period holds the calendar arithmetic shared by filters, budgets and reports.
// Months are zero-based (January is 0) to match the stored budget rows.
package period

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Period is a (month, year) pair. Month is in [0, 11].
type Period struct {
	Month int
	Year  int
}

// Of returns the period containing t, in t's location.
func Of(t time.Time) Period {
	return Period{Month: int(t.Month()) - 1, Year: t.Year()}
}

// Before reports whether p sorts strictly before other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// MonthBounds returns the first instant of t's month and the last millisecond of it.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0).Add(-time.Millisecond)
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// StartOfWeek returns midnight of the most recent Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// StartOfYear returns midnight on January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// ParseDate accepts a calendar date (YYYY-MM-DD, read as midnight in loc) or an
// RFC 3339 timestamp, which is converted to loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}
