// Package dates holds the calendar arithmetic shared by the progress
// derivations. Weeks are Monday-anchored and all values are built from
// local calendar components so a "YYYY-MM-DD" string round-trips to the
// same calendar day in any timezone.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DayFormat = "2006-01-02"

// StartOfDay returns t's calendar day at local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday of t's week at midnight. Sunday maps to
// the Monday six days earlier.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	diff := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -diff)
}

// EndOfWeek returns the Sunday of t's week at 23:59:59.999.
func EndOfWeek(t time.Time) time.Time {
	s := StartOfWeek(t).AddDate(0, 0, 6)
	return endOfDay(s)
}

// StartOfMonth returns the first day of t's month at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month at 23:59:59.999.
func EndOfMonth(t time.Time) time.Time {
	first := StartOfMonth(t)
	return endOfDay(first.AddDate(0, 1, -1))
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// FormatDay renders t's local calendar day as "YYYY-MM-DD".
func FormatDay(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDay builds a local-midnight time from the three numeric components
// of a "YYYY-MM-DD" string. This deliberately avoids time.Parse, which
// would pin the value to UTC and shift the calendar day in western
// timezones. Empty or malformed input reports ok=false.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), true
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// InRange reports whether t lies within [from, to] inclusive.
func InRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
