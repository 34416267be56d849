package dates_test

import (
	"testing"
	"time"

	"progresstracker/internal/core/dates"

	"github.com/stretchr/testify/require"
)

func localDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestStartOfWeek_MondayAnchor(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	wed := time.Date(2025, 3, 12, 15, 4, 5, 0, time.Local)
	require.Equal(t, localDay(2025, 3, 10), dates.StartOfWeek(wed))

	// A Monday is its own week start.
	mon := localDay(2025, 3, 10)
	require.Equal(t, mon, dates.StartOfWeek(mon))
}

func TestStartOfWeek_SundayMapsBackSixDays(t *testing.T) {
	// 2025-03-16 is a Sunday; its week started Monday the 10th.
	sun := localDay(2025, 3, 16)
	require.Equal(t, localDay(2025, 3, 10), dates.StartOfWeek(sun))
}

func TestEndOfWeek(t *testing.T) {
	wed := localDay(2025, 3, 12)
	end := dates.EndOfWeek(wed)
	require.Equal(t, 2025, end.Year())
	require.Equal(t, time.March, end.Month())
	require.Equal(t, 16, end.Day())
	require.Equal(t, 23, end.Hour())
	require.Equal(t, 59, end.Minute())
	require.Equal(t, 59, end.Second())
}

func TestMonthBounds(t *testing.T) {
	d := localDay(2024, 2, 15)
	require.Equal(t, localDay(2024, 2, 1), dates.StartOfMonth(d))
	require.Equal(t, 29, dates.EndOfMonth(d).Day()) // leap year

	require.Equal(t, 31, dates.EndOfMonth(localDay(2025, 1, 10)).Day())
	require.Equal(t, 30, dates.EndOfMonth(localDay(2025, 4, 10)).Day())
}

func TestFormatDay_ZeroPadded(t *testing.T) {
	require.Equal(t, "2025-03-05", dates.FormatDay(localDay(2025, 3, 5)))
	require.Equal(t, "2025-11-28", dates.FormatDay(localDay(2025, 11, 28)))
}

func TestParseDay_RoundTrip(t *testing.T) {
	for _, s := range []string{"2025-03-15", "2024-02-29", "2025-12-01", "2025-01-31"} {
		d, ok := dates.ParseDay(s)
		require.True(t, ok, s)
		require.Equal(t, s, dates.FormatDay(d))
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, s := range []string{"", "2025-03", "not-a-date", "2025-13-01", "2025-00-10", "2025-03-xx"} {
		_, ok := dates.ParseDay(s)
		require.False(t, ok, s)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 15, 0, 0, 1, 0, time.Local)
	b := time.Date(2025, 3, 15, 23, 59, 0, 0, time.Local)
	require.True(t, dates.SameDay(a, b))
	require.False(t, dates.SameDay(a, b.AddDate(0, 0, 1)))
}

func TestInRange_Inclusive(t *testing.T) {
	from := localDay(2025, 3, 10)
	to := dates.EndOfWeek(from)
	require.True(t, dates.InRange(from, from, to))
	require.True(t, dates.InRange(to, from, to))
	require.False(t, dates.InRange(from.Add(-time.Millisecond), from, to))
}
