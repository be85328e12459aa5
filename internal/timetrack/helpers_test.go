package timetrack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Flyrell/zeitkonto/internal/entry"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func work(t *testing.T, d time.Time, start, end string, pause, code int) entry.TimeEntry {
	t.Helper()
	e, err := entry.NewWork(d, start, end, pause, code, "Baustelle")
	require.NoError(t, err)
	return e
}

func absence(t *testing.T, typ entry.Type, d time.Time) entry.TimeEntry {
	t.Helper()
	e, err := entry.NewAbsence(typ, d)
	require.NoError(t, err)
	return e
}

func derivedOn(view []entry.Record, day string) []entry.Record {
	var out []entry.Record
	for _, r := range view {
		if r.IsDerived() && r.Entry.Date == day {
			out = append(out, r)
		}
	}
	return out
}

// januaryFixture: Jan 1 and Jan 6 2025 are weekday holidays.
func januaryFixture(t *testing.T) []entry.TimeEntry {
	return []entry.TimeEntry{
		work(t, date(2025, 1, 2), "13:00", "16:30", 0, 11),
		work(t, date(2025, 1, 2), "07:00", "12:00", 0, 11),
		work(t, date(2025, 1, 7), "05:00", "06:30", 0, entry.CodeUnpaidTravel),
		absence(t, entry.TypeVacation, date(2025, 1, 13)),
		work(t, date(2025, 2, 3), "07:00", "12:00", 0, 11),
	}
}
