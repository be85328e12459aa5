package timetrack

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/holiday"
	"github.com/Flyrell/zeitkonto/internal/schedule"
)

// HolidayPolicy decides which explicit entries suppress the derived credit
// for a weekday holiday.
type HolidayPolicy string

const (
	// PolicyWorkOnly lets only a logged work day (or a stored holiday)
	// replace the credit.
	PolicyWorkOnly HolidayPolicy = "work-only"
	// PolicyAnyEntry lets any entry on that day replace the credit.
	PolicyAnyEntry HolidayPolicy = "any-entry"
	// PolicyAlways credits every weekday holiday regardless of entries.
	PolicyAlways HolidayPolicy = "always"
)

// DefaultHolidayPolicy is used when none is configured.
const DefaultHolidayPolicy = PolicyWorkOnly

// ParseHolidayPolicy validates a policy name. Empty selects the default.
func ParseHolidayPolicy(s string) (HolidayPolicy, error) {
	switch p := HolidayPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultHolidayPolicy, nil
	case PolicyWorkOnly, PolicyAnyEntry, PolicyAlways:
		return p, nil
	}
	return "", fmt.Errorf("unknown holiday policy %q (expected %s, %s or %s)", s, PolicyWorkOnly, PolicyAnyEntry, PolicyAlways)
}

func (p HolidayPolicy) blocks(e entry.TimeEntry) bool {
	switch p {
	case PolicyAlways:
		return false
	case PolicyAnyEntry:
		return true
	default:
		return e.Type == entry.TypeWork || e.Type == entry.TypePublicHoliday
	}
}

// MonthView returns the stored entries dated in year/month plus one derived
// holiday record per Monday-to-Friday holiday not blocked by the policy.
// holidays may be nil, in which case the calendar for year is computed.
// The input slice is not modified. Records are in chronological order.
func MonthView(entries []entry.TimeEntry, year int, month time.Month, holidays map[string]string, policy HolidayPolicy) []entry.Record {
	if holidays == nil {
		holidays = holiday.ForYear(year)
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	blocked := make(map[string]bool)
	var view []entry.Record
	for _, e := range entries {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		view = append(view, entry.Stored(e))
		if policy.blocks(e) {
			blocked[e.Date] = true
		}
	}

	first, last := schedule.MonthRange(year, month)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := schedule.FormatDay(d)
		name, ok := holidays[key]
		if !ok || !schedule.IsWorkday(d) || blocked[key] {
			continue
		}
		view = append(view, entry.Derived(entry.NewHoliday(d, name)))
	}

	SortRecords(view)
	return view
}

// SortRecords orders records chronologically: by date, then start time with
// missing starts last. Stored records precede derived ones on ties.
func SortRecords(records []entry.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Entry.Date != b.Entry.Date {
			return a.Entry.Date < b.Entry.Date
		}
		ka, kb := entry.StartKey(a.Entry), entry.StartKey(b.Entry)
		if ka != kb {
			return ka < kb
		}
		return a.Kind < b.Kind
	})
}

func recordDay(r entry.Record) (time.Time, bool) {
	d, err := r.Entry.Day()
	return d, err == nil
}
