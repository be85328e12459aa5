package schedule

import (
	"time"

	"github.com/teambition/rrule-go"
)

// workweek is the recurrence of days that carry a target.
var workweek = rrule.ROption{
	Freq:      rrule.WEEKLY,
	Wkst:      rrule.MO,
	Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
}

// Workdays returns the Monday-to-Friday calendar dates between from and to
// (inclusive), in ascending order.
func Workdays(from, to time.Time) []time.Time {
	from, to = Civil(from), Civil(to)
	if to.Before(from) {
		return nil
	}

	opts := workweek
	opts.Dtstart = from
	r, err := rrule.NewRRule(opts)
	if err != nil {
		return nil
	}
	return r.Between(from, to, true)
}

// TargetForRange sums the weekday policy table over every workday between
// from and to (inclusive). Holidays are not subtracted.
func TargetForRange(from, to time.Time) int {
	total := 0
	for _, d := range Workdays(from, to) {
		total += TargetMinutes(d)
	}
	return total
}

// MonthTarget returns the target minutes for a whole month.
func MonthTarget(year int, month time.Month) int {
	first, last := MonthRange(year, month)
	return TargetForRange(first, last)
}
