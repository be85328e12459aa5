package timetrack

import (
	"sort"
	"time"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/schedule"
)

// MonthTarget is the Soll of a whole month. Holidays still count.
func MonthTarget(year int, month time.Month) int {
	return schedule.MonthTarget(year, month)
}

// WeekTarget is the Soll of the ISO week containing day, restricted to the
// days that fall inside year/month.
func WeekTarget(day time.Time, year int, month time.Month) int {
	monday := schedule.WeekStart(day)
	total := 0
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		if schedule.InMonth(d, year, month) {
			total += schedule.TargetMinutes(d)
		}
	}
	return total
}

// MonthTotals is the month-level aggregate.
type MonthTotals struct {
	// ActualMinutes is the credited Ist, holiday credit included.
	ActualMinutes  int
	TargetMinutes  int
	DriveMinutes   int
	HolidayMinutes int
}

// Balance is Ist minus Soll.
func (t MonthTotals) Balance() int {
	return t.ActualMinutes - t.TargetMinutes
}

// Progress is the Ist/Soll ratio in percent, capped at 100. A zero target
// is treated as 1.
func (t MonthTotals) Progress() float64 {
	target := t.TargetMinutes
	if target <= 0 {
		target = 1
	}
	p := float64(t.ActualMinutes) / float64(target) * 100
	if p > 100 {
		return 100
	}
	return p
}

// MonthStats aggregates the records dated in year/month.
func MonthStats(view []entry.Record, year int, month time.Month) MonthTotals {
	totals := MonthTotals{TargetMinutes: MonthTarget(year, month)}
	for _, r := range view {
		d, ok := recordDay(r)
		if !ok || !schedule.InMonth(d, year, month) {
			continue
		}
		m := Minutes(r.Entry)
		switch Classify(r.Entry) {
		case BucketUnpaidTravel:
			totals.DriveMinutes += m
		case BucketHoliday:
			totals.HolidayMinutes += m
			totals.ActualMinutes += m
		case BucketWork, BucketAbsence:
			totals.ActualMinutes += m
		}
	}
	return totals
}

// DaySum is the credited minutes of a set of records, excluding unpaid
// travel.
func DaySum(records []entry.Record) int {
	total := 0
	for _, r := range records {
		total += CreditedMinutes(r.Entry)
	}
	return total
}

// DayGroup is one calendar day of a week group.
type DayGroup struct {
	Date          time.Time
	Records       []entry.Record
	Minutes       int
	DriveMinutes  int
	TargetMinutes int
}

// Balance is the day's credited minutes minus its target.
func (d DayGroup) Balance() int {
	return d.Minutes - d.TargetMinutes
}

// WeekGroup is one ISO week of a month view.
type WeekGroup struct {
	Week          int
	Monday        time.Time
	Sunday        time.Time
	Records       []entry.Record
	WorkMinutes   int
	DriveMinutes  int
	TargetMinutes int
	Days          []DayGroup
}

// Balance is the week's credited minutes minus its prorated target.
func (w WeekGroup) Balance() int {
	return w.WorkMinutes - w.TargetMinutes
}

// GroupByWeek groups the records dated in year/month by ISO week. Weeks and
// days are most recent first; records within a day are by start time.
func GroupByWeek(view []entry.Record, year int, month time.Month) []WeekGroup {
	weeks := make(map[time.Time]*WeekGroup)
	days := make(map[time.Time]*DayGroup)

	for _, r := range view {
		d, ok := recordDay(r)
		if !ok || !schedule.InMonth(d, year, month) {
			continue
		}

		monday := schedule.WeekStart(d)
		w, ok := weeks[monday]
		if !ok {
			w = &WeekGroup{
				Week:          schedule.ISOWeek(d),
				Monday:        monday,
				Sunday:        monday.AddDate(0, 0, 6),
				TargetMinutes: WeekTarget(monday, year, month),
			}
			weeks[monday] = w
		}
		dg, ok := days[d]
		if !ok {
			dg = &DayGroup{Date: d, TargetMinutes: schedule.TargetMinutes(d)}
			days[d] = dg
		}

		w.Records = append(w.Records, r)
		dg.Records = append(dg.Records, r)
		if Classify(r.Entry) == BucketUnpaidTravel {
			w.DriveMinutes += Minutes(r.Entry)
			dg.DriveMinutes += Minutes(r.Entry)
		} else {
			w.WorkMinutes += CreditedMinutes(r.Entry)
			dg.Minutes += CreditedMinutes(r.Entry)
		}
	}

	for d, dg := range days {
		SortRecords(dg.Records)
		w := weeks[schedule.WeekStart(d)]
		w.Days = append(w.Days, *dg)
	}

	out := make([]WeekGroup, 0, len(weeks))
	for _, w := range weeks {
		SortRecords(w.Records)
		sort.Slice(w.Days, func(i, j int) bool { return w.Days[i].Date.After(w.Days[j].Date) })
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Monday.After(out[j].Monday) })
	return out
}
