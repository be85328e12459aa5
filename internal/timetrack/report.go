package timetrack

import (
	"fmt"
	"sort"
	"time"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/stringutil"
)

// DefaultEmployeeName is used in file names when no name is configured.
const DefaultEmployeeName = "Mitarbeiter"

// Filter selects the report period: the whole month or one ISO week.
type Filter struct {
	week int
}

// Month selects the whole displayed month.
func Month() Filter { return Filter{} }

// Week selects a single ISO week of the displayed month.
func Week(n int) Filter { return Filter{week: n} }

// IsWeek reports whether the filter selects a single week.
func (f Filter) IsWeek() bool { return f.week > 0 }

// WeekNumber returns the selected ISO week, or 0 for the month filter.
func (f Filter) WeekNumber() int { return f.week }

func (f Filter) String() string {
	if f.IsWeek() {
		return fmt.Sprintf("KW %d", f.week)
	}
	return "month"
}

// Summary holds the report totals. TotalIst excludes Drive.
type Summary struct {
	Work        int
	Vacation    int
	Sick        int
	Holiday     int
	Drive       int
	TotalIst    int
	TotalTarget int
	TotalSaldo  int
}

// Row is one report line with the metadata of the day it belongs to.
// DayIndex counts distinct days from 1 in report order. ShowBalance is set
// on the last row of a day that has a target.
type Row struct {
	Record       entry.Record
	DayIndex     int
	IsEvenDay    bool
	IsFirstOfDay bool
	IsLastOfDay  bool
	ShowBalance  bool
	DayMinutes   int
	DayTarget    int
	DayBalance   int
}

// Report is the assembled timesheet for one period.
type Report struct {
	Year           int
	Month          time.Month
	Filter         Filter
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Rows           []Row
	Summary        Summary
	AvailableWeeks []int
}

// BuildReport assembles the timesheet for year/month from a month view.
// Rows are in chronological order.
func BuildReport(view []entry.Record, year int, month time.Month, f Filter) Report {
	r := Report{Year: year, Month: month, Filter: f}

	var inMonth []entry.Record
	weekSet := make(map[int]bool)
	for _, rec := range view {
		d, ok := recordDay(rec)
		if !ok || !schedule.InMonth(d, year, month) {
			continue
		}
		inMonth = append(inMonth, rec)
		weekSet[schedule.ISOWeek(d)] = true
	}
	for w := range weekSet {
		r.AvailableWeeks = append(r.AvailableWeeks, w)
	}
	sort.Ints(r.AvailableWeeks)

	var selected []entry.Record
	for _, rec := range inMonth {
		if f.IsWeek() {
			d, _ := recordDay(rec)
			if schedule.ISOWeek(d) != f.week {
				continue
			}
		}
		selected = append(selected, rec)
	}
	SortRecords(selected)

	r.PeriodStart, r.PeriodEnd = period(selected, year, month, f)
	r.Summary = summarize(selected, r.PeriodStart, r.PeriodEnd)
	r.Rows = annotate(selected)
	return r
}

// period returns the month bounds, or Monday and Sunday of the selected
// week. Without entries the week is located from the ISO week number.
func period(selected []entry.Record, year int, month time.Month, f Filter) (time.Time, time.Time) {
	if !f.IsWeek() {
		return schedule.MonthRange(year, month)
	}
	if len(selected) > 0 {
		if d, ok := recordDay(selected[0]); ok {
			return schedule.WeekRange(d)
		}
	}

	isoYear := year
	switch {
	case month == time.January && f.week >= 52:
		isoYear--
	case month == time.December && f.week == 1:
		isoYear++
	}
	monday := schedule.ISOWeekStart(isoYear, f.week)
	return monday, monday.AddDate(0, 0, 6)
}

func summarize(selected []entry.Record, from, to time.Time) Summary {
	var s Summary
	for _, rec := range selected {
		e := rec.Entry
		m := Minutes(e)
		switch e.Type {
		case entry.TypeWork:
			if e.HasCode(entry.CodeUnpaidTravel) {
				s.Drive += m
			} else {
				s.Work += m
			}
		case entry.TypeVacation:
			s.Vacation += m
		case entry.TypeSick:
			s.Sick += m
		case entry.TypePublicHoliday:
			s.Holiday += m
		}
	}
	s.TotalIst = s.Work + s.Vacation + s.Sick + s.Holiday
	s.TotalTarget = schedule.TargetForRange(from, to)
	s.TotalSaldo = s.TotalIst - s.TotalTarget
	return s
}

func annotate(selected []entry.Record) []Row {
	sums := make(map[string]int)
	for _, rec := range selected {
		sums[rec.Entry.Date] += CreditedMinutes(rec.Entry)
	}

	rows := make([]Row, 0, len(selected))
	dayIndex := 0
	current := ""
	for i, rec := range selected {
		date := rec.Entry.Date
		first := date != current
		if first {
			dayIndex++
			current = date
		}

		target := 0
		if d, ok := recordDay(rec); ok {
			target = schedule.TargetMinutes(d)
		}
		last := i+1 == len(selected) || selected[i+1].Entry.Date != date

		rows = append(rows, Row{
			Record:       rec,
			DayIndex:     dayIndex,
			IsEvenDay:    dayIndex%2 == 0,
			IsFirstOfDay: first,
			IsLastOfDay:  last,
			ShowBalance:  last && target > 0,
			DayMinutes:   sums[date],
			DayTarget:    target,
			DayBalance:   sums[date] - target,
		})
	}
	return rows
}

// FileName returns the PDF name for the report, e.g.
// "Max_Mustermann_Stundenzettel_01_01_bis_31_402345.pdf". The suffix is the
// last six digits of now in milliseconds.
func (r Report) FileName(employee string, now time.Time) string {
	name := stringutil.SafeFileName(employee, DefaultEmployeeName)
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return fmt.Sprintf("%s_Stundenzettel_%s_bis_%s_%s.pdf",
		name, r.PeriodStart.Format("02_01"), r.PeriodEnd.Format("02"), ms)
}

// Title returns a heading for the period, e.g. "Jänner 2025" or
// "KW 2 (06.01. - 12.01.2025)".
func (r Report) Title() string {
	if r.Filter.IsWeek() {
		return fmt.Sprintf("KW %d (%s - %s)", r.Filter.week,
			r.PeriodStart.Format("02.01."), r.PeriodEnd.Format("02.01.2006"))
	}
	return fmt.Sprintf("%s %d", schedule.MonthName(r.Month), r.Year)
}
