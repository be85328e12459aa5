package schedule

import "time"

// DayOfWeek returns the weekday of the calendar date y-m-d (0 = Sunday).
func DayOfWeek(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Weekday()
}

// ISOWeek returns the ISO-8601 week number of the calendar date of t. Week 1
// is the week containing the year's first Thursday.
func ISOWeek(t time.Time) int {
	_, week := Civil(t).ISOWeek()
	return week
}

// WeekStart returns the Monday of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	d := Civil(t)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDate(0, 0, -(wd - 1))
}

// WeekRange returns Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	monday := WeekStart(t)
	return monday, monday.AddDate(0, 0, 6)
}

// ISOWeekStart returns the Monday of the given ISO year and week.
func ISOWeekStart(year, week int) time.Time {
	// Jan 4 is always in week 1 of its ISO year
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.UTC)
	return WeekStart(jan4).AddDate(0, 0, (week-1)*7)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last calendar day of a month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, time.Date(year, month, DaysIn(year, month), 0, 0, 0, 0, time.UTC)
}

// InMonth reports whether the calendar date of t lies in year/month.
func InMonth(t time.Time, year int, month time.Month) bool {
	y, m, _ := t.Date()
	return y == year && m == month
}
