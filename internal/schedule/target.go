package schedule

import "time"

const (
	// LongDayMinutes is the target for Monday to Thursday (8.5h).
	LongDayMinutes = 510
	// FridayMinutes is the target for Friday (4.5h).
	FridayMinutes = 270
	// WeekMinutes is the resulting 38.5h work week.
	WeekMinutes = 4*LongDayMinutes + FridayMinutes
)

// TargetMinutesForWeekday is the work-week policy table: Monday to Thursday
// 510 minutes, Friday 270, weekends 0.
func TargetMinutesForWeekday(wd time.Weekday) int {
	switch wd {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return LongDayMinutes
	case time.Friday:
		return FridayMinutes
	default:
		return 0
	}
}

// TargetMinutes applies the policy table to the calendar date of t.
func TargetMinutes(t time.Time) int {
	return TargetMinutesForWeekday(Civil(t).Weekday())
}

// IsWorkday reports whether the calendar date of t is Monday to Friday.
func IsWorkday(t time.Time) bool {
	wd := Civil(t).Weekday()
	return wd >= time.Monday && wd <= time.Friday
}
