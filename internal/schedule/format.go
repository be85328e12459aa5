package schedule

import (
	"fmt"
	"time"
)

// FormatDuration formats non-negative minutes as "{h}h {mm}m", e.g. "8h 30m".
// Negative input renders as "0h 00m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// FormatSignedDuration formats a balance with "+" for positive, "-" for
// negative and no prefix for zero, e.g. "+1h 05m".
func FormatSignedDuration(minutes int) string {
	sign := ""
	switch {
	case minutes > 0:
		sign = "+"
	case minutes < 0:
		sign = "-"
		minutes = -minutes
	}
	return sign + FormatDuration(minutes)
}

// FormatTimeRange formats a start and end clock as "06:00 - 16:30".
func FormatTimeRange(from, to string) string {
	return fmt.Sprintf("%s - %s", from, to)
}

var germanWeekdays = [...]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

// ShortWeekday returns the two-letter German weekday abbreviation.
func ShortWeekday(t time.Time) string {
	return germanWeekdays[Civil(t).Weekday()]
}

// FormatDayLabel formats a date as "Mo 06.01.".
func FormatDayLabel(t time.Time) string {
	return fmt.Sprintf("%s %s", ShortWeekday(t), t.Format("02.01."))
}

var germanMonths = [...]string{
	"Jänner", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// MonthName returns the Austrian German month name.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return germanMonths[m-1]
}
