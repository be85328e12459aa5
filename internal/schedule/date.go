package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date format used for entries.
const DateLayout = "2006-01-02"

// ParseDate parses a date expression relative to the current time.
func ParseDate(s string) (time.Time, error) {
	return parseDate(s, time.Now())
}

// ParseDateRelative parses a date expression relative to now.
func ParseDateRelative(s string, now time.Time) (time.Time, error) {
	return parseDate(s, now)
}

// parseDate parses a date expression relative to now. Results are calendar
// dates at midnight UTC.
// Supports: "today", "yesterday", "tomorrow", "monday" (most recent Monday,
// today included), "last monday" (strictly before today), "2025-01-15",
// "15.01.2025", "15.1.2025", "15.01." (current year), "jan 15", "15 jan 2025".
func parseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	today := Civil(now)

	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if strings.HasPrefix(s, "last ") {
		if wd, ok := parseWeekday(strings.TrimPrefix(s, "last ")); ok {
			return previousWeekday(today, wd, false), nil
		}
	}
	if wd, ok := parseWeekday(s); ok {
		return previousWeekday(today, wd, true), nil
	}

	layouts := []string{
		DateLayout,
		"02.01.2006",
		"2.1.2006",
		"02.01.",
		"2.1.",
		"jan 2",
		"jan 2 2006",
		"january 2",
		"january 2 2006",
		"2 jan",
		"2 jan 2006",
		"2 january",
		"2 january 2006",
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		year := t.Year()
		if !hasYear(layout) {
			year = today.Year()
		}
		return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Civil truncates t to its calendar date at midnight UTC. The wall-clock
// y/m/d of t is kept regardless of its location.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a "YYYY-MM-DD" entry date into a civil date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDay formats a civil date as "YYYY-MM-DD".
func FormatDay(t time.Time) string {
	return Civil(t).Format(DateLayout)
}

var weekdays = map[string]time.Weekday{
	"sunday":     time.Sunday,
	"monday":     time.Monday,
	"tuesday":    time.Tuesday,
	"wednesday":  time.Wednesday,
	"thursday":   time.Thursday,
	"friday":     time.Friday,
	"saturday":   time.Saturday,
	"sonntag":    time.Sunday,
	"montag":     time.Monday,
	"dienstag":   time.Tuesday,
	"mittwoch":   time.Wednesday,
	"donnerstag": time.Thursday,
	"freitag":    time.Friday,
	"samstag":    time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdays[s]
	return wd, ok
}

// previousWeekday returns the most recent occurrence of wd on or before today.
// With includeToday false, today itself is skipped.
func previousWeekday(today time.Time, wd time.Weekday, includeToday bool) time.Time {
	daysBack := int(today.Weekday()) - int(wd)
	if daysBack < 0 {
		daysBack += 7
	}
	if daysBack == 0 && !includeToday {
		daysBack = 7
	}
	return today.AddDate(0, 0, -daysBack)
}

func hasYear(layout string) bool {
	return strings.Contains(layout, "2006")
}
