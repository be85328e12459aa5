package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// 06:00, 16:30
	time24h = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	// 6.00, 16.30
	timeDot24h = regexp.MustCompile(`^(\d{1,2})\.(\d{2})$`)
	// 0600, 1630
	timeCompact = regexp.MustCompile(`^(\d{2})(\d{2})$`)
	// 6:30am, 4:30pm
	timeColonAMPM = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)$`)
	// 6am, 4pm
	timeAMPM = regexp.MustCompile(`^(\d{1,2})\s*(am|pm)$`)
)

// ParseClock parses a wall-clock string into a TimeOfDay.
// Supported formats: "06:00", "6.00", "0600", "6:30am", "4pm".
func ParseClock(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if m := time24h.FindStringSubmatch(s); m != nil {
		return parseHourMinute24(m[1], m[2])
	}

	if m := timeDot24h.FindStringSubmatch(s); m != nil {
		return parseHourMinute24(m[1], m[2])
	}

	if m := timeCompact.FindStringSubmatch(s); m != nil {
		return parseHourMinute24(m[1], m[2])
	}

	if m := timeColonAMPM.FindStringSubmatch(s); m != nil {
		return parseHourMinuteAMPM(m[1], m[2], m[3])
	}

	if m := timeAMPM.FindStringSubmatch(s); m != nil {
		return parseHourMinuteAMPM(m[1], "0", m[2])
	}

	return TimeOfDay{}, fmt.Errorf("unrecognized time format %q", s)
}

// ClockMinutes parses s and returns minutes since midnight.
func ClockMinutes(s string) (int, error) {
	t, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return t.Minutes(), nil
}

func parseHourMinuteAMPM(hourStr, minStr, ampm string) (TimeOfDay, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, err
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return TimeOfDay{}, err
	}

	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range for 12-hour format", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}

	if ampm == "am" {
		if hour == 12 {
			hour = 0
		}
	} else if hour != 12 {
		hour += 12
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func parseHourMinute24(hourStr, minStr string) (TimeOfDay, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, err
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return TimeOfDay{}, err
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
