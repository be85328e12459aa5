package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

// period is a displayed month, optionally narrowed to one ISO week.
type period struct {
	year   int
	month  time.Month
	filter timetrack.Filter
}

// parseMonthYearFlags parses the --month and --year flags into year and month.
// Defaults to current month/year if empty.
func parseMonthYearFlags(monthFlag, yearFlag string, now time.Time) (int, time.Month, error) {
	year := now.Year()
	if yearFlag = strings.TrimSpace(yearFlag); yearFlag != "" {
		y, err := strconv.Atoi(yearFlag)
		if err != nil || y <= 0 {
			return 0, 0, fmt.Errorf("invalid --year value %q (expected a positive number)", yearFlag)
		}
		year = y
	}

	month := now.Month()
	if monthFlag = strings.TrimSpace(monthFlag); monthFlag != "" {
		m, err := strconv.Atoi(monthFlag)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid --month value %q (expected 1-12)", monthFlag)
		}
		month = time.Month(m)
	}

	return year, month, nil
}

// parsePeriodFlags resolves --month, --week and --year.
// Rules:
//   - neither = current month
//   - --year alone = error
//   - --month (with optional --year) = that month
//   - --week (with optional --year) = that ISO week inside the month holding its Thursday
//   - --week with --month = that week inside the given month
func parsePeriodFlags(monthFlag, weekFlag, yearFlag string, now time.Time) (period, error) {
	monthFlag = strings.TrimSpace(monthFlag)
	weekFlag = strings.TrimSpace(weekFlag)

	if yearFlag != "" && monthFlag == "" && weekFlag == "" {
		return period{}, fmt.Errorf("--year must be used with --month or --week")
	}

	year, month, err := parseMonthYearFlags(monthFlag, yearFlag, now)
	if err != nil {
		return period{}, err
	}
	p := period{year: year, month: month, filter: timetrack.Month()}
	if weekFlag == "" {
		return p, nil
	}

	week, err := strconv.Atoi(weekFlag)
	if err != nil || week < 1 || week > 53 {
		return period{}, fmt.Errorf("invalid --week value %q (expected 1-53)", weekFlag)
	}
	if monthFlag != "" {
		if !monthHasWeek(year, month, week) {
			return period{}, fmt.Errorf("KW %d does not overlap %s %d", week, schedule.MonthName(month), year)
		}
		p.filter = timetrack.Week(week)
		return p, nil
	}

	monday := schedule.ISOWeekStart(year, week)
	if schedule.ISOWeek(monday) != week {
		return period{}, fmt.Errorf("%d has no ISO week %d", year, week)
	}
	thursday := monday.AddDate(0, 0, 3)
	p.year, p.month = thursday.Year(), thursday.Month()
	p.filter = timetrack.Week(week)
	return p, nil
}

// monthHasWeek reports whether any day of year/month lies in ISO week. The
// week may belong to the neighbouring ISO year, e.g. 1-3 January 2021 are
// KW 53 of 2020.
func monthHasWeek(year int, month time.Month, week int) bool {
	first, last := schedule.MonthRange(year, month)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if schedule.ISOWeek(d) == week {
			return true
		}
	}
	return false
}

func (p period) prev() period {
	first := time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return period{year: first.Year(), month: first.Month(), filter: timetrack.Month()}
}

func (p period) next() period {
	first := time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return period{year: first.Year(), month: first.Month(), filter: timetrack.Month()}
}

func (p period) String() string {
	s := fmt.Sprintf("%s %d", schedule.MonthName(p.month), p.year)
	if p.filter.IsWeek() {
		s += ", " + p.filter.String()
	}
	return s
}
