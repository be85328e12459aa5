package cli

import (
	"fmt"
	"io"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

// kindLabel names the entry category the way the timesheet does.
func kindLabel(e entry.TimeEntry) string {
	switch e.Type {
	case entry.TypeWork:
		if e.IsDrive() {
			return entry.LabelDrive
		}
		return entry.LabelWork
	case entry.TypeVacation:
		return entry.LabelVacation
	case entry.TypeSick:
		return entry.LabelSick
	case entry.TypePublicHoliday:
		return "Feiertag"
	}
	return string(e.Type)
}

// timeLabel is the clock range of a work entry, or "ganztägig" for
// full-day entries.
func timeLabel(e entry.TimeEntry) string {
	if e.Start == nil || e.End == nil {
		if e.Type == entry.TypeWork {
			return "--:-- - --:--"
		}
		return "ganztägig"
	}
	return schedule.FormatTimeRange(*e.Start, *e.End)
}

// entryLine renders a record on one line for listings.
func entryLine(r entry.Record) string {
	e := r.Entry
	id := e.ID.Short()
	if r.IsDerived() {
		id = "auto"
	}

	line := fmt.Sprintf("%-8s  %-13s  %-8s  %7s",
		id, timeLabel(e), kindLabel(e), schedule.FormatDuration(timetrack.Minutes(e)))
	if code := entry.CodeOf(e); code != "" && !e.IsDrive() {
		line += "  " + code
	}
	if e.Project != "" {
		line += "  " + e.Project
	}
	if e.Pause > 0 {
		line += Silent(fmt.Sprintf("  (Pause %dm)", e.Pause))
	}
	return line
}

// printEntryDetail prints the fields of a single entry, one per line.
func printEntryDetail(w io.Writer, e entry.TimeEntry) {
	d, err := e.Day()
	date := e.Date
	if err == nil {
		date = fmt.Sprintf("%s %s", schedule.ShortWeekday(d), d.Format("02.01.2006"))
	}

	_, _ = fmt.Fprintf(w, "  date:    %s\n", Primary(date))
	_, _ = fmt.Fprintf(w, "  type:    %s\n", kindLabel(e))
	if e.Type == entry.TypeWork {
		_, _ = fmt.Fprintf(w, "  time:    %s\n", timeLabel(e))
		if e.Pause > 0 {
			_, _ = fmt.Fprintf(w, "  pause:   %dm\n", e.Pause)
		}
		if code := entry.CodeOf(e); code != "" {
			_, _ = fmt.Fprintf(w, "  code:    %s\n", code)
		}
	}
	if e.Project != "" {
		_, _ = fmt.Fprintf(w, "  project: %s\n", e.Project)
	}
	_, _ = fmt.Fprintf(w, "  net:     %s\n", schedule.FormatDuration(timetrack.Minutes(e)))
}

// balanceLabel colours a signed balance: primary when non-negative, warning
// when behind.
func balanceLabel(minutes int) string {
	s := schedule.FormatSignedDuration(minutes)
	if minutes < 0 {
		return Warning(s)
	}
	return Primary(s)
}
