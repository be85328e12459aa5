package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Flyrell/zeitkonto/internal/schedule"
)

const (
	LabelVacation = "Urlaub"
	LabelSick     = "Krank"
	LabelDrive    = "Fahrzeit"
	LabelWork     = "Arbeit"
	LabelHoliday  = "Gesetzlicher Feiertag"
)

// HolidayIDPrefix marks the IDs of derived holiday entries.
const HolidayIDPrefix = "auto-holiday-"

// IsDerivedID reports whether id names a derived holiday entry.
func IsDerivedID(id string) bool {
	return strings.HasPrefix(id, HolidayIDPrefix)
}

// NewID returns a fresh random entry ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// NewWork builds a work entry. The net duration is end - start - pause,
// clamped at zero. End at or before start is rejected.
func NewWork(date time.Time, start, end string, pause, code int, project string) (TimeEntry, error) {
	if pause < 0 {
		return TimeEntry{}, ErrNegativePause
	}

	from, err := schedule.ParseClock(start)
	if err != nil {
		return TimeEntry{}, fmt.Errorf("start: %w", err)
	}
	to, err := schedule.ParseClock(end)
	if err != nil {
		return TimeEntry{}, fmt.Errorf("end: %w", err)
	}
	if !from.Before(to) {
		return TimeEntry{}, fmt.Errorf("%s - %s: %w", from, to, ErrEndNotAfterStart)
	}

	if code == CodeUnpaidTravel || code == CodePaidTravel {
		pause = 0
	}

	s, e := from.String(), to.String()
	c := code
	return TimeEntry{
		ID:          NewID(),
		Type:        TypeWork,
		Date:        schedule.FormatDay(date),
		Start:       &s,
		End:         &e,
		Pause:       pause,
		Project:     project,
		Code:        &c,
		NetDuration: clamp(schedule.SpanMinutes(from, to) - pause),
	}, nil
}

// NewDrive builds an unpaid travel entry: a work entry with code 19 and no
// pause.
func NewDrive(date time.Time, start, end, project string) (TimeEntry, error) {
	return NewWork(date, start, end, 0, CodeUnpaidTravel, project)
}

// NewAbsence builds a vacation or sick entry credited with the day's target.
func NewAbsence(typ Type, date time.Time) (TimeEntry, error) {
	var label string
	switch typ {
	case TypeVacation:
		label = LabelVacation
	case TypeSick:
		label = LabelSick
	default:
		return TimeEntry{}, fmt.Errorf("%q is not an absence: %w", typ, ErrInvalidType)
	}

	return TimeEntry{
		ID:          NewID(),
		Type:        typ,
		Date:        schedule.FormatDay(date),
		Project:     label,
		NetDuration: schedule.TargetMinutes(date),
	}, nil
}

// NewHoliday builds the credit entry for a statutory holiday. The ID is
// derived from the date so repeated derivation yields identical entries.
func NewHoliday(date time.Time, name string) TimeEntry {
	day := schedule.FormatDay(date)
	if name == "" {
		name = LabelHoliday
	}
	return TimeEntry{
		ID:          ID(HolidayIDPrefix + day),
		Type:        TypePublicHoliday,
		Date:        day,
		Project:     name,
		NetDuration: schedule.TargetMinutes(date),
	}
}

// NetDurationOf recomputes a work entry's net minutes from its clock fields.
// Missing or unparseable start/end contribute zero. Other types keep their
// stored duration.
func NetDurationOf(e TimeEntry) int {
	if e.Type != TypeWork {
		return clamp(e.NetDuration)
	}
	start, ok := e.StartMinutes()
	if !ok {
		return 0
	}
	end, ok := e.EndMinutes()
	if !ok {
		return 0
	}
	return clamp(end - start - e.Pause)
}

// Validate checks the invariants a stored entry must satisfy.
func Validate(e TimeEntry) error {
	if e.ID == "" {
		return fmt.Errorf("missing id")
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%q: %w", e.Type, ErrInvalidType)
	}
	if _, err := e.Day(); err != nil {
		return err
	}
	if e.NetDuration < 0 {
		return fmt.Errorf("negative net duration %d", e.NetDuration)
	}
	return nil
}

func clamp(m int) int {
	if m < 0 {
		return 0
	}
	return m
}
