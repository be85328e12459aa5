package entry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Flyrell/zeitkonto/internal/schedule"
)

// Type is the category of a time entry.
type Type string

const (
	TypeWork          Type = "work"
	TypeVacation      Type = "vacation"
	TypeSick          Type = "sick"
	TypePublicHoliday Type = "public_holiday"
)

// Valid reports whether t is one of the known entry types.
func (t Type) Valid() bool {
	switch t {
	case TypeWork, TypeVacation, TypeSick, TypePublicHoliday:
		return true
	}
	return false
}

var (
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrNotFound         = errors.New("entry not found")
	ErrDerivedRecord    = errors.New("derived holiday entries cannot be stored, edited or removed")
	ErrInvalidType      = errors.New("invalid entry type")
	ErrNegativePause    = errors.New("pause must not be negative")
)

// ID identifies an entry. Older exports carry numeric millisecond IDs, so
// decoding accepts both JSON strings and numbers.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("entry id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Short returns the first 8 characters of the ID for display.
func (id ID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// TimeEntry is a single persisted time record.
type TimeEntry struct {
	ID          ID      `json:"id"`
	Type        Type    `json:"type"`
	Date        string  `json:"date"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Pause       int     `json:"pause"`
	Project     string  `json:"project"`
	Code        *int    `json:"code"`
	NetDuration int     `json:"netDuration"`
}

// Day returns the entry's calendar date.
func (e TimeEntry) Day() (time.Time, error) {
	return schedule.ParseDay(e.Date)
}

// StartMinutes returns the start clock as minutes since midnight. ok is false
// when the entry has no parseable start.
func (e TimeEntry) StartMinutes() (minutes int, ok bool) {
	return clockField(e.Start)
}

// EndMinutes returns the end clock as minutes since midnight.
func (e TimeEntry) EndMinutes() (minutes int, ok bool) {
	return clockField(e.End)
}

// HasCode reports whether the entry carries the given work code.
func (e TimeEntry) HasCode(code int) bool {
	return e.Code != nil && *e.Code == code
}

// IsDrive reports whether the entry is unpaid travel time.
func (e TimeEntry) IsDrive() bool {
	return e.Type == TypeWork && e.HasCode(CodeUnpaidTravel)
}

func clockField(s *string) (int, bool) {
	if s == nil {
		return 0, false
	}
	m, err := schedule.ClockMinutes(*s)
	if err != nil {
		return 0, false
	}
	return m, true
}

// Kind distinguishes persisted records from ones computed for a view.
type Kind int

const (
	KindStored Kind = iota
	KindDerived
)

func (k Kind) String() string {
	if k == KindDerived {
		return "derived"
	}
	return "stored"
}

// Record is an entry as seen by aggregation: either stored by the user or
// derived from the holiday calendar.
type Record struct {
	Entry TimeEntry
	Kind  Kind
}

// Stored wraps a persisted entry.
func Stored(e TimeEntry) Record {
	return Record{Entry: e, Kind: KindStored}
}

// Derived wraps a computed entry that must never be persisted.
func Derived(e TimeEntry) Record {
	return Record{Entry: e, Kind: KindDerived}
}

// IsDerived reports whether the record was computed rather than stored.
func (r Record) IsDerived() bool {
	return r.Kind == KindDerived
}

// Mutable returns ErrDerivedRecord for derived records.
func (r Record) Mutable() error {
	if r.IsDerived() {
		return fmt.Errorf("%s: %w", r.Entry.ID, ErrDerivedRecord)
	}
	return nil
}

// StoredAll wraps every entry as a stored record.
func StoredAll(entries []TimeEntry) []Record {
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = Stored(e)
	}
	return out
}
