// Package backup exports, imports and periodically snapshots the entry set.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Flyrell/zeitkonto/internal/entry"
)

// ErrInvalidImport is returned for files that are not a usable export.
var ErrInvalidImport = errors.New("invalid import file")

// AutoBackupNote marks payloads written by the daily backup.
const AutoBackupNote = "Automatische Sicherung"

// User is the employee profile carried in an export.
type User struct {
	Name string `json:"name"`
}

// Payload is the export file format.
type Payload struct {
	User       *User             `json:"user,omitempty"`
	Entries    []entry.TimeEntry `json:"entries"`
	ExportedAt time.Time         `json:"exportedAt"`
	Note       string            `json:"note,omitempty"`
}

// ExportFileName returns the manual export name for the day of now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("kogler_zeiterfassung_%s.json", now.Format("2006-01-02"))
}

// AutoBackupFileName returns the daily backup name for day ("YYYY-MM-DD").
func AutoBackupFileName(day string) string {
	return fmt.Sprintf("kogler_autobackup_%s.json", day)
}

// Encode writes p as two-space indented JSON.
func Encode(w io.Writer, p Payload) error {
	if p.Entries == nil {
		p.Entries = []entry.TimeEntry{}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads an export. The entries field must be a JSON array of valid
// entries; anything else yields ErrInvalidImport.
func Decode(r io.Reader) (Payload, error) {
	var raw struct {
		User       *User           `json:"user"`
		Entries    json.RawMessage `json:"entries"`
		ExportedAt string          `json:"exportedAt"`
		Note       string          `json:"note"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	body := bytes.TrimSpace(raw.Entries)
	if len(body) == 0 || body[0] != '[' {
		return Payload{}, fmt.Errorf("%w: entries must be an array", ErrInvalidImport)
	}

	var entries []entry.TimeEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	for i, e := range entries {
		if err := entry.Validate(e); err != nil {
			return Payload{}, fmt.Errorf("%w: entry %d: %v", ErrInvalidImport, i, err)
		}
	}

	p := Payload{User: raw.User, Entries: entries, Note: raw.Note}
	if t, err := time.Parse(time.RFC3339Nano, raw.ExportedAt); err == nil {
		p.ExportedAt = t
	}
	return p, nil
}
