package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/logging"
)

const entryExt = ".json"

// FileStore keeps one JSON file per entry in a directory.
type FileStore struct {
	dir string
	log logging.Logger
}

func NewFileStore(dir string, log logging.Logger) *FileStore {
	return &FileStore{dir: dir, log: log.With("store", "json", "dir", dir)}
}

// Dir returns the directory holding the entry files.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(id entry.ID) (string, error) {
	name := string(id)
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid entry id %q", name)
	}
	return filepath.Join(s.dir, name+entryExt), nil
}

// All reads every entry file, ordered by date and start time.
// Files that are not valid entries are skipped.
func (s *FileStore) All(ctx context.Context) ([]entry.TimeEntry, error) {
	files, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []entry.TimeEntry
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != entryExt {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, f.Name()))
		if err != nil {
			return nil, err
		}

		var e entry.TimeEntry
		if err := json.Unmarshal(data, &e); err != nil {
			s.log.Warn(ctx, "skipping unreadable entry file", "file", f.Name(), "err", err)
			continue
		}
		if err := entry.Validate(e); err != nil {
			s.log.Warn(ctx, "skipping invalid entry file", "file", f.Name(), "err", err)
			continue
		}
		entries = append(entries, e)
	}

	entry.Sort(entries)
	return entries, nil
}

func (s *FileStore) Get(_ context.Context, id entry.ID) (entry.TimeEntry, error) {
	p, err := s.path(id)
	if err != nil {
		return entry.TimeEntry{}, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return entry.TimeEntry{}, fmt.Errorf("entry '%s': %w", id, entry.ErrNotFound)
	}
	if err != nil {
		return entry.TimeEntry{}, err
	}

	var e entry.TimeEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return entry.TimeEntry{}, fmt.Errorf("decoding entry '%s': %w", id, err)
	}
	return e, nil
}

// Put creates or overwrites the entry file.
func (s *FileStore) Put(ctx context.Context, r entry.Record) error {
	if err := checkPut(r); err != nil {
		return err
	}
	if err := s.write(r.Entry); err != nil {
		return err
	}
	s.log.Debug(ctx, "entry written", "id", r.Entry.ID, "date", r.Entry.Date)
	return nil
}

func (s *FileStore) write(e entry.TimeEntry) error {
	p, err := s.path(e.ID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

func (s *FileStore) Delete(ctx context.Context, id entry.ID) error {
	p, err := s.path(id)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if os.IsNotExist(err) {
		return fmt.Errorf("entry '%s': %w", id, entry.ErrNotFound)
	}
	if err != nil {
		return err
	}
	s.log.Debug(ctx, "entry deleted", "id", id)
	return nil
}

// rename is swapped in tests to simulate a failing filesystem.
var rename = os.Rename

// ReplaceAll swaps the whole entry set. The new set is written to a sibling
// directory first and then renamed into place.
func (s *FileStore) ReplaceAll(ctx context.Context, entries []entry.TimeEntry) error {
	for _, e := range entries {
		if err := entry.Validate(e); err != nil {
			return fmt.Errorf("entry '%s': %w", e.ID, err)
		}
	}

	staging := s.dir + ".new"
	if err := os.RemoveAll(staging); err != nil {
		return err
	}
	next := &FileStore{dir: staging, log: s.log}
	for _, e := range entries {
		if err := next.write(e); err != nil {
			_ = os.RemoveAll(staging)
			return fmt.Errorf("writing entry '%s': %w", e.ID, err)
		}
	}
	if err := os.MkdirAll(staging, 0755); err != nil {
		return err
	}

	old := s.dir + ".old"
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	if err := rename(s.dir, old); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := rename(staging, s.dir); err != nil {
		if restoreErr := rename(old, s.dir); restoreErr != nil && !os.IsNotExist(restoreErr) {
			return fmt.Errorf("%w (restoring previous entries: %v)", err, restoreErr)
		}
		_ = os.RemoveAll(staging)
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}

	s.log.Info(ctx, "entries replaced", "count", len(entries))
	return nil
}

func (s *FileStore) Close() error { return nil }
