// Package storage persists user time entries. Only stored records cross
// this boundary; derived holiday entries are refused.
package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/logging"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store is the persistence contract for time entries.
type Store interface {
	All(ctx context.Context) ([]entry.TimeEntry, error)
	Get(ctx context.Context, id entry.ID) (entry.TimeEntry, error)
	Put(ctx context.Context, r entry.Record) error
	Delete(ctx context.Context, id entry.ID) error
	ReplaceAll(ctx context.Context, entries []entry.TimeEntry) error
	Close() error
}

// Open returns the store for the named backend rooted at dataDir.
func Open(backend, dataDir string, log logging.Logger) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return NewFileStore(filepath.Join(dataDir, "entries"), log), nil
	case BackendSQLite:
		return NewSQLiteStore(filepath.Join(dataDir, "zeitkonto.db"), log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected %s or %s)", backend, BackendJSON, BackendSQLite)
	}
}

func checkPut(r entry.Record) error {
	if err := r.Mutable(); err != nil {
		return err
	}
	return entry.Validate(r.Entry)
}
