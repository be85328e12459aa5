package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/logging"
)

// SQLiteStore keeps entries in a single SQLite database file.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteStore(path string, log logging.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db, log: log.With("store", "sqlite", "path", path)}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			date TEXT NOT NULL,
			start_time TEXT,
			end_time TEXT,
			pause INTEGER NOT NULL DEFAULT 0,
			project TEXT NOT NULL DEFAULT '',
			code INTEGER,
			net_duration INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

const selectEntries = `SELECT id, type, date, start_time, end_time, pause, project, code, net_duration FROM entries`

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func withTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbtx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (entry.TimeEntry, error) {
	var (
		e          entry.TimeEntry
		id, typ    string
		start, end sql.NullString
		code       sql.NullInt64
	)
	if err := row.Scan(&id, &typ, &e.Date, &start, &end, &e.Pause, &e.Project, &code, &e.NetDuration); err != nil {
		return entry.TimeEntry{}, err
	}
	e.ID = entry.ID(id)
	e.Type = entry.Type(typ)
	if start.Valid {
		e.Start = &start.String
	}
	if end.Valid {
		e.End = &end.String
	}
	if code.Valid {
		c := int(code.Int64)
		e.Code = &c
	}
	return e, nil
}

func (s *SQLiteStore) All(ctx context.Context) ([]entry.TimeEntry, error) {
	rows, err := s.db.QueryContext(ctx, selectEntries+` ORDER BY date, start_time`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []entry.TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entry.Sort(entries)
	return entries, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id entry.ID) (entry.TimeEntry, error) {
	e, err := scanEntry(s.db.QueryRowContext(ctx, selectEntries+` WHERE id = ?`, string(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return entry.TimeEntry{}, fmt.Errorf("entry '%s': %w", id, entry.ErrNotFound)
	}
	return e, err
}

func (s *SQLiteStore) Put(ctx context.Context, r entry.Record) error {
	if err := checkPut(r); err != nil {
		return err
	}
	if err := upsert(ctx, s.db, r.Entry); err != nil {
		return err
	}
	s.log.Debug(ctx, "entry written", "id", r.Entry.ID, "date", r.Entry.Date)
	return nil
}

func upsert(ctx context.Context, db dbtx, e entry.TimeEntry) error {
	var code any
	if e.Code != nil {
		code = *e.Code
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO entries (id, type, date, start_time, end_time, pause, project, code, net_duration)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   type = excluded.type, date = excluded.date, start_time = excluded.start_time,
		   end_time = excluded.end_time, pause = excluded.pause, project = excluded.project,
		   code = excluded.code, net_duration = excluded.net_duration`,
		string(e.ID), string(e.Type), e.Date, nullable(e.Start), nullable(e.End),
		e.Pause, e.Project, code, e.NetDuration,
	)
	if err != nil {
		return fmt.Errorf("writing entry '%s': %w", e.ID, err)
	}
	return nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func (s *SQLiteStore) Delete(ctx context.Context, id entry.ID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, string(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry '%s': %w", id, entry.ErrNotFound)
	}
	s.log.Debug(ctx, "entry deleted", "id", id)
	return nil
}

// ReplaceAll swaps the whole entry set in one transaction.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, entries []entry.TimeEntry) error {
	for _, e := range entries {
		if err := entry.Validate(e); err != nil {
			return fmt.Errorf("entry '%s': %w", e.ID, err)
		}
	}

	err := withTx(ctx, s.db, func(ctx context.Context, tx dbtx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
			return err
		}
		for _, e := range entries {
			if err := upsert(ctx, tx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "entries replaced", "count", len(entries))
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
