package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Flyrell/zeitkonto/internal/logging"
	"github.com/Flyrell/zeitkonto/internal/settings"
	"github.com/Flyrell/zeitkonto/internal/storage"
)

// Service ties the store and settings to the export file format.
type Service struct {
	Store    storage.Store
	Settings *settings.Settings
	DataDir  string
	Log      logging.Logger
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) payload(ctx context.Context, note string) (Payload, error) {
	entries, err := s.Store.All(ctx)
	if err != nil {
		return Payload{}, fmt.Errorf("reading entries: %w", err)
	}
	return Payload{
		User:       &User{Name: s.Settings.EmployeeName},
		Entries:    entries,
		ExportedAt: s.now().UTC(),
		Note:       note,
	}, nil
}

// Export writes all entries to dir under ExportFileName and returns the path.
func (s *Service) Export(ctx context.Context, dir string) (string, error) {
	p, err := s.payload(ctx, "")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFileName(s.now()))
	if err := writeFile(path, p); err != nil {
		return "", err
	}
	s.Log.Info(ctx, "export written", "path", path, "entries", len(p.Entries))
	return path, nil
}

// ExportTo writes all entries to w.
func (s *Service) ExportTo(ctx context.Context, w io.Writer) error {
	p, err := s.payload(ctx, "")
	if err != nil {
		return err
	}
	return Encode(w, p)
}

// Import replaces every stored entry with the file's entries. A user
// profile in the file replaces the employee name, and the settings are saved.
func (s *Service) Import(ctx context.Context, r io.Reader) (Payload, error) {
	p, err := Decode(r)
	if err != nil {
		return Payload{}, err
	}
	if err := s.Store.ReplaceAll(ctx, p.Entries); err != nil {
		return Payload{}, fmt.Errorf("replacing entries: %w", err)
	}
	if p.User != nil && p.User.Name != "" {
		s.Settings.EmployeeName = p.User.Name
		if err := settings.Save(s.DataDir, s.Settings); err != nil {
			return Payload{}, fmt.Errorf("saving settings: %w", err)
		}
	}
	s.Log.Info(ctx, "import complete", "entries", len(p.Entries))
	return p, nil
}

// AutoBackup writes the daily snapshot when enabled, when there is data, and
// when none was written today. It returns the path written, or "" if skipped.
func (s *Service) AutoBackup(ctx context.Context) (string, error) {
	if !s.Settings.AutoBackup {
		return "", nil
	}
	today := s.now().Format("2006-01-02")
	if s.Settings.LastBackupDate == today {
		s.Log.Debug(ctx, "auto-backup already done today", "date", today)
		return "", nil
	}

	p, err := s.payload(ctx, AutoBackupNote)
	if err != nil {
		return "", err
	}
	if len(p.Entries) == 0 {
		return "", nil
	}

	path := filepath.Join(s.Settings.BackupDirIn(s.DataDir), AutoBackupFileName(today))
	if err := writeFile(path, p); err != nil {
		return "", err
	}

	s.Settings.LastBackupDate = today
	if err := settings.Save(s.DataDir, s.Settings); err != nil {
		return "", fmt.Errorf("recording backup date: %w", err)
	}
	s.Log.Info(ctx, "auto-backup written", "path", path, "entries", len(p.Entries))
	return path, nil
}

func writeFile(path string, p Payload) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
