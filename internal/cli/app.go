package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/backup"
	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/holiday"
	"github.com/Flyrell/zeitkonto/internal/logging"
	"github.com/Flyrell/zeitkonto/internal/settings"
	"github.com/Flyrell/zeitkonto/internal/storage"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

// app is the per-invocation state shared by all commands: the data
// directory, the loaded settings, the open store and the logger.
type app struct {
	dataDir  string
	settings *settings.Settings
	store    storage.Store
	log      logging.Logger
	calendar *holiday.Calendar
}

// openApp resolves the data directory from the environment, loads the
// settings and opens the configured store.
func openApp(homeDir, workDir string, verbose bool, logOut io.Writer) (*app, error) {
	env, err := settings.LoadEnv(workDir)
	if err != nil {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	dataDir := env.DataDir(homeDir)

	s, err := settings.Load(dataDir)
	if err != nil {
		return nil, err
	}
	if err := env.Apply(s); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	log := logging.New(logOut, level)

	store, err := storage.Open(s.Storage, dataDir, log)
	if err != nil {
		return nil, err
	}

	return &app{
		dataDir:  dataDir,
		settings: s,
		store:    store,
		log:      log,
		calendar: holiday.NewCalendar(),
	}, nil
}

func (a *app) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}

// monthView loads every stored entry and derives the view of year/month
// under the configured holiday policy.
func (a *app) monthView(ctx context.Context, year int, month time.Month) ([]entry.Record, error) {
	entries, err := a.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return timetrack.MonthView(entries, year, month, a.calendar.ForYear(year), a.settings.Policy()), nil
}

func (a *app) backupService(nowFn func() time.Time) *backup.Service {
	return &backup.Service{
		Store:    a.store,
		Settings: a.settings,
		DataDir:  a.dataDir,
		Log:      a.log,
		Now:      nowFn,
	}
}

// runAutoBackup writes the daily snapshot. Failures are logged, never
// returned, so a broken backup directory does not block the command.
func (a *app) runAutoBackup(ctx context.Context, nowFn func() time.Time) {
	path, err := a.backupService(nowFn).AutoBackup(ctx)
	if err != nil {
		a.log.Warn(ctx, "auto-backup failed", "error", err)
		return
	}
	if path != "" {
		a.log.Debug(ctx, "auto-backup", "path", path)
	}
}

// commandContext returns the command's context, or Background for commands
// that were never executed through cobra.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

type appKey struct{}

// appHolder carries the app from the root pre-run to the command and back
// to Execute, which closes it.
type appHolder struct {
	app *app
}

func (h *appHolder) close() {
	if h.app != nil {
		_ = h.app.Close()
		h.app = nil
	}
}

func withAppHolder(ctx context.Context, h *appHolder) context.Context {
	return context.WithValue(ctx, appKey{}, h)
}

func holderFrom(ctx context.Context) *appHolder {
	if ctx == nil {
		return nil
	}
	h, _ := ctx.Value(appKey{}).(*appHolder)
	return h
}

var errNoAppHolder = errors.New("command must run through Execute")

// appFrom returns the app opened by the root pre-run. When the pre-run did
// not open one, it is opened here and stored in the holder, so Execute
// still closes it. Without a holder there is nobody to close the store, so
// the call fails.
func appFrom(cmd *cobra.Command) (*app, error) {
	h := holderFrom(cmd.Context())
	if h == nil {
		return nil, errNoAppHolder
	}
	if h.app != nil {
		return h.app, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	workDir, _ := os.Getwd()
	a, err := openApp(homeDir, workDir, false, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	h.app = a
	return a, nil
}
