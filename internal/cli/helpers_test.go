package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/holiday"
	"github.com/Flyrell/zeitkonto/internal/logging"
	"github.com/Flyrell/zeitkonto/internal/settings"
	"github.com/Flyrell/zeitkonto/internal/storage"
)

// fixedNow is Wednesday of KW 2 2025.
func fixedNow() time.Time {
	return time.Date(2025, 1, 8, 7, 30, 0, 0, time.UTC)
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	dataDir := t.TempDir()
	return &app{
		dataDir:  dataDir,
		settings: settings.Default(),
		store:    storage.NewFileStore(filepath.Join(dataDir, "entries"), logging.Discard()),
		log:      logging.Discard(),
		calendar: holiday.NewCalendar(),
	}
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)
	return cmd, stdout
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func putWork(t *testing.T, a *app, d time.Time, start, end string, pause, code int, project string) entry.TimeEntry {
	t.Helper()
	e, err := entry.NewWork(d, start, end, pause, code, project)
	require.NoError(t, err)
	require.NoError(t, a.store.Put(context.Background(), entry.Stored(e)))
	return e
}

func putAbsence(t *testing.T, a *app, typ entry.Type, d time.Time) entry.TimeEntry {
	t.Helper()
	e, err := entry.NewAbsence(typ, d)
	require.NoError(t, err)
	require.NoError(t, a.store.Put(context.Background(), entry.Stored(e)))
	return e
}

func allEntries(t *testing.T, a *app) []entry.TimeEntry {
	t.Helper()
	entries, err := a.store.All(context.Background())
	require.NoError(t, err)
	return entries
}

// scriptedKit answers prompts from fixed queues. Unexpected prompts fail
// the test.
type scriptedKit struct {
	t        *testing.T
	answers  []string
	choices  []int
	confirms []bool
	asked    []string
}

func (s *scriptedKit) kit() PromptKit {
	return PromptKit{
		Prompt: func(prompt string) (string, error) {
			return s.next(prompt), nil
		},
		PromptWithDefault: func(prompt, def string) (string, error) {
			if v := s.next(prompt); v != "" {
				return v, nil
			}
			return def, nil
		},
		Confirm: func(prompt string) (bool, error) {
			s.asked = append(s.asked, prompt)
			if len(s.confirms) == 0 {
				s.t.Fatalf("unexpected confirm %q", prompt)
			}
			c := s.confirms[0]
			s.confirms = s.confirms[1:]
			return c, nil
		},
		Select: func(title string, options []string) (int, error) {
			s.asked = append(s.asked, title)
			if len(s.choices) == 0 {
				s.t.Fatalf("unexpected select %q", title)
			}
			c := s.choices[0]
			s.choices = s.choices[1:]
			return c, nil
		},
	}
}

func (s *scriptedKit) next(prompt string) string {
	s.asked = append(s.asked, prompt)
	if len(s.answers) == 0 {
		s.t.Fatalf("unexpected prompt %q", prompt)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}
