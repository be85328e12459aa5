package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/zeitkonto/internal/entry"
)

func TestRunExportToDirectory(t *testing.T) {
	a := newTestApp(t)
	putWork(t, a, day(2025, 1, 7), "06:00", "16:30", 30, 11, "Baustelle")
	dir := t.TempDir()
	cmd, stdout := newTestCmd()

	require.NoError(t, runExport(cmd, a, dir, fixedNow))

	path := filepath.Join(dir, "kogler_zeiterfassung_2025-01-08.json")
	assert.Contains(t, stdout.String(), "Exported entries to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc["entries"], 1)
	assert.Equal(t, a.settings.EmployeeName, doc["user"].(map[string]any)["name"])
}

func TestRunExportToFile(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "stand.json")
	cmd, _ := newTestCmd()

	require.NoError(t, runExport(cmd, a, path, fixedNow))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entries": []`)
}

func TestRunExportToStdout(t *testing.T) {
	a := newTestApp(t)
	putAbsence(t, a, entry.TypeVacation, day(2025, 1, 9))
	cmd, stdout := newTestCmd()

	require.NoError(t, runExport(cmd, a, "-", fixedNow))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Len(t, doc["entries"], 1)
}
