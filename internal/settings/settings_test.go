package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, "Markus Mustermann", s.EmployeeName)
	assert.False(t, s.AutoBackup)
	assert.Equal(t, timetrack.PolicyWorkOnly, s.Policy())
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := Default()
	s.EmployeeName = "Max Muster"
	s.AutoBackup = true
	s.LastBackupDate = "2025-01-06"
	s.Storage = "sqlite"

	require.NoError(t, Save(dir, s))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "employee_name: Max Muster")
	assert.Contains(t, string(data), "auto_backup: true")
}

func TestLoadFillsMissingValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("auto_backup: true\n"), 0644))

	s, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, s.AutoBackup)
	assert.Equal(t, DefaultEmployeeName, s.EmployeeName)
	assert.Equal(t, "json", s.Storage)
	assert.Equal(t, "work-only", s.HolidayPolicy)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("auto_backup: [oops"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestGetSet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{"employee_name", " Anna Berger ", "Anna Berger", false},
		{"employee_name", "  ", "", true},
		{"auto_backup", "ja", "true", false},
		{"auto_backup", "off", "false", false},
		{"auto_backup", "maybe", "", true},
		{"storage", "SQLite", "sqlite", false},
		{"storage", "postgres", "", true},
		{"holiday_policy", "any-entry", "any-entry", false},
		{"holiday_policy", "sometimes", "", true},
		{"log_level", "DEBUG", "debug", false},
		{"log_level", "loud", "", true},
		{"backup_dir", "/tmp/backups", "/tmp/backups", false},
		{"colour", "blue", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := Default()
			err := s.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, err := s.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Default().Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee_name")
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{
		"auto_backup", "backup_dir", "employee_name", "holiday_policy",
		"last_backup_date", "log_level", "storage",
	}, Keys())
}

func TestPolicyFallsBackOnGarbage(t *testing.T) {
	s := Default()
	s.HolidayPolicy = "garbage"
	assert.Equal(t, timetrack.PolicyWorkOnly, s.Policy())
	s.HolidayPolicy = "always"
	assert.Equal(t, timetrack.PolicyAlways, s.Policy())
}

func TestBackupDirIn(t *testing.T) {
	s := Default()
	assert.Equal(t, filepath.Join("/data", "backups"), s.BackupDirIn("/data"))
	s.BackupDir = "/mnt/usb"
	assert.Equal(t, "/mnt/usb", s.BackupDirIn("/data"))
}
