// Package settings holds the user's preferences. Settings are read once by
// the CLI and passed down explicitly.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Flyrell/zeitkonto/internal/logging"
	"github.com/Flyrell/zeitkonto/internal/storage"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

// DefaultEmployeeName is shown until the user configures a name.
const DefaultEmployeeName = "Markus Mustermann"

const fileName = "settings.yaml"

// Settings is the persisted preference set.
type Settings struct {
	EmployeeName   string `yaml:"employee_name"`
	AutoBackup     bool   `yaml:"auto_backup"`
	LastBackupDate string `yaml:"last_backup_date,omitempty"`
	BackupDir      string `yaml:"backup_dir,omitempty"`
	Storage        string `yaml:"storage"`
	HolidayPolicy  string `yaml:"holiday_policy"`
	LogLevel       string `yaml:"log_level"`
}

// Default returns the settings used when no file exists.
func Default() *Settings {
	return &Settings{
		EmployeeName:  DefaultEmployeeName,
		Storage:       storage.BackendJSON,
		HolidayPolicy: string(timetrack.DefaultHolidayPolicy),
		LogLevel:      "info",
	}
}

// Path returns the settings file inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, fileName)
}

// Load reads the settings file, filling in defaults for missing values.
// A missing file yields Default().
func Load(dataDir string) (*Settings, error) {
	data, err := os.ReadFile(Path(dataDir))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Path(dataDir), err)
	}
	s.applyDefaults()
	return &s, nil
}

func (s *Settings) applyDefaults() {
	d := Default()
	if strings.TrimSpace(s.EmployeeName) == "" {
		s.EmployeeName = d.EmployeeName
	}
	if s.Storage == "" {
		s.Storage = d.Storage
	}
	if s.HolidayPolicy == "" {
		s.HolidayPolicy = d.HolidayPolicy
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
}

// Save writes the settings file, creating dataDir if needed.
func Save(dataDir string, s *Settings) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(Path(dataDir), data, 0644)
}

// Policy returns the configured holiday policy, falling back to the default
// for unknown values.
func (s *Settings) Policy() timetrack.HolidayPolicy {
	p, err := timetrack.ParseHolidayPolicy(s.HolidayPolicy)
	if err != nil {
		return timetrack.DefaultHolidayPolicy
	}
	return p
}

// BackupDirIn returns the backup directory, defaulting to dataDir/backups.
func (s *Settings) BackupDirIn(dataDir string) string {
	if s.BackupDir != "" {
		return s.BackupDir
	}
	return filepath.Join(dataDir, "backups")
}

type field struct {
	get func(s *Settings) string
	set func(s *Settings, v string) error
}

var fields = map[string]field{
	"employee_name": {
		get: func(s *Settings) string { return s.EmployeeName },
		set: func(s *Settings, v string) error {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("employee_name must not be empty")
			}
			s.EmployeeName = strings.TrimSpace(v)
			return nil
		},
	},
	"auto_backup": {
		get: func(s *Settings) string { return strconv.FormatBool(s.AutoBackup) },
		set: func(s *Settings, v string) error {
			b, err := parseBool(v)
			if err != nil {
				return err
			}
			s.AutoBackup = b
			return nil
		},
	},
	"last_backup_date": {
		get: func(s *Settings) string { return s.LastBackupDate },
		set: func(s *Settings, v string) error {
			s.LastBackupDate = strings.TrimSpace(v)
			return nil
		},
	},
	"backup_dir": {
		get: func(s *Settings) string { return s.BackupDir },
		set: func(s *Settings, v string) error {
			s.BackupDir = strings.TrimSpace(v)
			return nil
		},
	},
	"storage": {
		get: func(s *Settings) string { return s.Storage },
		set: func(s *Settings, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != storage.BackendJSON && v != storage.BackendSQLite {
				return fmt.Errorf("storage must be %s or %s", storage.BackendJSON, storage.BackendSQLite)
			}
			s.Storage = v
			return nil
		},
	},
	"holiday_policy": {
		get: func(s *Settings) string { return s.HolidayPolicy },
		set: func(s *Settings, v string) error {
			p, err := timetrack.ParseHolidayPolicy(v)
			if err != nil {
				return err
			}
			s.HolidayPolicy = string(p)
			return nil
		},
	},
	"log_level": {
		get: func(s *Settings) string { return s.LogLevel },
		set: func(s *Settings, v string) error {
			if _, err := logging.ParseLevel(v); err != nil {
				return err
			}
			s.LogLevel = strings.ToLower(strings.TrimSpace(v))
			return nil
		},
	},
}

// Keys returns the settable keys in alphabetical order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of key as a string.
func (s *Settings) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("unknown setting '%s' (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return f.get(s), nil
}

// Set validates and assigns value to key.
func (s *Settings) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown setting '%s' (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return f.set(s, value)
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1", "ja":
		return true, nil
	case "false", "no", "off", "0", "nein":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", v)
}
