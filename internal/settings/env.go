package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvHome     = "ZEITKONTO_HOME"
	EnvEmployee = "ZEITKONTO_EMPLOYEE"
	EnvStorage  = "ZEITKONTO_STORAGE"
	EnvLogLevel = "ZEITKONTO_LOG_LEVEL"
)

// Env is the set of ZEITKONTO_* variables in effect.
type Env map[string]string

// LoadEnv reads dir/.env (if present) and overlays the process environment,
// which takes precedence.
func LoadEnv(dir string) (Env, error) {
	env := Env{}

	values, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	for k, v := range values {
		if strings.HasPrefix(k, "ZEITKONTO_") {
			env[k] = v
		}
	}

	for _, k := range []string{EnvHome, EnvEmployee, EnvStorage, EnvLogLevel} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	return env, nil
}

// DataDir returns ZEITKONTO_HOME or homeDir/.zeitkonto.
func (e Env) DataDir(homeDir string) string {
	if dir := strings.TrimSpace(e[EnvHome]); dir != "" {
		return dir
	}
	return filepath.Join(homeDir, ".zeitkonto")
}

// Apply overrides s with values from the environment. Invalid values are
// returned as an error and leave s unchanged for that key.
func (e Env) Apply(s *Settings) error {
	overrides := map[string]string{
		EnvEmployee: "employee_name",
		EnvStorage:  "storage",
		EnvLogLevel: "log_level",
	}
	var errs []error
	for envKey, settingKey := range overrides {
		v, ok := e[envKey]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := s.Set(settingKey, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
