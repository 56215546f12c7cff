// Package config loads the optional timetxt configuration file. The
// tool works without one; every setting has a default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/timetxt/timetxt/internal/osutil"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "timetxt"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"
)

// Config represents the application configuration.
type Config struct {
	// LogFile overrides the default time.txt location. A leading ~/
	// is expanded to the user's home directory.
	LogFile string `toml:"log_file"`
	// ShowElapsed prints the per-entry elapsed column by default.
	ShowElapsed bool `toml:"show_elapsed"`
}

// DefaultConfig returns a Config matching the built-in behavior:
// the log lives at ~/time.txt and the elapsed column is off.
func DefaultConfig() Config {
	return Config{
		LogFile:     "",
		ShowElapsed: false,
	}
}

// GetConfigPath returns the path to the config file, creating the
// config directory if needed.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and decodes the config file at the given path. Unknown
// keys are rejected. A missing file is an error; use LoadOrDefault
// when absence is acceptable.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file if it exists and falls back to
// defaults when it doesn't. A file that exists but fails to decode is
// still an error.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if isNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// normalize expands a leading ~/ in the log file path.
func (c *Config) normalize() error {
	if strings.HasPrefix(c.LogFile, "~/") {
		home, err := osutil.Provider.UserHomeDir()
		if err != nil {
			return fmt.Errorf("expanding log_file: %w", err)
		}
		c.LogFile = filepath.Join(home, c.LogFile[2:])
	}
	return nil
}

// GenerateSampleConfig returns a commented config file with defaults.
func GenerateSampleConfig() string {
	return `# timetxt configuration file

# Path to the time.txt log file. Defaults to ~/time.txt.
# log_file = "~/time.txt"

# Print the elapsed HH:MM column for every entry.
# show_elapsed = true
`
}
