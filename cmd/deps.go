package cmd

import (
	"io"
	"os"

	"github.com/timetxt/timetxt/internal/config"
	"github.com/timetxt/timetxt/internal/storage"
)

// Deps holds external dependencies for CLI commands, enabling
// testability.
type Deps struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	Exit    func(code int)
	LogPath func() (string, error)
	Config  config.Config
}

// DefaultDeps returns the default production dependencies. The config
// file is optional; a missing one falls back to defaults silently and
// a broken one falls back loudly but does not stop the command.
func DefaultDeps() *Deps {
	cfg := config.DefaultConfig()
	if configPath, err := config.GetConfigPath(); err == nil {
		if loaded, err := config.LoadOrDefault(configPath); err == nil {
			cfg = loaded
		}
	}

	return &Deps{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Exit:    os.Exit,
		LogPath: storage.DefaultLogPath,
		Config:  cfg,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// resolveLogPath picks the log file: an explicit argument wins, then
// the configured log_file, then ~/time.txt.
func resolveLogPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if deps.Config.LogFile != "" {
		return deps.Config.LogFile, nil
	}
	return deps.LogPath()
}
