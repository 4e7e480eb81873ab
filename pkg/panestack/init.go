// Package panestack provides a stack-based screen navigation controller for
// single-window applications.
//
// A Container keeps an ordered stack of screens, animates between them with
// time-driven transitions and lets the user drag the top screen away with a
// back gesture that commits or cancels on release. On wide displays it runs
// a split layout where adjacent screens of the same group are shown side by
// side.
//
// The Container renders nothing itself. Hosts feed it pointer events and
// frame ticks and draw the pane rectangles, shadows and scrim returned by
// Layout; platform/sdlhost is one such host.
package panestack

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/panestack/pkg/panestack/constants"
	"github.com/BrandonKowalski/panestack/pkg/panestack/internal"
)

// Options configures Init.
type Options struct {
	Config     *Config // Used as-is when set; ConfigPath is ignored
	ConfigPath string  // TOML file read over the defaults (PANESTACK_CONFIG when empty)
	LogPath    string  // Full path for log file including filename (creates parent directories)
	Host       Host    // Optional host collaborators
}

// Init configures logging, loads the configuration and creates a Container.
func Init(options Options) (*Container, error) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	cfg := DefaultConfig()
	switch {
	case options.Config != nil:
		cfg = *options.Config
	case options.ConfigPath != "":
		loaded, err := LoadConfig(options.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case os.Getenv(constants.ConfigPathEnvVar) != "":
		loaded, err := LoadConfig(os.Getenv(constants.ConfigPathEnvVar))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else if level, ok := internal.ParseLevel(cfg.LogLevel); ok {
		internal.SetInternalLogLevel(level)
	}

	c, err := New(cfg, options.Host)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create navigation container", "error", err)
		return nil, err
	}
	return c, nil
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger flushes and closes the log file.
func CloseLogger() {
	internal.CloseLogger()
}
