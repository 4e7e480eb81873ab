package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	outputOnce sync.Once
	output     io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path of the log file. Parent directories are
// created on first use. An empty path logs to stdout only.
func SetLogPath(path string) {
	logPath = path
}

// SetOutput replaces the log destination. It must be called before the
// first logger is requested; tests use it to capture or silence output.
func SetOutput(w io.Writer) {
	outputOnce.Do(func() {
		output = w
	})
}

func openOutput() io.Writer {
	outputOnce.Do(func() {
		if logPath == "" {
			output = os.Stdout
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			output = os.Stdout
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			output = os.Stdout
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stdout, logFile)
	})
	return output
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = slog.New(slog.NewJSONHandler(openOutput(), &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// GetInternalLogger returns the logger used by the navigation core. Its
// records carry component=panestack.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		handler := slog.NewJSONHandler(openOutput(), &slog.HandlerOptions{
			Level: internalLevelVar,
		})
		internalLogger = slog.New(handler).With("component", "panestack")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLevel maps a config string to a level. Unknown names report false
// and yield Info.
func ParseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// SetRawLogLevel sets both loggers from a level name.
func SetRawLogLevel(raw string) {
	level, _ := ParseLevel(raw)
	SetLogLevel(level)
	SetInternalLogLevel(level)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
