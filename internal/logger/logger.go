// Package logger provides structured file logging for both front ends.
// Logs go to an XDG state file so the TUI's screen and the CLI's command
// output stay clean; stderr mirroring is enabled only outside TUI mode when
// the log file cannot be opened.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// TODO: Allow configuration of log level (e.g., via env var or config file)

var defaultLogger *slog.Logger

// logFilePath determines the path for the application log file based on the
// XDG spec.
func logFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "pm", "pm.log"), nil
}

// Init configures the default logger. It must be called once at startup by
// each entry point; calling it again (e.g. when the CLI hands off to the TUI)
// reconfigures the writer for the new mode.
func Init(isTUI bool) {
	var w io.Writer = openLogFile()
	if w == nil {
		if isTUI {
			// Never write to the terminal while the TUI owns it.
			w = io.Discard
		} else {
			w = os.Stderr
		}
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	defaultLogger = slog.New(handler)
}

// openLogFile opens the log file for appending, creating its directory as
// needed. Returns nil if the file cannot be used.
func openLogFile() *os.File {
	path, err := logFilePath()
	if err != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil
	}
	return file
}

// checkLogger ensures the logger is initialized before use.
func checkLogger() {
	if defaultLogger == nil {
		Init(false)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}
