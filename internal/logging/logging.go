package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application. It discards
// everything until Init is called.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultPath returns ~/.taskboard/logs/taskboard.log.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskboard", "logs", "taskboard.log"), nil
}

// Init points the logging system at path (DefaultPath when empty), using the
// text format for human readability. The terminal belongs to the UI, so
// nothing is ever written to stdout or stderr. The returned function closes
// the log file.
func Init(path string, debug bool) (func() error, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	Logger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file.Close, nil
}
