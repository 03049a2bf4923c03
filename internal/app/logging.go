package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"digirain/internal/core"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogging builds the program logger and installs it as the shared one.
// The terminal backend owns the screen, so without a log file its logs are
// discarded; the other backends log to stderr.
func SetupLogging(cfg *Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	case cfg.Backend == BackendTerminal:
		logger := core.NewNopLogger()
		core.SetLogger(logger)
		return logger, closer, nil
	default:
		w = stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)
	return logger, closer, nil
}
