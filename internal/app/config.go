package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// TargetFPS is the frame rate every backend paces to.
	TargetFPS = 30
	// GracePeriod is how long input is ignored after launch.
	GracePeriod = 500 * time.Millisecond
	// MouseThreshold is how far, in pixels, the pointer may drift in the
	// window before it counts as an exit.
	MouseThreshold = 10
	// TerminalMouseThreshold is the same allowance in terminal cells.
	TerminalMouseThreshold = 1
)

// Backend names.
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
	BackendSnapshot = "snapshot"
)

var (
	// ErrUnknownBackend is returned for a backend name that is not supported.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrWindowUnavailable is returned when the window backend was not built.
	ErrWindowUnavailable = errors.New("window backend unavailable")
)

// Config holds the runtime settings of the program. The rain itself is not
// configurable; these only choose how and where it is shown.
type Config struct {
	Backend  string  `env:"DIGIRAIN_BACKEND"`
	Seed     int64   `env:"DIGIRAIN_SEED"`
	FontPath string  `env:"DIGIRAIN_FONT"`
	FontSize float64 `env:"DIGIRAIN_FONT_SIZE"`

	// Snapshot settings.
	Output string `env:"DIGIRAIN_OUTPUT"`
	Frames int    `env:"DIGIRAIN_FRAMES"`
	Cols   int    `env:"DIGIRAIN_COLS"`
	Rows   int    `env:"DIGIRAIN_ROWS"`

	LogFile  string `env:"DIGIRAIN_LOG_FILE"`
	LogLevel string `env:"DIGIRAIN_LOG_LEVEL"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Backend:  BackendTerminal,
		FontSize: 14,
		Output:   "digirain.png",
		Frames:   120,
		Cols:     120,
		Rows:     40,
		LogLevel: "info",
	}
}

// ParseEnv overrides fields from DIGIRAIN_* variables. A nil environ reads
// the process environment.
func (c *Config) ParseEnv(environ map[string]string) error {
	var err error
	if environ == nil {
		err = env.Parse(c)
	} else {
		err = env.ParseWithOptions(c, env.Options{Environment: environ})
	}
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "where to show the rain: terminal, window or snapshot")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.FontPath, "font", c.FontPath, "TrueType/OpenType font for window and snapshot output")
	fs.Float64Var(&c.FontSize, "font-size", c.FontSize, "font size in points")
	fs.StringVar(&c.Output, "o", c.Output, "snapshot PNG path")
	fs.IntVar(&c.Frames, "frames", c.Frames, "ticks to run before taking a snapshot")
	fs.IntVar(&c.Cols, "cols", c.Cols, "snapshot grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "snapshot grid rows")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTerminal, BackendWindow, BackendSnapshot:
	default:
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %v", c.FontSize)
	}
	if c.Backend == BackendSnapshot {
		if c.Frames <= 0 {
			return fmt.Errorf("frames must be positive, got %d", c.Frames)
		}
		if c.Cols <= 0 || c.Rows <= 0 {
			return fmt.Errorf("snapshot grid must be positive, got %dx%d", c.Cols, c.Rows)
		}
		if c.Output == "" {
			return errors.New("snapshot output path is empty")
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c *Config) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
