package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digirain/internal/app"
	"digirain/internal/rain"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.ParseEnv(nil); err != nil {
		fmt.Fprintln(os.Stderr, "digirain:", err)
		os.Exit(2)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "digirain:", err)
		os.Exit(2)
	}

	logger, closer, err := app.SetupLogging(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "digirain:", err)
		os.Exit(2)
	}

	seed := cfg.ResolveSeed(time.Now())
	logger.Info("starting",
		"backend", cfg.Backend,
		"seed", seed,
		"fps", app.TargetFPS,
		"params", rain.DefaultParams().Snapshot())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, seed)
	stop()

	if err != nil {
		logger.Error("exit", "err", err)
		closer.Close()
		if cfg.Backend == app.BackendTerminal && cfg.LogFile == "" {
			fmt.Fprintln(os.Stderr, "digirain:", err)
		}
		os.Exit(1)
	}
	closer.Close()
}

func run(ctx context.Context, cfg *app.Config, seed int64) error {
	switch cfg.Backend {
	case app.BackendTerminal:
		return app.RunTerminal(ctx, seed)
	case app.BackendWindow:
		return app.RunWindow(cfg, seed)
	case app.BackendSnapshot:
		return app.RunSnapshot(cfg, seed)
	}
	return fmt.Errorf("%w %q", app.ErrUnknownBackend, cfg.Backend)
}
