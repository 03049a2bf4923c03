package app

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"

	"digirain/internal/core"
	"digirain/internal/rain"
	"digirain/internal/render"
)

// WriteSnapshot runs cfg.Frames ticks on a cfg.Cols x cfg.Rows grid and
// encodes the final frame as PNG.
func WriteSnapshot(w io.Writer, cfg *Config, seed int64) error {
	face, err := render.LoadFace(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return err
	}
	glyphs := render.NewImageGlyphs(face, rain.Alphabet())

	rcfg := rain.DefaultConfig(cfg.Cols, cfg.Rows)
	rcfg.Seed = seed
	engine, err := rain.NewWithConfig(rcfg)
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Frames; i++ {
		engine.Tick()
	}

	cw, ch := glyphs.CellSize()
	frame := glyphs.NewFrame(cfg.Cols, cfg.Rows)
	render.Compositor{CellW: cw, CellH: ch}.Draw(engine, glyphs)

	core.Logger().Debug("snapshot rendered",
		"sim", engine.Name(),
		"frames", cfg.Frames,
		"streams", engine.StreamCount(),
		"spawned", engine.Spawned(),
		"bounds", frame.Bounds().String())

	if err := png.Encode(w, frame); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// RunSnapshot writes a snapshot to cfg.Output.
func RunSnapshot(cfg *Config, seed int64) (err error) {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := WriteSnapshot(f, cfg, seed); err != nil {
		return err
	}
	core.Logger().Info("snapshot written", "path", cfg.Output)
	return nil
}
