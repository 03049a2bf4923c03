//go:build ebiten

package app

import (
	"errors"

	"digirain/internal/core"
	"digirain/internal/rain"
	"digirain/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the rain engine to the ebiten.Game interface.
type Game struct {
	engine *rain.Engine
	atlas  *render.Atlas
	comp   render.Compositor
	policy *ExitPolicy

	seed int64
	keys []ebiten.Key
}

// New constructs a Game drawing glyphs from atlas.
func New(atlas *render.Atlas, seed int64) *Game {
	cw, ch := atlas.CellSize()
	return &Game{
		atlas:  atlas,
		comp:   render.Compositor{CellW: cw, CellH: ch},
		policy: NewExitPolicy(GracePeriod, MouseThreshold),
		seed:   seed,
	}
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if g.engine == nil {
		return nil
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	if len(g.keys) > 0 && g.policy.Key() {
		return ebiten.Termination
	}
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) && g.policy.Button() {
			return ebiten.Termination
		}
	}
	if g.policy.Motion(ebiten.CursorPosition()) {
		return ebiten.Termination
	}

	g.engine.Tick()
	return nil
}

// Draw renders the current grid.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Backdrop)
	if g.engine == nil {
		return
	}
	g.atlas.SetTarget(screen)
	g.comp.Draw(g.engine, g.atlas)
}

// Layout sizes the grid to the screen, rebuilding the engine on change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := max(outsideWidth/g.comp.CellW, 1)
	rows := max(outsideHeight/g.comp.CellH, 1)
	if g.engine == nil || g.engine.Size() != (core.Size{W: cols, H: rows}) {
		cfg := rain.DefaultConfig(cols, rows)
		cfg.Seed = g.seed
		if e, err := rain.NewWithConfig(cfg); err == nil {
			g.engine = e
			core.Logger().Debug("grid sized", "cols", cols, "rows", rows)
		}
	}
	return outsideWidth, outsideHeight
}

// RunWindow opens a fullscreen window and runs until exit.
func RunWindow(cfg *Config, seed int64) error {
	face, err := render.LoadFace(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return err
	}
	atlas := render.NewAtlas(face, rain.Alphabet())
	defer atlas.Dispose()

	ebiten.SetWindowTitle("digirain")
	ebiten.SetFullscreen(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(TargetFPS)

	if err := ebiten.RunGame(New(atlas, seed)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
