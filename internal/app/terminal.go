package app

import (
	"context"
	"fmt"

	"digirain/internal/core"
	"digirain/internal/rain"
	"digirain/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Terminal runs the rain on a tcell screen, one glyph per terminal cell.
type Terminal struct {
	screen tcell.Screen
	engine *rain.Engine
	glyphs *render.TerminalGlyphs
	comp   render.Compositor
	policy *ExitPolicy
	pacer  *core.Pacer

	seed   int64
	frames uint64
}

// NewTerminal prepares a runner for an initialized screen.
func NewTerminal(screen tcell.Screen, seed int64, policy *ExitPolicy) (*Terminal, error) {
	t := &Terminal{
		screen: screen,
		glyphs: render.NewTerminalGlyphs(screen, rain.Alphabet()),
		comp:   render.Compositor{CellW: 1, CellH: 1},
		policy: policy,
		pacer:  core.NewPacer(TargetFPS),
		seed:   seed,
	}
	if err := t.resize(); err != nil {
		return nil, err
	}
	return t, nil
}

// Engine exposes the current simulation.
func (t *Terminal) Engine() *rain.Engine { return t.engine }

// Frames returns the number of frames drawn so far.
func (t *Terminal) Frames() uint64 { return t.frames }

// Run draws frames until the exit policy fires, events closes, or ctx is
// cancelled.
func (t *Terminal) Run(ctx context.Context, events <-chan tcell.Event) error {
	log := core.Logger()
	for {
		t.pacer.Begin()
		select {
		case <-ctx.Done():
			log.Info("terminal stopped", "reason", ctx.Err(), "frames", t.frames)
			return nil
		default:
		}

	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					log.Info("event stream closed", "frames", t.frames)
					return nil
				}
				exit, err := t.handle(ev)
				if err != nil {
					return err
				}
				if exit {
					log.Info("exit on input", "frames", t.frames)
					return nil
				}
			default:
				break drain
			}
		}

		t.Frame()
		t.pacer.Wait()
	}
}

// Frame advances the simulation one tick and draws it.
func (t *Terminal) Frame() {
	t.engine.Tick()
	t.screen.Fill(' ', t.glyphs.BackdropStyle())
	t.comp.Draw(t.engine, t.glyphs)
	t.screen.Show()
	t.frames++
}

func (t *Terminal) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return t.policy.Quit(), nil
		}
		return t.policy.Key(), nil
	case *tcell.EventMouse:
		if ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0 {
			return t.policy.Button(), nil
		}
		x, y := ev.Position()
		return t.policy.Motion(x, y), nil
	case *tcell.EventResize:
		t.screen.Sync()
		return false, t.resize()
	}
	return false, nil
}

// resize rebuilds the engine when the screen size changed.
func (t *Terminal) resize() error {
	w, h := t.screen.Size()
	if t.engine != nil {
		if s := t.engine.Size(); s.W == w && s.H == h {
			return nil
		}
	}
	cfg := rain.DefaultConfig(w, h)
	cfg.Seed = t.seed
	e, err := rain.NewWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("terminal %dx%d: %w", w, h, err)
	}
	t.engine = e
	core.Logger().Debug("grid sized", "cols", w, "rows", h)
	return nil
}

// RunTerminal takes over the controlling terminal and runs until exit.
func RunTerminal(ctx context.Context, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.EnableMouse(tcell.MouseMotionEvents)

	runner, err := NewTerminal(screen, seed, NewExitPolicy(GracePeriod, TerminalMouseThreshold))
	if err != nil {
		return err
	}
	screen.SetStyle(runner.glyphs.BackdropStyle())

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	return runner.Run(ctx, events)
}
