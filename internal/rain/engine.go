package rain

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"digirain/internal/core"
)

// ErrInvalidSize is returned when the grid or glyph set is empty.
var ErrInvalidSize = errors.New("rain: invalid size")

// Cell is one grid position's rendered state for the current tick.
type Cell struct {
	// Glyph indexes the alphabet. Stale when Brightness is 0.
	Glyph int
	// Brightness is 0 (not drawn) to 1 (head).
	Brightness float32
	// Head marks the leading cell of a stream.
	Head bool
}

// Stream is one falling glyph sequence within a column.
type Stream struct {
	// Head is the fractional row of the leading glyph.
	Head float32
	// Speed is the rows advanced per tick.
	Speed float32
	// Trail is the number of cells behind the head.
	Trail int
	// Glyphs holds one glyph per position, head first. len(Glyphs) == Trail+1.
	Glyphs []int
}

// Tail returns the fractional row of the last trail cell.
func (s Stream) Tail() float32 { return s.Head - float32(s.Trail) }

type column struct {
	streams []Stream
}

// Engine owns the cell grid and the falling streams of every column.
type Engine struct {
	cfg    Config
	params Params
	glyphs int

	grid    *core.Grid[Cell]
	columns []column

	rng     Source
	seeded  *core.RNG
	spawned uint64
	culled  uint64
}

// New returns an engine with default parameters and a random seed for a
// cols x rows grid drawing from glyphs distinct glyph indices.
func New(cols, rows, glyphs int) (*Engine, error) {
	cfg := DefaultConfig(cols, rows)
	cfg.Glyphs = glyphs
	cfg.Seed = rand.Int64()
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from the provided options.
func NewWithConfig(cfg Config) (*Engine, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidSize, cfg.Cols, cfg.Rows)
	}
	if cfg.Glyphs <= 0 {
		return nil, fmt.Errorf("%w: %d glyphs", ErrInvalidSize, cfg.Glyphs)
	}
	p := cfg.Params
	if p.SpeedMax < p.SpeedMin {
		p.SpeedMax = p.SpeedMin
	}
	if p.TrailMin < 0 {
		p.TrailMin = 0
	}
	if p.TrailMax < p.TrailMin {
		p.TrailMax = p.TrailMin
	}
	e := &Engine{
		cfg:     cfg,
		params:  p,
		glyphs:  cfg.Glyphs,
		grid:    core.NewGrid[Cell](cfg.Cols, cfg.Rows),
		columns: make([]column, cfg.Cols),
	}
	if cfg.Source != nil {
		e.rng = cfg.Source
	} else {
		e.seeded = core.NewRNG(cfg.Seed)
		e.rng = e.seeded
	}
	return e, nil
}

// Name identifies the simulation.
func (e *Engine) Name() string { return "rain" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Cells exposes the grid in row-major order. Callers must not modify it.
func (e *Engine) Cells() []Cell { return e.grid.Cells() }

// Cell returns the cell at column x, row y.
func (e *Engine) Cell(x, y int) Cell { return *e.grid.At(x, y) }

// Params returns the parameters in effect.
func (e *Engine) Params() Params { return e.params }

// Streams returns a copy of the active streams in column x.
func (e *Engine) Streams(x int) []Stream {
	out := make([]Stream, len(e.columns[x].streams))
	for i, s := range e.columns[x].streams {
		s.Glyphs = slices.Clone(s.Glyphs)
		out[i] = s
	}
	return out
}

// StreamCount returns the number of active streams across all columns.
func (e *Engine) StreamCount() int {
	n := 0
	for i := range e.columns {
		n += len(e.columns[i].streams)
	}
	return n
}

// Spawned returns how many streams have been spawned since the last Reset.
func (e *Engine) Spawned() uint64 { return e.spawned }

// Culled returns how many streams have left the grid since the last Reset.
func (e *Engine) Culled() uint64 { return e.culled }

// Inject adds a stream to column x. Glyphs are padded with random indices or
// truncated so that the sequence covers the head and every trail cell.
func (e *Engine) Inject(x int, s Stream) {
	if s.Trail < 0 {
		s.Trail = 0
	}
	glyphs := make([]int, s.Trail+1)
	n := copy(glyphs, s.Glyphs)
	for i := n; i < len(glyphs); i++ {
		glyphs[i] = e.rng.IntN(e.glyphs)
	}
	s.Glyphs = glyphs
	e.columns[x].streams = append(e.columns[x].streams, s)
}

// Reset drops every stream, blanks the grid and reseeds the owned RNG. A
// zero seed keeps the configured one.
func (e *Engine) Reset(seed int64) {
	for i := range e.columns {
		e.columns[i].streams = e.columns[i].streams[:0]
	}
	e.grid.Clear()
	e.spawned, e.culled = 0, 0
	if e.seeded == nil {
		return
	}
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.seeded.Seed(seed)
}

// Tick advances every stream by one step and rewrites the grid.
func (e *Engine) Tick() {
	e.reset()
	rows := float32(e.grid.H)
	for x := range e.columns {
		col := &e.columns[x]

		if e.rng.Float32() < e.params.SpawnChance {
			col.streams = append(col.streams, e.spawn())
			e.spawned++
		}

		for i := range col.streams {
			s := &col.streams[i]
			s.Head += s.Speed
			for j := range s.Glyphs {
				if e.rng.Float32() < e.params.MutateChance {
					s.Glyphs[j] = e.rng.IntN(e.glyphs)
				}
			}
		}

		before := len(col.streams)
		col.streams = slices.DeleteFunc(col.streams, func(s Stream) bool {
			return s.Tail() >= rows
		})
		e.culled += uint64(before - len(col.streams))

		for _, s := range col.streams {
			e.composite(x, s)
		}
	}
}

// reset blanks brightness and head flags. Glyphs are left stale.
func (e *Engine) reset() {
	e.grid.Each(func(c *Cell) {
		c.Brightness = 0
		c.Head = false
	})
}

func (e *Engine) spawn() Stream {
	p := e.params
	speed := e.rng.Float32()*(p.SpeedMax-p.SpeedMin) + p.SpeedMin
	trail := p.TrailMin + e.rng.IntN(p.TrailMax-p.TrailMin+1)
	glyphs := make([]int, trail+1)
	for i := range glyphs {
		glyphs[i] = e.rng.IntN(e.glyphs)
	}
	return Stream{Speed: speed, Trail: trail, Glyphs: glyphs}
}

// composite writes s into column x. A cell keeps the strictly brighter of
// its current value and the candidate, so overlaps never darken.
func (e *Engine) composite(x int, s Stream) {
	head := int(math.Floor(float64(s.Head)))
	for i := 0; i <= s.Trail; i++ {
		y := head - i
		if !e.grid.In(x, y) {
			continue
		}
		b := Brightness(i, s.Trail)
		c := e.grid.At(x, y)
		if b > c.Brightness {
			c.Brightness = b
			c.Glyph = s.Glyphs[i]
			c.Head = i == 0
		}
	}
}

// Brightness returns the intensity of the cell at offset i behind a head
// with the given trail length. The head is 1; the trail fades linearly from
// just under 0.95 down to 0.05 and never reaches zero.
func Brightness(i, trail int) float32 {
	if i == 0 {
		return 1
	}
	t := float32(i) / float32(trail)
	return (1-t)*0.9 + 0.05
}
