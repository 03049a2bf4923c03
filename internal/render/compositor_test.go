package render

import (
	"image"
	"image/color"
	"testing"

	"digirain/internal/core"
	"digirain/internal/rain"
)

type draw struct {
	idx  int
	dst  image.Rectangle
	tint color.NRGBA
}

type recordingProvider struct {
	sizes map[int]image.Point
	draws []draw
}

func (p *recordingProvider) GlyphSize(idx int) (int, int, bool) {
	s, ok := p.sizes[idx]
	return s.X, s.Y, ok
}

func (p *recordingProvider) DrawGlyph(idx int, dst image.Rectangle, tint color.NRGBA) {
	p.draws = append(p.draws, draw{idx: idx, dst: dst, tint: tint})
}

type staticGrid struct {
	size  core.Size
	cells []rain.Cell
}

func (g staticGrid) Size() core.Size     { return g.size }
func (g staticGrid) Cells() []rain.Cell { return g.cells }

func TestCellColor(t *testing.T) {
	cases := []struct {
		name       string
		brightness float32
		head       bool
		want       color.NRGBA
	}{
		{"trail half", 0.5, false, color.NRGBA{R: 15, G: 115, B: 0, A: 127}},
		{"head full", 1, true, color.NRGBA{R: 180, G: 255, B: 180, A: 255}},
		{"head dim keeps tint", 0.2, true, color.NRGBA{R: 180, G: 255, B: 180, A: 51}},
		{"trail full", 1, false, color.NRGBA{R: 30, G: 230, B: 0, A: 255}},
		{"trail faint", 0.05, false, color.NRGBA{R: 1, G: 11, B: 0, A: 12}},
		{"clamped high", 3, false, color.NRGBA{R: 30, G: 230, B: 0, A: 255}},
		{"clamped low", -1, false, color.NRGBA{}},
	}
	for _, tc := range cases {
		if got := CellColor(tc.brightness, tc.head); got != tc.want {
			t.Errorf("%s: CellColor(%v, %v) = %+v, want %+v", tc.name, tc.brightness, tc.head, got, tc.want)
		}
	}
}

func TestDrawSkipsDarkAndUnknownCells(t *testing.T) {
	grid := staticGrid{
		size: core.Size{W: 3, H: 2},
		cells: []rain.Cell{
			{Glyph: 1, Brightness: 1, Head: true}, {Glyph: 2, Brightness: 0}, {Glyph: 99, Brightness: 0.7},
			{Glyph: 1, Brightness: -0.5}, {Glyph: 3, Brightness: 0.5}, {Glyph: 2, Brightness: 0.05},
		},
	}
	p := &recordingProvider{sizes: map[int]image.Point{1: {8, 14}, 2: {8, 14}, 3: {8, 14}}}
	Compositor{CellW: 8, CellH: 14}.Draw(grid, p)

	if len(p.draws) != 3 {
		t.Fatalf("draws = %d, want 3: %+v", len(p.draws), p.draws)
	}
	want := []draw{
		{idx: 1, dst: image.Rect(0, 0, 8, 14), tint: CellColor(1, true)},
		{idx: 3, dst: image.Rect(8, 14, 16, 28), tint: CellColor(0.5, false)},
		{idx: 2, dst: image.Rect(16, 14, 24, 28), tint: CellColor(0.05, false)},
	}
	for i := range want {
		if p.draws[i] != want[i] {
			t.Fatalf("draw %d = %+v, want %+v", i, p.draws[i], want[i])
		}
	}
}

func TestDrawCentersNarrowGlyphs(t *testing.T) {
	grid := staticGrid{
		size:  core.Size{W: 2, H: 1},
		cells: []rain.Cell{{Glyph: 0, Brightness: 1}, {Glyph: 1, Brightness: 1}},
	}
	p := &recordingProvider{sizes: map[int]image.Point{0: {4, 12}, 1: {14, 12}}}
	Compositor{CellW: 10, CellH: 12}.Draw(grid, p)

	if got := p.draws[0].dst; got != image.Rect(3, 0, 7, 12) {
		t.Fatalf("narrow glyph dst = %v, want (3,0)-(7,12)", got)
	}
	// Wider glyphs start at the cell origin.
	if got := p.draws[1].dst; got != image.Rect(10, 0, 24, 12) {
		t.Fatalf("wide glyph dst = %v, want (10,0)-(24,12)", got)
	}
}

func TestDrawEngineGrid(t *testing.T) {
	cfg := rain.DefaultConfig(3, 10)
	cfg.Params.SpawnChance = 0
	cfg.Params.MutateChance = 0
	e, err := rain.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	e.Inject(1, rain.Stream{Head: 3, Trail: 2, Glyphs: []int{4, 5, 6}})
	e.Tick()

	p := &recordingProvider{sizes: map[int]image.Point{}}
	for i := 0; i < rain.AlphabetSize(); i++ {
		p.sizes[i] = image.Pt(1, 1)
	}
	Compositor{CellW: 1, CellH: 1}.Draw(e, p)

	if len(p.draws) != 3 {
		t.Fatalf("draws = %d, want 3", len(p.draws))
	}
	head := p.draws[len(p.draws)-1]
	if head.idx != 4 || head.dst.Min != image.Pt(1, 3) || head.tint != CellColor(1, true) {
		t.Fatalf("head draw = %+v", head)
	}
	for _, d := range p.draws {
		if d.dst.Min.X != 1 {
			t.Fatalf("draw outside column 1: %+v", d)
		}
	}
}
