package render

import (
	"image"
	"slices"
	"testing"

	"digirain/internal/rain"

	"golang.org/x/image/font/basicfont"
)

func TestImageGlyphsMetrics(t *testing.T) {
	g := NewImageGlyphs(basicfont.Face7x13, rain.Alphabet())
	w, h := g.CellSize()
	if w != 7 || h != 13 {
		t.Fatalf("CellSize = %dx%d, want 7x13", w, h)
	}
	gw, gh, ok := g.GlyphSize(56) // 'A'
	if !ok || gw != 7 || gh != 13 {
		t.Fatalf("GlyphSize(A) = %d,%d,%v", gw, gh, ok)
	}
	if _, _, ok := g.GlyphSize(rain.AlphabetSize()); ok {
		t.Fatal("GlyphSize past the set must report missing")
	}
	if _, _, ok := g.GlyphSize(-1); ok {
		t.Fatal("GlyphSize(-1) must report missing")
	}
}

func TestImageGlyphsFallbackForMissingRunes(t *testing.T) {
	g := NewImageGlyphs(basicfont.Face7x13, []rune{'ｱ', '?', 'A'})
	if !slices.Equal(g.masks[0].Pix, g.masks[1].Pix) {
		t.Fatal("rune missing from the face should render as '?'")
	}
	if slices.Equal(g.masks[1].Pix, g.masks[2].Pix) {
		t.Fatal("'?' and 'A' should differ")
	}
	lit := 0
	for _, a := range g.masks[2].Pix {
		if a > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("glyph mask for 'A' is empty")
	}
}

func TestImageGlyphsRenderFrame(t *testing.T) {
	cfg := rain.DefaultConfig(4, 6)
	cfg.Params.SpawnChance = 0
	cfg.Params.MutateChance = 0
	e, err := rain.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	e.Inject(2, rain.Stream{Head: 4, Trail: 1, Glyphs: []int{56, 57}}) // 'A' head, 'B' trail
	e.Tick()

	g := NewImageGlyphs(basicfont.Face7x13, rain.Alphabet())
	cw, ch := g.CellSize()
	frame := g.NewFrame(4, 6)
	if frame.Bounds() != image.Rect(0, 0, 4*cw, 6*ch) {
		t.Fatalf("frame bounds = %v", frame.Bounds())
	}
	Compositor{CellW: cw, CellH: ch}.Draw(e, g)

	headColor := CellColor(1, true)
	mask := g.masks[56]
	found := false
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			if mask.AlphaAt(x, y).A != 255 {
				continue
			}
			px := frame.RGBAAt(2*cw+x, 4*ch+y)
			if px.R != headColor.R || px.G != headColor.G || px.B != headColor.B {
				t.Fatalf("head pixel (%d,%d) = %+v, want head tint", x, y, px)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("head glyph has no opaque pixels")
	}

	// Cells with no stream stay on the backdrop.
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			if px := frame.RGBAAt(x, y); px != Backdrop {
				t.Fatalf("unlit pixel (%d,%d) = %+v", x, y, px)
			}
		}
	}

	g.Clear()
	for i := 0; i < len(frame.Pix); i += 4 {
		if frame.Pix[i] != 0 || frame.Pix[i+1] != 0 || frame.Pix[i+2] != 0 || frame.Pix[i+3] != 255 {
			t.Fatal("Clear must restore the backdrop")
		}
	}
}
