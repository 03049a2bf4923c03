package render

import (
	"image"
	"image/color"

	"digirain/internal/core"
	"digirain/internal/rain"
)

// Grid is the read-only cell view the compositor draws from.
type Grid interface {
	Size() core.Size
	Cells() []rain.Cell
}

// GlyphProvider rasterizes glyphs by index. The compositor never inspects
// pixels; it only asks for sizes and issues tinted draws.
type GlyphProvider interface {
	// GlyphSize reports the glyph's width and height. ok is false for an
	// index the provider does not know.
	GlyphSize(idx int) (w, h int, ok bool)
	// DrawGlyph draws glyph idx into dst, modulated by the tint's color
	// and alpha.
	DrawGlyph(idx int, dst image.Rectangle, tint color.NRGBA)
}

// Compositor turns the grid into one tinted glyph draw per lit cell.
type Compositor struct {
	CellW int
	CellH int
}

// Draw issues a draw for every cell with positive brightness. Unknown glyph
// indices are skipped.
func (c Compositor) Draw(grid Grid, glyphs GlyphProvider) {
	w := grid.Size().W
	if w <= 0 {
		return
	}
	for i, cell := range grid.Cells() {
		if cell.Brightness <= 0 {
			continue
		}
		gw, gh, ok := glyphs.GlyphSize(cell.Glyph)
		if !ok {
			continue
		}
		col, row := i%w, i/w
		x := col*c.CellW + max(c.CellW-gw, 0)/2
		y := row * c.CellH
		glyphs.DrawGlyph(cell.Glyph, image.Rect(x, y, x+gw, y+gh), CellColor(cell.Brightness, cell.Head))
	}
}

var headTint = color.NRGBA{R: 180, G: 255, B: 180}

// CellColor derives the tint for a cell. Heads keep a fixed near-white green
// and only fade in alpha; trail cells scale color and alpha together.
// Channel values are truncated.
func CellColor(brightness float32, head bool) color.NRGBA {
	b := min(max(brightness, 0), 1)
	a := uint8(b * 255)
	if head {
		c := headTint
		c.A = a
		return c
	}
	return color.NRGBA{R: uint8(b * 30), G: uint8(b * 230), B: 0, A: a}
}
