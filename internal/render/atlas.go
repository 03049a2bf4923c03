//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Atlas holds one pre-rendered white glyph image per rune and draws them
// onto an ebiten target with a color scale.
type Atlas struct {
	dst    *ebiten.Image
	glyphs []*ebiten.Image

	cellW, cellH int
}

// NewAtlas renders every rune of the set with face.
func NewAtlas(face font.Face, runes []rune) *Atlas {
	l := layoutGlyphs(face, runes)
	a := &Atlas{
		glyphs: make([]*ebiten.Image, len(runes)),
		cellW:  l.cellW,
		cellH:  l.cellH,
	}
	for i, r := range l.runes {
		img := ebiten.NewImage(l.widths[i], l.cellH)
		text.Draw(img, string(r), face, 0, l.ascent, color.White)
		a.glyphs[i] = img
	}
	return a
}

// CellSize returns the grid cell dimensions in pixels.
func (a *Atlas) CellSize() (w, h int) { return a.cellW, a.cellH }

// SetTarget changes the image glyphs are drawn onto.
func (a *Atlas) SetTarget(dst *ebiten.Image) { a.dst = dst }

// GlyphSize implements GlyphProvider.
func (a *Atlas) GlyphSize(idx int) (w, h int, ok bool) {
	if idx < 0 || idx >= len(a.glyphs) {
		return 0, 0, false
	}
	b := a.glyphs[idx].Bounds()
	return b.Dx(), b.Dy(), true
}

// DrawGlyph implements GlyphProvider.
func (a *Atlas) DrawGlyph(idx int, dst image.Rectangle, tint color.NRGBA) {
	if a.dst == nil || idx < 0 || idx >= len(a.glyphs) {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	op.ColorScale.Scale(float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, 1)
	op.ColorScale.ScaleAlpha(float32(tint.A) / 255)
	a.dst.DrawImage(a.glyphs[idx], op)
}

// Dispose releases the glyph images.
func (a *Atlas) Dispose() {
	for _, img := range a.glyphs {
		img.Dispose()
	}
	a.glyphs = nil
}
